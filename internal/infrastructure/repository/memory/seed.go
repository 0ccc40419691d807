package memory

import "github.com/crickstack/auction-room/internal/domain/auction"

// DemoRoster is the built-in player pool used when no roster source is
// configured.
func DemoRoster() []auction.PlayerDescriptor {
	return []auction.PlayerDescriptor{
		{Name: "Virat Kohli", Role: auction.RoleBatsman, BasePrice: 2000, ImageURL: "https://img.crickstack.dev/players/virat-kohli.png"},
		{Name: "Rohit Sharma", Role: auction.RoleBatsman, BasePrice: 2000, ImageURL: "https://img.crickstack.dev/players/rohit-sharma.png"},
		{Name: "Jasprit Bumrah", Role: auction.RoleBowler, BasePrice: 1800, ImageURL: "https://img.crickstack.dev/players/jasprit-bumrah.png"},
		{Name: "Ravindra Jadeja", Role: auction.RoleAllRounder, BasePrice: 1500, ImageURL: "https://img.crickstack.dev/players/ravindra-jadeja.png"},
		{Name: "Rishabh Pant", Role: auction.RoleWicketKeeper, BasePrice: 1400, ImageURL: "https://img.crickstack.dev/players/rishabh-pant.png"},
		{Name: "Shubman Gill", Role: auction.RoleBatsman, BasePrice: 1200, ImageURL: "https://img.crickstack.dev/players/shubman-gill.png"},
		{Name: "Mohammed Siraj", Role: auction.RoleBowler, BasePrice: 1000, ImageURL: "https://img.crickstack.dev/players/mohammed-siraj.png"},
		{Name: "Hardik Pandya", Role: auction.RoleAllRounder, BasePrice: 1600, ImageURL: "https://img.crickstack.dev/players/hardik-pandya.png"},
		{Name: "KL Rahul", Role: auction.RoleWicketKeeper, BasePrice: 1300, ImageURL: "https://img.crickstack.dev/players/kl-rahul.png"},
		{Name: "Yuzvendra Chahal", Role: auction.RoleBowler, BasePrice: 900, ImageURL: "https://img.crickstack.dev/players/yuzvendra-chahal.png"},
		{Name: "Suryakumar Yadav", Role: auction.RoleBatsman, BasePrice: 1400, ImageURL: "https://img.crickstack.dev/players/suryakumar-yadav.png"},
		{Name: "Axar Patel", Role: auction.RoleAllRounder, BasePrice: 800, ImageURL: "https://img.crickstack.dev/players/axar-patel.png"},
		{Name: "Ishan Kishan", Role: auction.RoleWicketKeeper, BasePrice: 900, ImageURL: "https://img.crickstack.dev/players/ishan-kishan.png"},
		{Name: "Kuldeep Yadav", Role: auction.RoleBowler, BasePrice: 800, ImageURL: "https://img.crickstack.dev/players/kuldeep-yadav.png"},
		{Name: "Shreyas Iyer", Role: auction.RoleBatsman, BasePrice: 1100, ImageURL: "https://img.crickstack.dev/players/shreyas-iyer.png"},
		{Name: "Washington Sundar", Role: auction.RoleAllRounder, BasePrice: 700, ImageURL: "https://img.crickstack.dev/players/washington-sundar.png"},
	}
}
