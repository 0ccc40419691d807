package auction

import "fmt"

// Role represents the cricket role categories used in the auction pool.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "WK"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// Status tracks where a player sits in the auction lifecycle.
// A sold player is terminal; a passed player can be requeued to unsold.
type Status string

const (
	StatusUnsold Status = "unsold"
	StatusSold   Status = "sold"
	StatusPassed Status = "passed"
)

// Player is one entry in the ordered auction roster. IDs are sequential
// integers assigned at ingestion, stable for the session.
type Player struct {
	ID           int
	Name         string
	Role         Role
	BasePrice    int
	ImageURL     string
	Status       Status
	SoldToTeamID *string
	SoldPrice    *int
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.BasePrice <= 0 {
		return fmt.Errorf("player base price must be greater than zero")
	}
	if p.Status == StatusSold {
		if p.SoldPrice == nil || p.SoldToTeamID == nil {
			return fmt.Errorf("sold player must carry sold price and winning team")
		}
		if *p.SoldPrice < p.BasePrice {
			return fmt.Errorf("sold price cannot be below base price")
		}
	}

	return nil
}
