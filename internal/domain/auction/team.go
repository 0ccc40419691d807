package auction

import "fmt"

// SquadMember records one acquired player on a team sheet.
type SquadMember struct {
	PlayerID int
	Name     string
	Role     Role
	Price    int
}

// Team is one bidding franchise and its wallet ledger. WalletRemaining is
// always StartingWallet minus the sum of squad prices; it is recomputed,
// never adjusted independently.
type Team struct {
	ID              string
	Name            string
	WalletRemaining int
	Squad           []SquadMember
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.WalletRemaining < 0 {
		return fmt.Errorf("team wallet cannot be negative")
	}

	return nil
}

func (t Team) SpentTotal() int {
	total := 0
	for _, m := range t.Squad {
		total += m.Price
	}

	return total
}

func (t Team) SlotsLeft(squadSize int) int {
	return squadSize - len(t.Squad)
}

// MaxAllowableBid is the highest price the team could pay for the current
// slot while still affording the minimum base price for every remaining
// slot afterward. Never negative.
func (t Team) MaxAllowableBid(s Settings) int {
	slotsLeft := t.SlotsLeft(s.SquadSize)
	if slotsLeft <= 0 {
		return 0
	}

	reserve := (slotsLeft - 1) * s.MinBasePrice
	if max := t.WalletRemaining - reserve; max > 0 {
		return max
	}

	return 0
}

// RoleCounts tallies the squad by role for leaderboard views.
func (t Team) RoleCounts() map[Role]int {
	out := make(map[Role]int, len(AllRoles))
	for _, m := range t.Squad {
		out[m.Role]++
	}

	return out
}
