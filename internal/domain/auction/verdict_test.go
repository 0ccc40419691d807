package auction

import (
	"strings"
	"testing"
)

func TestValidateBid_CheckOrder(t *testing.T) {
	settings := Settings{StartingWallet: 10000, SquadSize: 3, MinBasePrice: 500}
	player := Player{ID: 1, Name: "Rohit Sharma", Role: RoleBatsman, BasePrice: 500, Status: StatusUnsold}

	// Team already spent 9000 over one slot: walletRemaining 1000, 2 slots left.
	team := &Team{
		ID:              "team-1",
		Name:            "Mumbai Indians",
		WalletRemaining: 1000,
		Squad: []SquadMember{
			{PlayerID: 9, Name: "Jasprit Bumrah", Role: RoleBowler, Price: 9000},
		},
	}

	tests := []struct {
		name     string
		team     *Team
		price    int
		accepted bool
		fragment string
	}{
		{
			name:     "missing team",
			team:     nil,
			price:    600,
			accepted: false,
			fragment: "Select a winning team",
		},
		{
			name:     "non-positive price",
			team:     team,
			price:    0,
			accepted: false,
			fragment: "valid sold price",
		},
		{
			name:     "below base price",
			team:     team,
			price:    400,
			accepted: false,
			fragment: "below base price",
		},
		{
			name:     "reserve rule violated",
			team:     team,
			price:    600,
			accepted: false,
			fragment: "must keep ₹500",
		},
		{
			name:     "accepted at base price",
			team:     team,
			price:    500,
			accepted: true,
			fragment: "can bid up to ₹500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verdict := ValidateBid(tc.team, player, tc.price, settings)
			if verdict.Accepted != tc.accepted {
				t.Fatalf("expected accepted=%v, got %v (message=%q)", tc.accepted, verdict.Accepted, verdict.Message)
			}
			if !strings.Contains(verdict.Message, tc.fragment) {
				t.Fatalf("expected message containing %q, got %q", tc.fragment, verdict.Message)
			}
		})
	}
}

func TestValidateBid_NoOpenSlots(t *testing.T) {
	settings := Settings{StartingWallet: 10000, SquadSize: 1, MinBasePrice: 500}
	team := &Team{
		ID:              "team-1",
		Name:            "CSK",
		WalletRemaining: 9000,
		Squad: []SquadMember{
			{PlayerID: 3, Name: "MS Dhoni", Role: RoleWicketKeeper, Price: 1000},
		},
	}
	player := Player{ID: 2, Name: "Ravindra Jadeja", Role: RoleAllRounder, BasePrice: 500, Status: StatusUnsold}

	verdict := ValidateBid(team, player, 600, settings)
	if verdict.Accepted {
		t.Fatalf("expected rejection for full squad, got accept: %q", verdict.Message)
	}
	if !strings.Contains(verdict.Message, "no open squad slots") {
		t.Fatalf("expected no-open-slots message, got %q", verdict.Message)
	}
}

func TestValidateBid_InsufficientBalance(t *testing.T) {
	settings := Settings{StartingWallet: 10000, SquadSize: 11, MinBasePrice: 1}
	team := &Team{ID: "team-1", Name: "RCB", WalletRemaining: 700}
	player := Player{ID: 4, Name: "Virat Kohli", Role: RoleBatsman, BasePrice: 500, Status: StatusUnsold}

	verdict := ValidateBid(team, player, 800, settings)
	if verdict.Accepted {
		t.Fatalf("expected rejection for insufficient balance, got accept")
	}
	if !strings.Contains(verdict.Message, "does not have enough balance") {
		t.Fatalf("expected balance message, got %q", verdict.Message)
	}
}

func TestValidateBid_ReserveRuleScenario(t *testing.T) {
	// Worked example: wallet 1000 left, 2 slots left, min base 500.
	settings := Settings{StartingWallet: 10000, SquadSize: 3, MinBasePrice: 500}
	team := &Team{
		ID:              "team-1",
		Name:            "Delhi Capitals",
		WalletRemaining: 1000,
		Squad: []SquadMember{
			{PlayerID: 7, Name: "Axar Patel", Role: RoleAllRounder, Price: 9000},
		},
	}
	player := Player{ID: 8, Name: "Rishabh Pant", Role: RoleWicketKeeper, BasePrice: 300, Status: StatusUnsold}

	// 600 leaves 400 < required reserve 500: rejected.
	if v := ValidateBid(team, player, 600, settings); v.Accepted {
		t.Fatalf("expected reserve-rule rejection at 600, got accept: %q", v.Message)
	}

	// 400 leaves 600 >= 500: accepted.
	if v := ValidateBid(team, player, 400, settings); !v.Accepted {
		t.Fatalf("expected accept at 400, got rejection: %q", v.Message)
	}
}
