package auction

import "testing"

func rosterWithStatuses(statuses ...Status) []Player {
	players := make([]Player, 0, len(statuses))
	for idx, status := range statuses {
		players = append(players, Player{
			ID:        idx + 1,
			Name:      "Player",
			Role:      RoleBatsman,
			BasePrice: 500,
			Status:    status,
		})
	}

	return players
}

func TestNextUnsold(t *testing.T) {
	tests := []struct {
		name          string
		statuses      []Status
		current       int
		loopFromStart bool
		wantIndex     int
		wantFound     bool
	}{
		{
			name:      "empty roster",
			statuses:  nil,
			current:   -1,
			wantIndex: -1,
		},
		{
			name:      "first player on fresh roster",
			statuses:  []Status{StatusUnsold, StatusUnsold},
			current:   -1,
			wantIndex: 0,
			wantFound: true,
		},
		{
			name:      "forward scan skips sold and passed",
			statuses:  []Status{StatusUnsold, StatusSold, StatusPassed, StatusUnsold},
			current:   0,
			wantIndex: 3,
			wantFound: true,
		},
		{
			name:      "fallback scan finds revived player behind cursor",
			statuses:  []Status{StatusUnsold, StatusSold, StatusSold},
			current:   2,
			wantIndex: 0,
			wantFound: true,
		},
		{
			name:          "loop from start ignores cursor",
			statuses:      []Status{StatusUnsold, StatusUnsold},
			current:       1,
			loopFromStart: true,
			wantIndex:     0,
			wantFound:     true,
		},
		{
			name:      "no unsold players anywhere",
			statuses:  []Status{StatusSold, StatusPassed},
			current:   0,
			wantIndex: -1,
		},
		{
			name:      "single remaining player is refound",
			statuses:  []Status{StatusSold, StatusUnsold, StatusSold},
			current:   1,
			wantIndex: 1,
			wantFound: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, found := NextUnsold(rosterWithStatuses(tc.statuses...), tc.current, tc.loopFromStart)
			if found != tc.wantFound {
				t.Fatalf("expected found=%v, got %v", tc.wantFound, found)
			}
			if idx != tc.wantIndex {
				t.Fatalf("expected index %d, got %d", tc.wantIndex, idx)
			}
		})
	}
}
