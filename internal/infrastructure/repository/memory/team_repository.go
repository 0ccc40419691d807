package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/crickstack/auction-room/internal/domain/auction"
)

// TeamRepository keeps the team ledgers in insertion order for the lifetime
// of the session.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []auction.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

func (r *TeamRepository) List(_ context.Context) ([]auction.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]auction.Team, 0, len(r.teams))
	for _, team := range r.teams {
		out = append(out, cloneTeam(team))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (auction.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, team := range r.teams {
		if team.ID == teamID {
			return cloneTeam(team), true, nil
		}
	}

	return auction.Team{}, false, nil
}

// Add appends a team without any name-uniqueness check. This mirrors the
// manual add path; bulk seeding goes through AddIfNameFree instead.
func (r *TeamRepository) Add(_ context.Context, team auction.Team) error {
	if err := team.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = append(r.teams, cloneTeam(team))

	return nil
}

// AddIfNameFree appends a team unless another team already uses the same
// name under case-insensitive comparison. Returns false when skipped.
func (r *TeamRepository) AddIfNameFree(_ context.Context, team auction.Team) (bool, error) {
	if err := team.Validate(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.teams {
		if strings.EqualFold(existing.Name, team.Name) {
			return false, nil
		}
	}
	r.teams = append(r.teams, cloneTeam(team))

	return true, nil
}

// CommitSale decrements the wallet and appends the squad record in one
// step. The caller is responsible for having run bid validation first.
func (r *TeamRepository) CommitSale(_ context.Context, teamID string, member auction.SquadMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID != teamID {
			continue
		}
		r.teams[idx].WalletRemaining -= member.Price
		r.teams[idx].Squad = append(r.teams[idx].Squad, member)

		return nil
	}

	return fmt.Errorf("team %s not found", teamID)
}

// RecomputeWallets rebuilds every wallet from squad spend against the new
// starting wallet, clamped at zero. Squads are untouched.
func (r *TeamRepository) RecomputeWallets(_ context.Context, startingWallet int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		remaining := startingWallet - r.teams[idx].SpentTotal()
		if remaining < 0 {
			remaining = 0
		}
		r.teams[idx].WalletRemaining = remaining
	}

	return nil
}

func cloneTeam(team auction.Team) auction.Team {
	out := team
	out.Squad = make([]auction.SquadMember, len(team.Squad))
	copy(out.Squad, team.Squad)

	return out
}
