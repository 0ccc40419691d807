package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/crickstack/auction-room/internal/domain/auction"
)

// PlayerRepository holds the ingested roster in auction order.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []auction.Player
	byID    map[int]int
}

func NewPlayerRepository(players []auction.Player) *PlayerRepository {
	stored := make([]auction.Player, len(players))
	copy(stored, players)

	byID := make(map[int]int, len(stored))
	for idx, p := range stored {
		byID[p.ID] = idx
	}

	return &PlayerRepository{players: stored, byID: byID}
}

func (r *PlayerRepository) List(_ context.Context) ([]auction.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]auction.Player, len(r.players))
	copy(out, r.players)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int) (auction.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[playerID]
	if !ok {
		return auction.Player{}, false, nil
	}

	return r.players[idx], true, nil
}

// MarkSold records the winning team and price. Sold is terminal; the caller
// guarantees the player was unsold when the sale was validated.
func (r *PlayerRepository) MarkSold(_ context.Context, playerID int, teamID string, price int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[playerID]
	if !ok {
		return fmt.Errorf("player %d not found", playerID)
	}

	r.players[idx].Status = auction.StatusSold
	r.players[idx].SoldToTeamID = &teamID
	r.players[idx].SoldPrice = &price

	return nil
}

func (r *PlayerRepository) MarkPassed(_ context.Context, playerID int) error {
	return r.setOpenStatus(playerID, auction.StatusPassed)
}

// MarkUnsold reinstates a passed player for requeue, clearing any stale
// sale bookkeeping.
func (r *PlayerRepository) MarkUnsold(_ context.Context, playerID int) error {
	return r.setOpenStatus(playerID, auction.StatusUnsold)
}

func (r *PlayerRepository) setOpenStatus(playerID int, status auction.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[playerID]
	if !ok {
		return fmt.Errorf("player %d not found", playerID)
	}

	r.players[idx].Status = status
	r.players[idx].SoldToTeamID = nil
	r.players[idx].SoldPrice = nil

	return nil
}
