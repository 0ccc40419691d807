package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crickstack/auction-room/internal/domain/auction"
)

func demoPlayers(t *testing.T) []auction.Player {
	t.Helper()

	players, err := auction.BuildRoster(DemoRoster())
	require.NoError(t, err)

	return players
}

func TestPlayerRepository_IDsAssignedInOrder(t *testing.T) {
	players := demoPlayers(t)
	repo := NewPlayerRepository(players)

	listed, err := repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, listed, len(players))

	for idx, p := range listed {
		require.Equal(t, idx+1, p.ID)
		require.Equal(t, auction.StatusUnsold, p.Status)
		require.Nil(t, p.SoldToTeamID)
		require.Nil(t, p.SoldPrice)
	}
}

func TestPlayerRepository_SoldCarriesSaleRecord(t *testing.T) {
	repo := NewPlayerRepository(demoPlayers(t))
	ctx := t.Context()

	require.NoError(t, repo.MarkSold(ctx, 3, "team-1", 2200))

	p, found, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, auction.StatusSold, p.Status)
	require.NotNil(t, p.SoldToTeamID)
	require.Equal(t, "team-1", *p.SoldToTeamID)
	require.NotNil(t, p.SoldPrice)
	require.Equal(t, 2200, *p.SoldPrice)
	require.NoError(t, p.Validate())
}

func TestPlayerRepository_PassThenRequeueClearsBookkeeping(t *testing.T) {
	repo := NewPlayerRepository(demoPlayers(t))
	ctx := t.Context()

	require.NoError(t, repo.MarkPassed(ctx, 5))
	p, _, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, auction.StatusPassed, p.Status)

	require.NoError(t, repo.MarkUnsold(ctx, 5))
	p, _, err = repo.GetByID(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, auction.StatusUnsold, p.Status)
	require.Nil(t, p.SoldToTeamID)
	require.Nil(t, p.SoldPrice)
}

func TestPlayerRepository_UnknownPlayer(t *testing.T) {
	repo := NewPlayerRepository(demoPlayers(t))
	ctx := t.Context()

	_, found, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	require.False(t, found)

	require.Error(t, repo.MarkSold(ctx, 999, "team-1", 100))
	require.Error(t, repo.MarkPassed(ctx, 999))
}
