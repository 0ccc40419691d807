package auction

import "context"

// TeamRepository describes ledger persistence needs from use cases. All
// mutation goes through the controller; implementations trust the caller to
// have validated sales beforehand.
type TeamRepository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Add(ctx context.Context, team Team) error
	AddIfNameFree(ctx context.Context, team Team) (bool, error)
	CommitSale(ctx context.Context, teamID string, member SquadMember) error
	RecomputeWallets(ctx context.Context, startingWallet int) error
}

// PlayerRepository holds the ordered auction roster and per-player status.
type PlayerRepository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID int) (Player, bool, error)
	MarkSold(ctx context.Context, playerID int, teamID string, price int) error
	MarkPassed(ctx context.Context, playerID int) error
	MarkUnsold(ctx context.Context, playerID int) error
}
