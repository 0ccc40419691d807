package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/crickstack/auction-room/internal/domain/auction"
	idgen "github.com/crickstack/auction-room/internal/platform/id"
	"github.com/crickstack/auction-room/internal/platform/logging"
)

var defaultTeamNames = []string{"Mumbai Indians", "CSK", "RCB", "Delhi Capitals"}

// SaleOutcome reports the result of a sell attempt. A rejected bid is a
// normal outcome, not an error: nothing was mutated and Message explains
// why.
type SaleOutcome struct {
	Accepted bool
	Message  string
}

// PoolStats summarizes the roster by status for the presentation layer.
type PoolStats struct {
	Total  int
	Sold   int
	Open   int
	Passed int
}

// Snapshot is the read-only view of the whole session, recomputed on demand
// after every mutating operation.
type Snapshot struct {
	Settings auction.Settings
	Teams    []auction.Team
	Players  []auction.Player
	Active   *auction.Player
	Stats    PoolStats
}

// AuctionService is the session controller: it owns the global settings and
// the active-player cursor, and orchestrates every mutation of the team
// ledgers and the player registry. Operations are serialized by a single
// mutex so each transition runs to completion before the next one starts;
// validation always precedes mutation, keeping every rejected operation
// free of side effects.
type AuctionService struct {
	teamRepo   auction.TeamRepository
	playerRepo auction.PlayerRepository
	idGen      idgen.Generator
	logger     *logging.Logger

	mu          sync.Mutex
	settings    auction.Settings
	activeIndex int
}

func NewAuctionService(
	teamRepo auction.TeamRepository,
	playerRepo auction.PlayerRepository,
	settings auction.Settings,
	idGen idgen.Generator,
	logger *logging.Logger,
) *AuctionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuctionService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		idGen:       idGen,
		logger:      logger,
		settings:    settings,
		activeIndex: -1,
	}
}

// ApplySettings replaces the global parameters, falling back to the
// documented defaults for non-positive values, and rebuilds every team
// wallet from its squad spend against the new starting wallet.
func (s *AuctionService) ApplySettings(ctx context.Context, startingWallet, squadSize, minBasePrice int) (auction.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.ApplySettings")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = auction.SettingsFromInput(startingWallet, squadSize, minBasePrice)
	if err := s.teamRepo.RecomputeWallets(ctx, s.settings.StartingWallet); err != nil {
		return auction.Settings{}, fmt.Errorf("recompute wallets: %w", err)
	}

	s.logger.InfoContext(ctx, "settings applied",
		"starting_wallet", s.settings.StartingWallet,
		"squad_size", s.settings.SquadSize,
		"min_base_price", s.settings.MinBasePrice,
	)

	return s.settings, nil
}

// AddTeam creates a single team with a fresh wallet. Duplicate names are
// allowed here; only bulk seeding enforces uniqueness.
func (s *AuctionService) AddTeam(ctx context.Context, name string) (auction.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.AddTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return auction.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.newTeam(name)
	if err != nil {
		return auction.Team{}, err
	}
	if err := s.teamRepo.Add(ctx, team); err != nil {
		return auction.Team{}, fmt.Errorf("add team: %w", err)
	}

	s.logger.InfoContext(ctx, "team added", "team_id", team.ID, "team_name", team.Name)

	return team, nil
}

// SeedDefaultTeams creates the default franchises, silently skipping any
// name already taken under case-insensitive comparison. Returns the teams
// actually created.
func (s *AuctionService) SeedDefaultTeams(ctx context.Context) ([]auction.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.SeedDefaultTeams")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]auction.Team, 0, len(defaultTeamNames))
	for _, name := range defaultTeamNames {
		team, err := s.newTeam(name)
		if err != nil {
			return nil, err
		}
		ok, err := s.teamRepo.AddIfNameFree(ctx, team)
		if err != nil {
			return nil, fmt.Errorf("seed team %s: %w", name, err)
		}
		if ok {
			added = append(added, team)
		}
	}

	s.logger.InfoContext(ctx, "default teams seeded", "added", len(added))

	return added, nil
}

// Advance moves the cursor to the next unsold player, or clears it when the
// roster has no unsold players left. Returns nil when nothing is left for
// live auction.
func (s *AuctionService) Advance(ctx context.Context, loopFromStart bool) (*auction.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Advance")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return s.moveCursor(players, loopFromStart), nil
}

// Sell attempts to sell the active player to the given team at the given
// price. The verdict decides: on acceptance the ledger and the registry are
// committed together and the cursor advances; on rejection nothing changes
// and the outcome carries the validator's message.
func (s *AuctionService) Sell(ctx context.Context, teamID string, price int) (SaleOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Sell")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	players, active, err := s.requireActivePlayer(ctx)
	if err != nil {
		return SaleOutcome{}, err
	}

	var teamRef *auction.Team
	team, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return SaleOutcome{}, fmt.Errorf("get team: %w", err)
	}
	if found {
		teamRef = &team
	}

	verdict := auction.ValidateBid(teamRef, *active, price, s.settings)
	if !verdict.Accepted {
		s.logger.InfoContext(ctx, "bid rejected",
			"player_id", active.ID, "team_id", teamID, "price", price, "reason", verdict.Message)
		return SaleOutcome{Accepted: false, Message: verdict.Message}, nil
	}

	// Both repositories were checked above, so the commit pair cannot fail
	// on lookups; any error here is an internal inconsistency.
	if err := s.playerRepo.MarkSold(ctx, active.ID, team.ID, price); err != nil {
		return SaleOutcome{}, fmt.Errorf("mark player sold: %w", err)
	}
	if err := s.teamRepo.CommitSale(ctx, team.ID, auction.SquadMember{
		PlayerID: active.ID,
		Name:     active.Name,
		Role:     active.Role,
		Price:    price,
	}); err != nil {
		return SaleOutcome{}, fmt.Errorf("commit sale: %w", err)
	}

	players[s.activeIndex].Status = auction.StatusSold
	s.moveCursor(players, false)

	s.logger.InfoContext(ctx, "player sold",
		"player_id", active.ID, "player_name", active.Name, "team_id", team.ID, "price", price)

	return SaleOutcome{
		Accepted: true,
		Message:  fmt.Sprintf("%s sold to %s for ₹%d.", active.Name, team.Name, price),
	}, nil
}

// Pass marks the active player as passed and advances the cursor. Passed
// players stay available for requeue.
func (s *AuctionService) Pass(ctx context.Context) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Pass")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	players, active, err := s.requireActivePlayer(ctx)
	if err != nil {
		return "", err
	}

	if err := s.playerRepo.MarkPassed(ctx, active.ID); err != nil {
		return "", fmt.Errorf("mark player passed: %w", err)
	}

	players[s.activeIndex].Status = auction.StatusPassed
	s.moveCursor(players, false)

	s.logger.InfoContext(ctx, "player passed", "player_id", active.ID, "player_name", active.Name)

	return fmt.Sprintf("%s marked as passed.", active.Name), nil
}

// Requeue reinstates a passed player as unsold and makes it the active
// player immediately, instead of advancing the sequencer.
func (s *AuctionService) Requeue(ctx context.Context, playerID int) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Requeue")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	player, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return "", fmt.Errorf("get player: %w", err)
	}
	if !found {
		return "", fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}
	if player.Status != auction.StatusPassed {
		return "", fmt.Errorf("%w: player %d is %s", ErrPlayerNotPassed, playerID, player.Status)
	}

	if err := s.playerRepo.MarkUnsold(ctx, playerID); err != nil {
		return "", fmt.Errorf("mark player unsold: %w", err)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list players: %w", err)
	}
	for idx := range players {
		if players[idx].ID == playerID {
			s.activeIndex = idx
			break
		}
	}

	s.logger.InfoContext(ctx, "player requeued", "player_id", player.ID, "player_name", player.Name)

	return fmt.Sprintf("%s added back to auction queue.", player.Name), nil
}

// CheckBid runs bid validation for the active player without committing
// anything, for live validation panels.
func (s *AuctionService) CheckBid(ctx context.Context, teamID string, price int) (auction.Verdict, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.CheckBid")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, active, err := s.requireActivePlayer(ctx)
	if err != nil {
		return auction.Verdict{}, err
	}

	var teamRef *auction.Team
	team, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return auction.Verdict{}, fmt.Errorf("get team: %w", err)
	}
	if found {
		teamRef = &team
	}

	return auction.ValidateBid(teamRef, *active, price, s.settings), nil
}

// Snapshot returns a consistent read-only view of the session.
func (s *AuctionService) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list teams: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list players: %w", err)
	}

	out := Snapshot{
		Settings: s.settings,
		Teams:    teams,
		Players:  players,
		Stats:    PoolStats{Total: len(players)},
	}
	for _, p := range players {
		switch p.Status {
		case auction.StatusSold:
			out.Stats.Sold++
		case auction.StatusPassed:
			out.Stats.Passed++
		default:
			out.Stats.Open++
		}
	}
	if s.activeIndex >= 0 && s.activeIndex < len(players) {
		active := players[s.activeIndex]
		out.Active = &active
	}

	return out, nil
}

// MaxAllowableBid exposes the current-slot ceiling for one team.
func (s *AuctionService) MaxAllowableBid(team auction.Team) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return team.MaxAllowableBid(s.settings)
}

func (s *AuctionService) newTeam(name string) (auction.Team, error) {
	teamID, err := s.idGen.NewID()
	if err != nil {
		return auction.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	return auction.Team{
		ID:              teamID,
		Name:            name,
		WalletRemaining: s.settings.StartingWallet,
	}, nil
}

// requireActivePlayer loads the roster and checks the sell/pass
// preconditions: a cursor pointing at a player whose status is unsold.
// Callers hold s.mu.
func (s *AuctionService) requireActivePlayer(ctx context.Context) ([]auction.Player, *auction.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list players: %w", err)
	}
	if s.activeIndex < 0 || s.activeIndex >= len(players) {
		return nil, nil, ErrNoActivePlayer
	}

	active := players[s.activeIndex]
	if active.Status != auction.StatusUnsold {
		return nil, nil, fmt.Errorf("%w: player %d is %s", ErrPlayerNotOpen, active.ID, active.Status)
	}

	return players, &active, nil
}

// moveCursor runs the two-phase sequencer over the given roster view and
// stores the result. Callers hold s.mu.
func (s *AuctionService) moveCursor(players []auction.Player, loopFromStart bool) *auction.Player {
	idx, found := auction.NextUnsold(players, s.activeIndex, loopFromStart)
	s.activeIndex = idx
	if !found {
		return nil
	}

	active := players[idx]

	return &active
}
