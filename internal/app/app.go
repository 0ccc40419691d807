package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crickstack/auction-room/external/roster"
	"github.com/crickstack/auction-room/internal/config"
	"github.com/crickstack/auction-room/internal/domain/auction"
	"github.com/crickstack/auction-room/internal/infrastructure/repository/memory"
	"github.com/crickstack/auction-room/internal/interfaces/httpapi"
	idgen "github.com/crickstack/auction-room/internal/platform/id"
	"github.com/crickstack/auction-room/internal/platform/logging"
	"github.com/crickstack/auction-room/internal/usecase"
)

// NewHTTPServer wires the whole session: the roster is loaded and the
// first player put on the block before the server accepts requests, so no
// client ever observes an empty pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	descriptors, err := loadRoster(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	players, err := auction.BuildRoster(descriptors)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}

	settings := auction.SettingsFromInput(
		cfg.AuctionStartingWallet,
		cfg.AuctionSquadSize,
		cfg.AuctionMinBasePrice,
	)

	auctionSvc := usecase.NewAuctionService(
		memory.NewTeamRepository(),
		memory.NewPlayerRepository(players),
		settings,
		idgen.NewUUIDGenerator(),
		logger,
	)
	if _, err := auctionSvc.SeedDefaultTeams(ctx); err != nil {
		return nil, fmt.Errorf("seed teams: %w", err)
	}
	if _, err := auctionSvc.Advance(ctx, false); err != nil {
		return nil, fmt.Errorf("open first lot: %w", err)
	}

	handler := httpapi.NewHandler(auctionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func loadRoster(ctx context.Context, cfg config.Config, logger *logging.Logger) ([]auction.PlayerDescriptor, error) {
	switch {
	case cfg.RosterURL != "":
		client := roster.NewClient(roster.ClientConfig{
			URL:        cfg.RosterURL,
			Timeout:    cfg.RosterTimeout,
			MaxRetries: cfg.RosterMaxRetries,
			Logger:     logger,
		})
		return client.Fetch(ctx)
	case cfg.RosterPath != "":
		return roster.LoadFile(cfg.RosterPath)
	default:
		logger.InfoContext(ctx, "no roster source configured, using demo roster")
		return memory.DemoRoster(), nil
	}
}
