package httpapi

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/crickstack/auction-room/internal/domain/auction"
	"github.com/crickstack/auction-room/internal/usecase"
)

type settingsDTO struct {
	StartingWallet int `json:"starting_wallet"`
	SquadSize      int `json:"squad_size"`
	MinBasePrice   int `json:"min_base_price"`
}

type squadMemberDTO struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Price    int    `json:"price"`
}

type teamDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Initials        string           `json:"initials"`
	Color           string           `json:"color"`
	WalletRemaining int              `json:"wallet_remaining"`
	SpentTotal      int              `json:"spent_total"`
	SlotsLeft       int              `json:"slots_left"`
	MaxAllowableBid int              `json:"max_allowable_bid"`
	RoleCounts      map[string]int   `json:"role_counts"`
	Squad           []squadMemberDTO `json:"squad"`
}

type playerDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	BasePrice    int     `json:"base_price"`
	ImageURL     string  `json:"image_url,omitempty"`
	Status       string  `json:"status"`
	SoldToTeamID *string `json:"sold_to_team_id,omitempty"`
	SoldPrice    *int    `json:"sold_price,omitempty"`
}

type poolStatsDTO struct {
	Total  int `json:"total"`
	Sold   int `json:"sold"`
	Open   int `json:"open"`
	Passed int `json:"passed"`
}

type auctionSnapshotDTO struct {
	Settings settingsDTO  `json:"settings"`
	Teams    []teamDTO    `json:"teams"`
	Players  []playerDTO  `json:"players"`
	Active   *playerDTO   `json:"active,omitempty"`
	Stats    poolStatsDTO `json:"stats"`
}

type bidVerdictDTO struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

func snapshotToDTO(ctx context.Context, snap usecase.Snapshot) auctionSnapshotDTO {
	ctx, span := startSpan(ctx, "httpapi.snapshotToDTO")
	defer span.End()

	teams := make([]teamDTO, 0, len(snap.Teams))
	for _, team := range snap.Teams {
		teams = append(teams, teamToDTO(ctx, team, snap.Settings))
	}

	players := make([]playerDTO, 0, len(snap.Players))
	for _, player := range snap.Players {
		players = append(players, playerToDTO(player))
	}

	var active *playerDTO
	if snap.Active != nil {
		dto := playerToDTO(*snap.Active)
		active = &dto
	}

	return auctionSnapshotDTO{
		Settings: settingsDTO{
			StartingWallet: snap.Settings.StartingWallet,
			SquadSize:      snap.Settings.SquadSize,
			MinBasePrice:   snap.Settings.MinBasePrice,
		},
		Teams:   teams,
		Players: players,
		Active:  active,
		Stats: poolStatsDTO{
			Total:  snap.Stats.Total,
			Sold:   snap.Stats.Sold,
			Open:   snap.Stats.Open,
			Passed: snap.Stats.Passed,
		},
	}
}

func teamToDTO(ctx context.Context, team auction.Team, settings auction.Settings) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	squad := make([]squadMemberDTO, 0, len(team.Squad))
	for _, member := range team.Squad {
		squad = append(squad, squadMemberDTO{
			PlayerID: member.PlayerID,
			Name:     member.Name,
			Role:     string(member.Role),
			Price:    member.Price,
		})
	}

	roleCounts := make(map[string]int)
	for role, count := range team.RoleCounts() {
		roleCounts[string(role)] = count
	}

	return teamDTO{
		ID:              team.ID,
		Name:            team.Name,
		Initials:        teamInitials(team.Name),
		Color:           teamColor(team.Name),
		WalletRemaining: team.WalletRemaining,
		SpentTotal:      team.SpentTotal(),
		SlotsLeft:       team.SlotsLeft(settings.SquadSize),
		MaxAllowableBid: team.MaxAllowableBid(settings),
		RoleCounts:      roleCounts,
		Squad:           squad,
	}
}

func playerToDTO(player auction.Player) playerDTO {
	return playerDTO{
		ID:           player.ID,
		Name:         player.Name,
		Role:         string(player.Role),
		BasePrice:    player.BasePrice,
		ImageURL:     player.ImageURL,
		Status:       string(player.Status),
		SoldToTeamID: player.SoldToTeamID,
		SoldPrice:    player.SoldPrice,
	}
}

func teamInitials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "T"
	}
	if len(parts) == 1 {
		up := strings.ToUpper(parts[0])
		if len(up) <= 2 {
			return up
		}
		return up[:2]
	}

	return strings.ToUpper(parts[0][:1] + parts[1][:1])
}

// teamColor derives a stable avatar color from the team name so the same
// team renders the same hue on every client.
func teamColor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	hue := h.Sum32() % 360
	return fmt.Sprintf("hsl(%d, 70%%, 45%%)", hue)
}
