package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/crickstack/auction-room/internal/usecase"
)

type addTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeam")
	defer span.End()

	var req addTeamRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.auctionService.AddTeam(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "add team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	snap, err := h.auctionService.Snapshot(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "snapshot after add team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, team, snap.Settings))
}

func (h *Handler) SeedTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedTeams")
	defer span.End()

	added, err := h.auctionService.SeedDefaultTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "seed teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	snap, err := h.auctionService.Snapshot(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "snapshot after seed failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(added))
	for _, team := range added {
		items = append(items, teamToDTO(ctx, team, snap.Settings))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
