package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/crickstack/auction-room/internal/usecase"
)

type applySettingsRequest struct {
	StartingWallet int `json:"starting_wallet" validate:"omitempty,min=0"`
	SquadSize      int `json:"squad_size" validate:"omitempty,min=0"`
	MinBasePrice   int `json:"min_base_price" validate:"omitempty,min=0"`
}

type sellRequest struct {
	TeamID string `json:"team_id" validate:"required"`
	Price  int    `json:"price"`
}

type advanceRequest struct {
	LoopFromStart bool `json:"loop_from_start"`
}

type requeueRequest struct {
	PlayerID int `json:"player_id" validate:"required,min=1"`
}

type checkBidRequest struct {
	TeamID string `json:"team_id" validate:"required"`
	Price  int    `json:"price"`
}

func (h *Handler) GetAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuction")
	defer span.End()

	snap, err := h.auctionService.Snapshot(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get auction snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(ctx, snap))
}

func (h *Handler) ApplySettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplySettings")
	defer span.End()

	var req applySettingsRequest
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

	settings, err := h.auctionService.ApplySettings(ctx, req.StartingWallet, req.SquadSize, req.MinBasePrice)
	if err != nil {
		h.logger.WarnContext(ctx, "apply settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsDTO{
		StartingWallet: settings.StartingWallet,
		SquadSize:      settings.SquadSize,
		MinBasePrice:   settings.MinBasePrice,
	})
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Sell")
	defer span.End()

	var req sellRequest
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

	outcome, err := h.auctionService.Sell(ctx, req.TeamID, req.Price)
	if err != nil {
		h.logger.WarnContext(ctx, "sell failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bidVerdictDTO{
		Accepted: outcome.Accepted,
		Message:  outcome.Message,
	})
}

func (h *Handler) Pass(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Pass")
	defer span.End()

	message, err := h.auctionService.Pass(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "pass failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Advance")
	defer span.End()

	req := advanceRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		decoder := sonic.ConfigDefault.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	player, err := h.auctionService.Advance(ctx, req.LoopFromStart)
	if err != nil {
		h.logger.WarnContext(ctx, "advance failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if player == nil {
		writeSuccess(ctx, w, http.StatusOK, map[string]any{"active": nil, "exhausted": true})
		return
	}

	dto := playerToDTO(*player)
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"active": dto, "exhausted": false})
}

func (h *Handler) Requeue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Requeue")
	defer span.End()

	var req requeueRequest
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

	message, err := h.auctionService.Requeue(ctx, req.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "requeue failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) CheckBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckBid")
	defer span.End()

	var req checkBidRequest
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

	verdict, err := h.auctionService.CheckBid(ctx, req.TeamID, req.Price)
	if err != nil {
		h.logger.WarnContext(ctx, "check bid failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bidVerdictDTO{
		Accepted: verdict.Accepted,
		Message:  verdict.Message,
	})
}
