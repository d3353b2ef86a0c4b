package http

import (
	"encoding/json"
	"net/http"

	"github.com/itsarev/bitquest-server/internal/app"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/utils"
	"github.com/itsarev/bitquest-server/models"
)

// reward applies point and coin deltas atomically. A delta that would take
// the coin balance below zero is rejected with InsufficientCoins and nothing
// is written.
func (h *Handler) reward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	updated, err := h.services.PlayerService.Reward(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", req.Username).
		Int64("points", req.Points).Int64("coins", req.Coins).
		Msg("reward applied")

	sanitized := updated.Sanitized()
	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true, Player: &sanitized}, http.StatusOK)
}

// updateCoins overwrites the coin balance with an absolute value. Unlike the
// reward path it carries no floor check, so negative balances can be written
// here; the two endpoints are distinct contracts the game client relies on.
func (h *Handler) updateCoins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	if err := h.services.PlayerService.SetCoins(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true, Coins: &req.Coins}, http.StatusOK)
}

// updateProgress persists a progress save from the game client.
func (h *Handler) updateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	if err := h.services.PlayerService.SaveProgress(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// updateMilestones flips the per-chapter milestone flags for a player.
func (h *Handler) updateMilestones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateMilestonesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	if err := h.services.PlayerService.SetMilestones(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
