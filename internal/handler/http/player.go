package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itsarev/bitquest-server/internal/app"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/utils"
	"github.com/itsarev/bitquest-server/models"
)

// listPlayers serves all three listing aliases. The response is the raw row
// set, stored password hashes included — the deployed game client consumes
// this shape, so the exposure stays (see the API compatibility notes).
func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.services.PlayerService.ListPlayers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, players, http.StatusOK)
}

// getPlayerByUsername returns the full row for one player, password hash
// included, mirroring the listing endpoints.
func (h *Handler) getPlayerByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	player, err := h.services.PlayerService.GetPlayerByUsername(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true, Player: &player}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSessionCookie)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	if err := h.services.PlayerService.UpdateProfile(ctx, identity.PlayerID, update); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// uploadAvatar stores the avatar payload via the profile-update path. A
// dedicated endpoint exists because the game client uploads avatars
// separately from the rest of the profile.
func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSessionCookie)
		return
	}

	var req models.UploadAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	update := models.ProfileUpdate{Avatar: &req.Avatar}
	if err := h.services.PlayerService.UpdateProfile(ctx, identity.PlayerID, update); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
