package http

import (
	"encoding/json"
	"net/http"

	"github.com/itsarev/bitquest-server/internal/app"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/utils"
	"github.com/itsarev/bitquest-server/models"
)

// setSessionCookie attaches the signed session token to the response.
// HttpOnly keeps the token away from client-side scripts.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	registered, err := h.services.AuthService.RegisterPlayer(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registered.ID).Str("username", registered.Username).Msg("player registered")

	sanitized := registered.Sanitized()
	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true, Player: &sanitized}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	player, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.sessions.Create(player.ID, player.Username)
	if err != nil {
		log.Err(err).Int64("id", player.ID).Msg("session creation failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", player.ID).Str("username", player.Username).Msg("player logged in")

	setSessionCookie(w, token)
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Player:  models.LoginPlayer{ID: player.ID, Username: player.Username},
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(sessionToken(r))
	clearSessionCookie(w)

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// logoutOthers acknowledges the request without invalidating anything; see
// [session.Manager.DestroyOthers].
func (h *Handler) logoutOthers(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSessionCookie)
		return
	}

	h.sessions.DestroyOthers(sessionToken(r), identity.PlayerID)

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSessionCookie)
		return
	}

	player, err := h.services.PlayerService.GetPlayerByID(ctx, identity.PlayerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	sanitized := player.Sanitized()
	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true, Player: &sanitized}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSessionCookie)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorKind(w, http.StatusBadRequest, kindMissingField, app.MsgInvalidJSONBody)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, identity.PlayerID, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", identity.PlayerID).Msg("password changed")

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSessionCookie)
		return
	}

	if err := h.services.PlayerService.DeleteAccount(ctx, identity.PlayerID); err != nil {
		h.writeError(w, r, err)
		return
	}

	// no session bound to the deleted account may outlive it
	h.sessions.DestroyAllForPlayer(identity.PlayerID)
	clearSessionCookie(w)

	log.Info().Int64("id", identity.PlayerID).Str("username", identity.Username).Msg("account deleted")

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
