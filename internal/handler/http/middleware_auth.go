// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the game API. Session authentication, logging and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"context"
	"net/http"

	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, resolves the identity via
// [session.Manager.Resolve], and — on success — stores the identity in the
// request context under [utils.IdentityCtxKey] before delegating to the next
// handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The cookie token is tampered with, expired, or references a session
//     that no longer exists ([session.ErrNoSession]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Warn().Msg("request without session cookie")
			h.writeError(w, r, ErrNoSessionCookie)
			return
		}

		identity, err := h.sessions.Resolve(cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("session resolution failed")
			h.writeError(w, r, err)
			return
		}

		// Store the identity in the context so that downstream handlers can
		// retrieve it without re-resolving the session.
		ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken returns the raw session cookie value of the request, or the
// empty string when no cookie is present.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
