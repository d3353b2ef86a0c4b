// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itsarev/bitquest-server/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextRecorder is a terminal handler that records whether it was reached and
// with which identity.
type nextRecorder struct {
	called   bool
	playerID int64
	username string
}

func (n *nextRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.called = true
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		n.playerID = identity.PlayerID
		n.username = identity.Username
	}
	w.WriteHeader(http.StatusOK)
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	h, _ := newTestHandler(t, &mockAuthService{}, &mockPlayerService{})
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/current-user", nil)
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Equal(t, "Unauthenticated", decodeErrorResponse(t, rec.Body.Bytes()).Error)
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	h, sessions := newTestHandler(t, &mockAuthService{}, &mockPlayerService{})
	next := &nextRecorder{}

	token, err := sessions.Create(7, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/current-user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.Equal(t, int64(7), next.playerID)
	assert.Equal(t, "alice", next.username)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	h, _ := newTestHandler(t, &mockAuthService{}, &mockPlayerService{})
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/current-user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not.a.session"})
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_DestroyedSession(t *testing.T) {
	h, sessions := newTestHandler(t, &mockAuthService{}, &mockPlayerService{})
	next := &nextRecorder{}

	token, err := sessions.Create(7, "alice")
	require.NoError(t, err)
	sessions.Destroy(token)

	req := httptest.NewRequest(http.MethodGet, "/api/current-user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}
