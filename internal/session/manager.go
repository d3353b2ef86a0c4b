// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

// Package session implements the server-side session store that binds a
// signed cookie token to a player identity.
//
// Sessions live only in process memory: a restart logs every player out,
// which is an accepted property of the deployment. The cookie value is a
// signed JWT carrying the opaque session ID; the identity itself is never
// stored client-side.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itsarev/bitquest-server/internal/config"
	"github.com/itsarev/bitquest-server/internal/logger"
)

// Identity is the player identity bound to an authenticated session.
type Identity struct {
	PlayerID int64
	Username string
}

// entry is one live session: the bound identity plus the moment the signed
// token stops validating. Entries past expiresAt are unreachable through
// Resolve and exist only until the next sweep.
type entry struct {
	identity  Identity
	expiresAt time.Time
}

// Manager issues, resolves, and destroys sessions. Safe for concurrent use.
type Manager struct {
	signKey string
	ttl     time.Duration
	logger  *logger.Logger

	mu       sync.RWMutex
	sessions map[string]entry
}

// NewManager constructs a session [Manager] using the signing secret and
// session lifetime from cfg.
func NewManager(cfg config.App, logger *logger.Logger) *Manager {
	logger.Debug().Msg("session manager created")
	return &Manager{
		signKey:  cfg.SessionSignKey,
		ttl:      cfg.SessionTTL,
		logger:   logger,
		sessions: make(map[string]entry),
	}
}

// Create binds a new session to the given player identity and returns the
// signed token to be placed in the session cookie.
func (m *Manager) Create(playerID int64, username string) (string, error) {
	sid := uuid.NewString()

	token, err := signSessionToken(sid, m.signKey, m.ttl)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.sessions[sid] = entry{
		identity:  Identity{PlayerID: playerID, Username: username},
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	return token, nil
}

// Resolve validates a cookie token and returns the identity bound to it.
//
// Returns [ErrNoSession] when the token is missing, tampered with, expired,
// or references a session that has been destroyed — callers treat all of
// these uniformly as an anonymous request.
func (m *Manager) Resolve(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoSession
	}

	sid, err := parseSessionToken(token, m.signKey)
	if err != nil {
		return Identity{}, ErrNoSession
	}

	m.mu.RLock()
	e, ok := m.sessions[sid]
	m.mu.RUnlock()

	if !ok {
		return Identity{}, ErrNoSession
	}

	return e.identity, nil
}

// Destroy removes the session referenced by the token. Destroying an unknown
// or already-destroyed session is a no-op.
func (m *Manager) Destroy(token string) {
	sid, err := parseSessionToken(token, m.signKey)
	if err != nil {
		return
	}

	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}

// DestroyAllForPlayer removes every session bound to the given player.
// Called synchronously on account deletion so that no request authenticated
// as a deleted player can succeed afterwards.
func (m *Manager) DestroyAllForPlayer(playerID int64) {
	m.mu.Lock()
	for sid, e := range m.sessions {
		if e.identity.PlayerID == playerID {
			delete(m.sessions, sid)
		}
	}
	m.mu.Unlock()
}

// Sweep removes every session whose token has expired before now and
// returns the number of removed entries. Expired entries were already
// unreachable through Resolve; sweeping only reclaims the memory.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for sid, e := range m.sessions {
		if e.expiresAt.Before(now) {
			delete(m.sessions, sid)
			removed++
		}
	}

	return removed
}

// DestroyOthers is accepted but performs no invalidation: the server does not
// track which of a player's sessions belongs to the calling device, so there
// is no "other sessions" set to operate on. Documented limitation, not a
// guarantee.
func (m *Manager) DestroyOthers(token string, playerID int64) {
	m.logger.Debug().Int64("player_id", playerID).Msg("logout-others requested; no-op")
}
