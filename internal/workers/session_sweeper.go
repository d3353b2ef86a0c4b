// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package workers

import (
	"time"

	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/session"
)

const defaultSweepInterval = 10 * time.Minute

// SessionSweeper periodically reclaims expired session entries from the
// in-memory session store. Expired sessions are already unresolvable, so
// sweeping is purely about keeping the store from growing without bound.
type SessionSweeper struct {
	sessions *session.Manager
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper creates a sweeper over the given session manager.
// A non-positive interval falls back to a ten minute default.
func NewSessionSweeper(sessions *session.Manager, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
// The loop runs for the lifetime of the process.
func (s *SessionSweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			if removed := s.sessions.Sweep(time.Now()); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}()
}
