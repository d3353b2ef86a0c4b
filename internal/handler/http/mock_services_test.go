// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/itsarev/bitquest-server/internal/config"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/service"
	"github.com/itsarev/bitquest-server/internal/session"
	"github.com/itsarev/bitquest-server/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerPlayerFn func(ctx context.Context, req models.CreatePlayerRequest) (models.Player, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.Player, error)
	changePasswordFn func(ctx context.Context, playerID int64, currentPassword, newPassword string) error
}

func (m *mockAuthService) RegisterPlayer(ctx context.Context, req models.CreatePlayerRequest) (models.Player, error) {
	return m.registerPlayerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Player, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, playerID int64, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, playerID, currentPassword, newPassword)
}

// ─────────────────────────────────────────────
// Mock PlayerService
// ─────────────────────────────────────────────

type mockPlayerService struct {
	getByUsernameFn func(ctx context.Context, username string) (models.Player, error)
	getByIDFn       func(ctx context.Context, id int64) (models.Player, error)
	listFn          func(ctx context.Context) ([]models.Player, error)
	updateProfileFn func(ctx context.Context, id int64, update models.ProfileUpdate) error
	deleteFn        func(ctx context.Context, id int64) error
	rewardFn        func(ctx context.Context, req models.RewardRequest) (models.Player, error)
	setCoinsFn      func(ctx context.Context, req models.UpdateCoinsRequest) error
	saveProgressFn  func(ctx context.Context, req models.UpdateProgressRequest) error
	setMilestonesFn func(ctx context.Context, req models.UpdateMilestonesRequest) error
}

func (m *mockPlayerService) GetPlayerByUsername(ctx context.Context, username string) (models.Player, error) {
	return m.getByUsernameFn(ctx, username)
}

func (m *mockPlayerService) GetPlayerByID(ctx context.Context, id int64) (models.Player, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockPlayerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return m.listFn(ctx)
}

func (m *mockPlayerService) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	return m.updateProfileFn(ctx, id, update)
}

func (m *mockPlayerService) DeleteAccount(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockPlayerService) Reward(ctx context.Context, req models.RewardRequest) (models.Player, error) {
	return m.rewardFn(ctx, req)
}

func (m *mockPlayerService) SetCoins(ctx context.Context, req models.UpdateCoinsRequest) error {
	return m.setCoinsFn(ctx, req)
}

func (m *mockPlayerService) SaveProgress(ctx context.Context, req models.UpdateProgressRequest) error {
	return m.saveProgressFn(ctx, req)
}

func (m *mockPlayerService) SetMilestones(ctx context.Context, req models.UpdateMilestonesRequest) error {
	return m.setMilestonesFn(ctx, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestSessions returns a session manager with a fixed test signing key.
func newTestSessions() *session.Manager {
	return session.NewManager(config.App{
		SessionSignKey: "test-sign-key",
		SessionTTL:     time.Hour,
	}, logger.Nop())
}

// newTestHandler builds a Handler over the given service mocks and a fresh
// session manager.
func newTestHandler(t *testing.T, auth service.AuthService, players service.PlayerService) (*Handler, *session.Manager) {
	t.Helper()
	sessions := newTestSessions()
	svcs := &service.Services{
		AuthService:   auth,
		PlayerService: players,
	}
	h := NewHandler(svcs, sessions, config.Server{HTTPAddress: ":0", StaticDir: t.TempDir()}, logger.Nop())
	return h, sessions
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorResponse parses an error envelope from raw response bytes.
func decodeErrorResponse(t *testing.T, raw []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}
