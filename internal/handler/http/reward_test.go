// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itsarev/bitquest-server/internal/service"
	"github.com/itsarev/bitquest-server/internal/store"
	"github.com/itsarev/bitquest-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReward_Success(t *testing.T) {
	players := &mockPlayerService{
		rewardFn: func(_ context.Context, req models.RewardRequest) (models.Player, error) {
			require.Equal(t, "alice", req.Username)
			require.Equal(t, int64(10), req.Points)
			require.Equal(t, int64(3), req.Coins)
			return models.Player{ID: 7, Username: "alice", Password: "$2a$10$hash", Points: 10, Coins: 3}, nil
		},
	}
	h, _ := newTestHandler(t, &mockAuthService{}, players)
	router := h.Init()

	body := jsonBody(t, models.RewardRequest{Username: "alice", Points: 10, Coins: 3})
	req := httptest.NewRequest(http.MethodPost, "/api/reward", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Player)
	assert.Equal(t, int64(10), resp.Player.Points)
	assert.Equal(t, int64(3), resp.Player.Coins)
	assert.Empty(t, resp.Player.Password)
}

func TestReward_InsufficientCoins(t *testing.T) {
	players := &mockPlayerService{
		rewardFn: func(_ context.Context, _ models.RewardRequest) (models.Player, error) {
			return models.Player{}, store.ErrInsufficientCoins
		},
	}
	h, _ := newTestHandler(t, &mockAuthService{}, players)
	router := h.Init()

	body := jsonBody(t, models.RewardRequest{Username: "alice", Coins: -10})
	req := httptest.NewRequest(http.MethodPost, "/api/reward", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "InsufficientCoins", resp.Error)
}

func TestReward_MissingUsername(t *testing.T) {
	players := &mockPlayerService{
		rewardFn: func(_ context.Context, _ models.RewardRequest) (models.Player, error) {
			return models.Player{}, service.ErrMissingField
		},
	}
	h, _ := newTestHandler(t, &mockAuthService{}, players)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/reward", strings.NewReader(`{"points":5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MissingField", decodeErrorResponse(t, rec.Body.Bytes()).Error)
}

func TestUpdateCoins_AllowsNegativeAbsoluteValue(t *testing.T) {
	var gotCoins int64
	players := &mockPlayerService{
		setCoinsFn: func(_ context.Context, req models.UpdateCoinsRequest) error {
			gotCoins = req.Coins
			return nil
		},
	}
	h, _ := newTestHandler(t, &mockAuthService{}, players)
	router := h.Init()

	// the direct path skips the floor check the reward path enforces
	body := jsonBody(t, models.UpdateCoinsRequest{Username: "alice", Coins: -50})
	req := httptest.NewRequest(http.MethodPost, "/update-coins", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(-50), gotCoins)

	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Coins)
	assert.Equal(t, int64(-50), *resp.Coins)
}

func TestUpdateProgress_Success(t *testing.T) {
	var gotReq models.UpdateProgressRequest
	players := &mockPlayerService{
		saveProgressFn: func(_ context.Context, req models.UpdateProgressRequest) error {
			gotReq = req
			return nil
		},
	}
	h, _ := newTestHandler(t, &mockAuthService{}, players)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/update-progress",
		strings.NewReader(`{"username":"alice","coins":40,"unlockedLevels":{"1":true,"2":false}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotReq.Username)
	assert.Equal(t, int64(40), gotReq.Coins)
	assert.JSONEq(t, `{"1":true,"2":false}`, string(gotReq.UnlockedLevels))
}

func TestUpdateMilestones_Success(t *testing.T) {
	var gotReq models.UpdateMilestonesRequest
	players := &mockPlayerService{
		setMilestonesFn: func(_ context.Context, req models.UpdateMilestonesRequest) error {
			gotReq = req
			return nil
		},
	}
	h, _ := newTestHandler(t, &mockAuthService{}, players)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/update-milestones",
		strings.NewReader(`{"username":"alice","networkingCompleted":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotReq.Username)
	require.NotNil(t, gotReq.NetworkingCompleted)
	assert.True(t, *gotReq.NetworkingCompleted)
	assert.Nil(t, gotReq.ProgrammingCompleted)
}
