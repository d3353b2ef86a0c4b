// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package service

import (
	"context"

	"github.com/itsarev/bitquest-server/models"
)

// ─────────────────────────────────────────────
// Mock: store.PlayerRepository
// ─────────────────────────────────────────────

type mockPlayerRepository struct {
	createFn           func(ctx context.Context, player models.Player) (models.Player, error)
	findByUsernameFn   func(ctx context.Context, username string) (models.Player, error)
	findByIDFn         func(ctx context.Context, id int64) (models.Player, error)
	listFn             func(ctx context.Context) ([]models.Player, error)
	updateProfileFn    func(ctx context.Context, id int64, update models.ProfileUpdate) error
	updatePasswordFn   func(ctx context.Context, id int64, passwordHash string) error
	deleteFn           func(ctx context.Context, id int64) error
	applyRewardFn      func(ctx context.Context, username string, points, coins int64) (models.Player, error)
	setCoinsFn         func(ctx context.Context, username string, coins int64) error
	updateProgressFn   func(ctx context.Context, username string, coins int64, unlockedLevels string, progress *string) error
	updateMilestonesFn func(ctx context.Context, username string, update models.MilestoneUpdate) error
}

func (m *mockPlayerRepository) CreatePlayer(ctx context.Context, player models.Player) (models.Player, error) {
	if m.createFn != nil {
		return m.createFn(ctx, player)
	}
	return player, nil
}

func (m *mockPlayerRepository) FindPlayerByUsername(ctx context.Context, username string) (models.Player, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.Player{}, nil
}

func (m *mockPlayerRepository) FindPlayerByID(ctx context.Context, id int64) (models.Player, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Player{}, nil
}

func (m *mockPlayerRepository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPlayerRepository) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, update)
	}
	return nil
}

func (m *mockPlayerRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (m *mockPlayerRepository) DeletePlayer(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPlayerRepository) ApplyReward(ctx context.Context, username string, points, coins int64) (models.Player, error) {
	if m.applyRewardFn != nil {
		return m.applyRewardFn(ctx, username, points, coins)
	}
	return models.Player{}, nil
}

func (m *mockPlayerRepository) SetCoins(ctx context.Context, username string, coins int64) error {
	if m.setCoinsFn != nil {
		return m.setCoinsFn(ctx, username, coins)
	}
	return nil
}

func (m *mockPlayerRepository) UpdateProgress(ctx context.Context, username string, coins int64, unlockedLevels string, progress *string) error {
	if m.updateProgressFn != nil {
		return m.updateProgressFn(ctx, username, coins, unlockedLevels, progress)
	}
	return nil
}

func (m *mockPlayerRepository) UpdateMilestones(ctx context.Context, username string, update models.MilestoneUpdate) error {
	if m.updateMilestonesFn != nil {
		return m.updateMilestonesFn(ctx, username, update)
	}
	return nil
}
