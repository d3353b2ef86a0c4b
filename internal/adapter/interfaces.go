// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

// Package adapter provides a typed client for the game server's HTTP API,
// used by the operator CLI.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from the server's error
// envelope by mapAPIError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for a taken
// username, [ErrInsufficientCoins] for a rejected reward).
package adapter

import (
	"context"

	"github.com/itsarev/bitquest-server/models"
)

// ServerAdapter defines the operations the operator CLI performs against a
// running game server. Implementations are responsible for serialisation and
// for mapping API-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// CreatePlayer registers a new account and returns the created record.
	CreatePlayer(ctx context.Context, req models.CreatePlayerRequest) (models.Player, error)

	// ListPlayers fetches every player row the server knows about.
	ListPlayers(ctx context.Context) ([]models.Player, error)

	// GetPlayer fetches one player's full row by username.
	GetPlayer(ctx context.Context, username string) (models.Player, error)

	// ApplyReward applies point and coin deltas and returns the updated row.
	ApplyReward(ctx context.Context, req models.RewardRequest) (models.Player, error)

	// SetCoins overwrites a player's coin balance with an absolute value.
	SetCoins(ctx context.Context, req models.UpdateCoinsRequest) (int64, error)
}
