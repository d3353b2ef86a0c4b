// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package models

// SuccessResponse is the generic success envelope returned by mutation
// endpoints. Optional fields are included only when the endpoint has
// something to report beyond the success flag.
type SuccessResponse struct {
	Success bool `json:"success"`

	// Player carries the affected player record where the endpoint
	// contract includes it (create-player, reward).
	Player *Player `json:"player,omitempty"`

	// Coins carries the resulting balance for the raw coin-update endpoint.
	Coins *int64 `json:"coins,omitempty"`
}

// LoginResponse is returned by POST /login. It deliberately exposes only the
// player's id and username — never the credential hash.
type LoginResponse struct {
	Success bool        `json:"success"`
	Player  LoginPlayer `json:"player"`
}

// LoginPlayer is the minimal identity payload bound to a fresh session.
type LoginPlayer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ErrorResponse is the error envelope shared by every failing endpoint.
// Error holds a machine-readable kind from the fixed taxonomy
// (MissingField, Conflict, NotFound, InvalidCredential, Unauthenticated,
// InsufficientCoins, Internal); Message is human-readable and never contains
// raw database errors.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
