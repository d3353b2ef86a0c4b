// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

// Package app contains shared application-layer constants used across the
// bitquest server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. They are
// deliberately generic; raw storage errors must never reach the client.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONBody is returned when the request body cannot be decoded.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgMissingField is returned when a required request field is absent
	// or empty.
	MsgMissingField = "required field is missing"

	// MsgInvalidCredentials is returned when a supplied password does not
	// match the stored hash for an existing account.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUsernameAlreadyExists is returned when registration collides with
	// an existing account name.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgPlayerNotFound is returned when no account matches the requested
	// username or session identity.
	MsgPlayerNotFound = "player not found"

	// MsgInsufficientCoins is returned when a reward would take a coin
	// balance below zero.
	MsgInsufficientCoins = "insufficient coins"

	// MsgAuthenticationRequired is returned when a gated endpoint is called
	// without a resolvable session.
	MsgAuthenticationRequired = "authentication required"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
