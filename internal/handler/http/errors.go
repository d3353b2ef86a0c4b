// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package http

import "errors"

// sessionCookieName is the cookie carrying the signed session token.
// The name is fixed by the deployed game client.
const sessionCookieName = "session"

// Sentinel errors used by the session middleware. Callers can match against
// them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the incoming
	// request does not include a session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")
)
