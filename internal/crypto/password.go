// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

// Package crypto implements the credential-handling primitives of the
// application. The only secret the server ever works with is the player
// password, so the package exposes a single [PasswordHasher] abstraction.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext passwords for storage and verifies login
// attempts against stored hashes.
//
// Implementations must salt every hash with fresh randomness (two calls to
// Hash with the same plaintext produce different outputs) and must compare in
// constant time during Verify.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the given plaintext.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the stored hash.
	// A mismatch is not an error; only malformed input is.
	Verify(password, hash string) (bool, error)
}

// ErrEmptyPassword is returned by Hash when the plaintext is empty.
// An empty password must be rejected before it ever reaches bcrypt.
var ErrEmptyPassword = errors.New("empty password")

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
// bcrypt embeds a random per-call salt into the hash string and its cost
// factor keeps verification in the tens-of-milliseconds range.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost below bcrypt's minimum (including zero) selects the library default.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt hash of the given plaintext.
func (b *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify compares plaintext against a stored bcrypt hash.
//
// Returns (false, nil) on a plain mismatch and a non-nil error only when the
// stored hash is malformed, so callers can distinguish a wrong password from
// corrupted credential data.
func (b *bcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}
