// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package models

import "time"

// Player represents one game account — the sole persisted entity of the
// system. It carries identity attributes, the credential hash, profile
// fields, and the gamified progress counters.
//
// The Password field holds a bcrypt hash, never plaintext. Most endpoints
// must not return it; the player-listing and get-by-username endpoints do
// return it for compatibility with the existing game client (a documented
// weakness of the inherited API, not a design goal). Handlers that need a
// safe representation use [Player.Sanitized].
type Player struct {
	// ID is the internal unique identifier of the player.
	// Auto-assigned by the database and immutable.
	ID int64 `json:"id"`

	// Username is the unique login key. Immutable after creation.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the player's password.
	Password string `json:"password,omitempty"`

	// Email is an optional contact address.
	Email string `json:"email"`

	// DisplayName is an optional name shown in the game UI.
	DisplayName string `json:"display_name"`

	// Theme is the client UI theme preference. Defaults to "system".
	Theme string `json:"theme"`

	// Avatar is an avatar blob or reference supplied by the client.
	Avatar string `json:"avatar"`

	// Points is the accumulated score. Adjusted by reward deltas.
	Points int64 `json:"points"`

	// Coins is the in-game currency balance. The reward path keeps it
	// non-negative; the raw coin-update path does not (see handlers).
	Coins int64 `json:"coins"`

	// Milestone flags for the individual game chapters.
	NetworkingCompleted     bool `json:"networking_completed"`
	ProgrammingCompleted    bool `json:"programming_completed"`
	SystemUnitCompleted     bool `json:"systemunit_completed"`
	NetworkingHardPerfect   bool `json:"networking_hard_perfect"`
	ProgrammingGameUnlocked bool `json:"programming_game_unlocked"`

	// Progress is an opaque serialized game-state blob.
	Progress string `json:"progress"`

	// UnlockedLevels is the serialized set of levels the player has opened.
	UnlockedLevels string `json:"unlocked_levels"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy of the player with the credential hash removed.
// Used for every response that must not expose the password field.
func (p Player) Sanitized() Player {
	p.Password = ""
	return p
}

// TableName returns the name of the database table
// associated with the Player model.
func (p Player) TableName() string {
	return "players"
}

// ProfileUpdate describes a partial update of the mutable profile fields.
// Nil pointers mean "leave the stored value unchanged"; only non-nil fields
// are written to the database.
type ProfileUpdate struct {
	Email       *string `json:"email"`
	DisplayName *string `json:"displayName"`
	Theme       *string `json:"theme"`
	Avatar      *string `json:"avatar"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.DisplayName == nil && u.Theme == nil && u.Avatar == nil
}

// MilestoneUpdate describes a partial update of the milestone flags.
// Nil pointers leave the stored flag unchanged.
type MilestoneUpdate struct {
	NetworkingCompleted     *bool `json:"networkingCompleted"`
	ProgrammingCompleted    *bool `json:"programmingCompleted"`
	SystemUnitCompleted     *bool `json:"systemunitCompleted"`
	NetworkingHardPerfect   *bool `json:"networkingHardPerfect"`
	ProgrammingGameUnlocked *bool `json:"programmingGameUnlocked"`
}

// IsEmpty reports whether the update carries no flags at all.
func (u MilestoneUpdate) IsEmpty() bool {
	return u.NetworkingCompleted == nil &&
		u.ProgrammingCompleted == nil &&
		u.SystemUnitCompleted == nil &&
		u.NetworkingHardPerfect == nil &&
		u.ProgrammingGameUnlocked == nil
}
