package models

import "encoding/json"

// CreatePlayerRequest is the body of POST /create-player.
type CreatePlayerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UploadAvatarRequest is the body of POST /api/upload-avatar.
type UploadAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// ChangePasswordRequest is the body of POST /api/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// RewardRequest is the body of POST /api/reward. Points and Coins are deltas
// and may be negative; an absent field counts as a zero delta.
type RewardRequest struct {
	Username string `json:"username"`
	Points   int64  `json:"points"`
	Coins    int64  `json:"coins"`
}

// UpdateCoinsRequest is the body of POST /update-coins. Coins is an absolute
// value, not a delta, and is intentionally not floor-checked (see handlers).
type UpdateCoinsRequest struct {
	Username string `json:"username"`
	Coins    int64  `json:"coins"`
}

// UpdateProgressRequest is the body of POST /update-progress.
// UnlockedLevels accepts any JSON value and is stored serialized as-is.
// Progress, when present, replaces the stored game-state blob.
type UpdateProgressRequest struct {
	Username       string          `json:"username"`
	Coins          int64           `json:"coins"`
	UnlockedLevels json.RawMessage `json:"unlockedLevels"`
	Progress       *string         `json:"progress"`
}

// UpdateMilestonesRequest is the body of POST /update-milestones.
type UpdateMilestonesRequest struct {
	Username string `json:"username"`
	MilestoneUpdate
}
