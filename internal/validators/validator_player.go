package validators

import (
	"context"
	"fmt"

	"github.com/itsarev/bitquest-server/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the account name of a player request.
	FieldUsername = "username"

	// FieldPassword targets the plaintext credential of a registration or
	// login request.
	FieldPassword = "password"

	// FieldCurrentPassword targets the old credential of a password change.
	FieldCurrentPassword = "currentPassword"

	// FieldNewPassword targets the replacement credential of a password change.
	FieldNewPassword = "newPassword"
)

// PlayerValidator enforces the request-level preconditions of the player
// API: the fields an operation cannot work without must be present and
// non-empty. Everything beyond presence (uniqueness, balances, credentials)
// is checked by the storage and service layers.
type PlayerValidator struct {
}

func NewPlayerValidator() Validator {
	return &PlayerValidator{}
}

func (v *PlayerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePlayerRequest:
		return v.validateCredentials(ctx, value.Username, value.Password, fields...)
	case *models.CreatePlayerRequest:
		return v.validateCredentials(ctx, value.Username, value.Password, fields...)

	case models.LoginRequest:
		return v.validateCredentials(ctx, value.Username, value.Password, fields...)
	case *models.LoginRequest:
		return v.validateCredentials(ctx, value.Username, value.Password, fields...)

	case models.ChangePasswordRequest:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.validatePasswordChange(ctx, *value, fields...)

	case models.RewardRequest:
		return v.validateUsername(value.Username)
	case *models.RewardRequest:
		return v.validateUsername(value.Username)

	case models.UpdateCoinsRequest:
		return v.validateUsername(value.Username)
	case *models.UpdateCoinsRequest:
		return v.validateUsername(value.Username)

	case models.UpdateProgressRequest:
		return v.validateUsername(value.Username)
	case *models.UpdateProgressRequest:
		return v.validateUsername(value.Username)

	case models.UpdateMilestonesRequest:
		return v.validateUsername(value.Username)
	case *models.UpdateMilestonesRequest:
		return v.validateUsername(value.Username)

	default:
		return ErrUnsupportedType
	}
}

func (v *PlayerValidator) validateCredentials(_ context.Context, username, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if username == "" {
				return fmt.Errorf("%w: %s", ErrMissingField, FieldUsername)
			}
		case FieldPassword:
			if password == "" {
				return fmt.Errorf("%w: %s", ErrMissingField, FieldPassword)
			}
		}
	}

	return nil
}

func (v *PlayerValidator) validatePasswordChange(_ context.Context, req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldCurrentPassword:
			if req.CurrentPassword == "" {
				return fmt.Errorf("%w: %s", ErrMissingField, FieldCurrentPassword)
			}
		case FieldNewPassword:
			if req.NewPassword == "" {
				return fmt.Errorf("%w: %s", ErrMissingField, FieldNewPassword)
			}
		}
	}

	return nil
}

func (v *PlayerValidator) validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, FieldUsername)
	}

	return nil
}
