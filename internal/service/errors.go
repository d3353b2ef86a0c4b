package service

import (
	"errors"

	"github.com/itsarev/bitquest-server/internal/validators"
)

var (
	// ErrMissingField is returned when a required request field is absent or
	// empty. Handlers map it to an HTTP 400 user error.
	ErrMissingField = validators.ErrMissingField

	// ErrWrongPassword is returned when a supplied password does not verify
	// against the stored hash for an existing account.
	ErrWrongPassword = errors.New("wrong password")
)
