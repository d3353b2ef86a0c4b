package adapter

import "errors"

// Sentinel errors mapped from the server's error envelope. Callers match
// against them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInsufficientCoins   = errors.New("insufficient coins")
	ErrInternalServerError = errors.New("internal server error")
)
