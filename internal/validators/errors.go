// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package validators

import "errors"

var (
	// ErrMissingField is returned when a required field is absent or empty.
	ErrMissingField = errors.New("required field is missing")

	// ErrUnsupportedType is returned when a value of an unknown type is
	// passed to Validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
