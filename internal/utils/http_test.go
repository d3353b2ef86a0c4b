// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package utils

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]any{"success": true, "coins": 42}, 200)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 42, body["coins"])
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// NaN is not representable in JSON
	_, err := WriteJSON(rec, math.NaN(), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestWriteJSON_StatusCodePassedThrough(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, map[string]string{"error": "not found"}, 404)
	require.NoError(t, err)
	assert.Equal(t, 404, rec.Code)
}
