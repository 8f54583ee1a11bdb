package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pg-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWritesStatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "yes", body["ok"])
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"validation", apperrors.Validation("name is required"), http.StatusBadRequest},
		{"not found", apperrors.NotFound("no such tenant"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("room is full"), http.StatusConflict},
		{"storage", apperrors.Storage(errors.New("boom"), "tx failed"), http.StatusInternalServerError},
		{"unknown", errors.New("misc"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestErrorHidesStorageDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperrors.Storage(errors.New("password=hunter2 connection refused"), "insert"))

	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, rec.Body.String(), "storage failure")
}
