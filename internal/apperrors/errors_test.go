package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		conflict   bool
		storage    bool
	}{
		{"validation", Validation("name is required"), true, false, false, false},
		{"not found", NotFound("tenant %d not found", 7), false, true, false, false},
		{"conflict", Conflict("room is full"), false, false, true, false},
		{"storage", Storage(errors.New("broken pipe"), "tx failed"), false, false, false, true},
		{"plain", errors.New("something"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
			assert.Equal(t, tt.storage, IsStorage(tt.err))
		})
	}
}

func TestClassifiersSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("onboarding failed: %w", Conflict("room is full"))
	assert.True(t, IsConflict(err))
	assert.False(t, IsValidation(err))
}

func TestStorageUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause, "insert tenant")
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "insert tenant")
	assert.Contains(t, err.Error(), "connection refused")
}
