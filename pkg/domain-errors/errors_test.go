package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct error", func(t *testing.T) {
		err := New(CodeUnauthorized, "caller lacks verifier role")
		assert.True(t, HasCode(err, CodeUnauthorized))
		assert.False(t, HasCode(err, CodeNotFound))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		inner := New(CodeInsufficientBalance, "balance too low")
		err := fmt.Errorf("retire failed: %w", inner)
		assert.True(t, HasCode(err, CodeInsufficientBalance))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeInternal, "append log entry", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "append log entry")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeUnauthorized, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeAlreadyProcessed, http.StatusConflict},
		{CodeProjectInactive, http.StatusConflict},
		{CodeInsufficientBalance, http.StatusConflict},
		{CodePaused, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.code))
		})
	}
}
