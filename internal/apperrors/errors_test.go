package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid token", fmt.Errorf("%w: expired", apperrors.ErrInvalidToken), http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"wrapped not found", fmt.Errorf("account lookup: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"duplicate maps to bad request", apperrors.ErrDuplicate, http.StatusBadRequest},
		{"app error keeps its code", apperrors.NewAppError(http.StatusServiceUnavailable, "db down", errors.New("dial")), http.StatusServiceUnavailable},
		{"app error wrapping sentinel", apperrors.NewAppError(http.StatusInternalServerError, "lock", apperrors.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := apperrors.NewBadRequestError("bad amount")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "bad amount: validation error", err.Error())
}
