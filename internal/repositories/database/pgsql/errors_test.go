package pgsql

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapSaveError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErr    error
		wantStatus int
		message    string
	}{
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, apperrors.ErrDuplicate, http.StatusBadRequest, "SKU already exists"},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrValidation, http.StatusBadRequest, "SKU references a missing record"},
		{"numeric overflow", &pgconn.PgError{Code: pgNumericOutOfRange}, apperrors.ErrValidation, http.StatusBadRequest, "Numeric value out of range"},
		{"other failure", errors.New("conn reset"), nil, http.StatusInternalServerError, "failed to save SKU: conn reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapSaveError(tt.err, "SKU")
			if tt.wantErr != nil {
				assert.ErrorIs(t, got, tt.wantErr)
			}
			assert.Equal(t, tt.wantStatus, apperrors.StatusCode(got))
			assert.Contains(t, got.Error(), tt.message)
		})
	}
}

func TestMapFindError(t *testing.T) {
	assert.ErrorIs(t, mapFindError(pgx.ErrNoRows, "product", "p-1"), apperrors.ErrNotFound)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(mapFindError(errors.New("boom"), "product", "p-1")))
}
