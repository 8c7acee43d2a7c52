package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// mapSaveError converts constraint violations raised by an INSERT or UPDATE
// into the matching application errors. what names the record for the
// client, e.g. "SKU" yields "SKU already exists".
func mapSaveError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError(what + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewBadRequestError(what + " references a missing record")
		case pgCheckViolation:
			return apperrors.NewBadRequestError(what + " has invalid values")
		case pgNumericOutOfRange:
			return apperrors.NewBadRequestError("Numeric value out of range")
		}
	}
	return fmt.Errorf("failed to save %s: %w", what, err)
}

// mapFindError converts pgx.ErrNoRows into apperrors.ErrNotFound.
func mapFindError(err error, what, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("failed to find %s %s: %w", what, id, err)
}
