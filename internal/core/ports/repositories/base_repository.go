package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the database transactions that postings, invoices
// and stock adjustments run in. Rollback after Commit is a no-op.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
