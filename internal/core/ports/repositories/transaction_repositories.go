package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations over ledger postings
type TransactionReader interface {
	// ListTransactions returns one page of the company's postings, newest first, and the total count.
	ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error)

	// SumByType totals posting amounts per type within an optional date range.
	SumByType(ctx context.Context, companyID string, startDate, endDate *time.Time) (map[domain.TransactionType]decimal.Decimal, error)
}

// TransactionWriter defines the atomic posting operation
type TransactionWriter interface {
	// SavePosting inserts txn and applies balanceChanges in a single database
	// transaction. Every account in balanceChanges is locked and must belong to
	// companyID, otherwise apperrors.ErrNotFound is returned and nothing is written.
	SavePosting(ctx context.Context, companyID string, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
}

type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
