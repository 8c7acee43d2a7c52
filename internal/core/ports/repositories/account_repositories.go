package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
// Every method is scoped to companyID; rows of other companies are not found.
type AccountReader interface {
	// FindAccountByID retrieves a specific account of the company.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the active accounts of the company ordered by name.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)

	// SumBalances totals the balance of every active account of the company.
	SumBalances(ctx context.Context, companyID string) (decimal.Decimal, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that support ledger postings
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts of the company and locks them for update.
	// A missing or foreign account yields apperrors.ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies balance deltas with an in-place increment.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
