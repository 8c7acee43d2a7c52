package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `id, company_id, name, type, balance, currency, is_active, created_at, created_by, updated_at, updated_by`

func scanAccount(row pgx.Row, a *domain.Account) error {
	return row.Scan(
		&a.AccountID, &a.CompanyID, &a.Name, &a.AccountType, &a.Balance, &a.Currency, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
	)
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.CompanyID,
		account.Name,
		account.AccountType,
		account.Balance,
		account.Currency,
		account.IsActive,
		account.CreatedAt,
		account.CreatedBy,
		account.UpdatedAt,
		account.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, fmt.Sprintf("Account named %q", account.Name))
	}
	return nil
}

// FindAccountByID retrieves an account of the company by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND company_id = $2;`

	var acc domain.Account
	if err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, companyID), &acc); err != nil {
		return nil, mapFindError(err, "account", accountID)
	}
	return &acc, nil
}

// ListAccounts retrieves the active accounts of the company ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var acc domain.Account
		if err := scanAccount(rows, &acc); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SumBalances totals the balance of every active account of the company.
func (r *PgxAccountRepository) SumBalances(ctx context.Context, companyID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE company_id = $1 AND is_active = TRUE`,
		companyID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum balances for company %s: %w", companyID, err)
	}
	return total, nil
}

// FindAccountsByIDsForUpdate selects accounts of the company and locks them for update.
// Rows are locked in ID order so concurrent postings touching the same pair cannot deadlock.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = ANY($1) AND company_id = $2
		ORDER BY id
		FOR UPDATE;`

	rows, err := tx.Query(ctx, query, accountIDs, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		var acc domain.Account
		if err := scanAccount(rows, &acc); err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[acc.AccountID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	for _, id := range accountIDs {
		if _, ok := accountsMap[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return accountsMap, nil
}

// UpdateAccountBalancesInTx applies balance deltas with an in-place increment.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `UPDATE accounts SET balance = COALESCE(balance, 0) + $2, updated_at = $3, updated_by = $4 WHERE id = $1`
	for accountID, delta := range balanceChanges {
		batch.Queue(query, accountID, delta, now, userID)
	}

	br := tx.SendBatch(ctx, batch)
	for range balanceChanges {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return mapSaveError(err, "Account balance")
		}
		if tag.RowsAffected() != 1 {
			_ = br.Close()
			return fmt.Errorf("%w: account balance row missing", apperrors.ErrNotFound)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close balance batch: %w", err)
	}
	return nil
}
