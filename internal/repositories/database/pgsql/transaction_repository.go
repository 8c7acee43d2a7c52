package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository stores ledger postings. Postings carry no company
// column; they are scoped through the account they are posted against.
type PgxTransactionRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}, accountRepo: accountRepo}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func transactionFilterWhere(companyID string, f domain.TransactionFilter) *whereClause {
	where := newWhereClause("a.company_id", companyID)
	where.addIf(f.Type != "", "t.type = $%d", f.Type)
	where.addIf(f.CategoryID != "", "t.category_id = $%d", f.CategoryID)
	where.addIf(f.AccountID != "", "(t.account_id = $%[1]d OR t.to_account_id = $%[1]d)", f.AccountID)
	where.addIf(f.StartDate != nil, "t.date >= $%d", f.StartDate)
	where.addIf(f.EndDate != nil, "t.date <= $%d", f.EndDate)
	return where
}

// ListTransactions returns one page of the company's postings, newest first, and the total count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	where := transactionFilterWhere(companyID, filter)
	from := ` FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		LEFT JOIN categories c ON c.id = t.category_id`

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*)`+from+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	query := `SELECT t.id, t.account_id, t.to_account_id, t.category_id, t.amount, t.type, t.description, t.reference, t.date,
		t.created_at, t.created_by, t.updated_at, t.updated_by,
		a.name, a.type, c.id, c.name, c.type` +
		from + where.String() + ` ORDER BY t.date DESC, t.created_at DESC` + suffix

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var (
			t       domain.Transaction
			acc     domain.AccountSummary
			catID   *string
			catName *string
			catType *domain.CategoryType
		)
		err := rows.Scan(
			&t.TransactionID, &t.AccountID, &t.ToAccountID, &t.CategoryID, &t.Amount, &t.Type, &t.Description, &t.Reference, &t.Date,
			&t.CreatedAt, &t.CreatedBy, &t.UpdatedAt, &t.UpdatedBy,
			&acc.Name, &acc.Type, &catID, &catName, &catType,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		t.Account = &acc
		if catID != nil {
			t.Category = &domain.Category{CategoryID: *catID, CompanyID: companyID, Name: *catName, Type: *catType}
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, total, nil
}

// SumByType totals posting amounts per type within an optional date range.
func (r *PgxTransactionRepository) SumByType(ctx context.Context, companyID string, startDate, endDate *time.Time) (map[domain.TransactionType]decimal.Decimal, error) {
	where := transactionFilterWhere(companyID, domain.TransactionFilter{StartDate: startDate, EndDate: endDate})
	query := `SELECT t.type, COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id` + where.String() + ` GROUP BY t.type`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	defer rows.Close()

	sums := map[domain.TransactionType]decimal.Decimal{}
	for rows.Next() {
		var (
			txnType domain.TransactionType
			sum     decimal.Decimal
		)
		if err := rows.Scan(&txnType, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan transaction aggregate: %w", err)
		}
		sums[txnType] = sum
	}
	return sums, rows.Err()
}

// SavePosting inserts txn and applies balanceChanges in a single database transaction.
func (r *PgxTransactionRepository) SavePosting(ctx context.Context, companyID string, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		ids := make([]string, 0, len(balanceChanges))
		for id := range balanceChanges {
			ids = append(ids, id)
		}
		if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, companyID, ids); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO transactions (id, account_id, to_account_id, category_id, amount, type, description, reference, date,
				created_at, created_by, updated_at, updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			txn.TransactionID, txn.AccountID, txn.ToAccountID, txn.CategoryID, txn.Amount, txn.Type, txn.Description, txn.Reference, txn.Date,
			txn.CreatedAt, txn.CreatedBy, txn.UpdatedAt, txn.UpdatedBy,
		)
		if err != nil {
			return mapSaveError(err, "Transaction")
		}

		return r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txn.CreatedBy, txn.CreatedAt)
	})
}
