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
)

type PgxCheckRepository struct {
	BaseRepository
}

func newPgxCheckRepository(pool *pgxpool.Pool) *PgxCheckRepository {
	return &PgxCheckRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CheckRepositoryFacade = (*PgxCheckRepository)(nil)

const checkColumns = `id, company_id, type, amount, check_number, bank_name, account_number, issue_date, due_date, status, description,
	created_at, created_by, updated_at, updated_by`

func scanCheck(row pgx.Row, c *domain.Check) error {
	return row.Scan(
		&c.CheckID, &c.CompanyID, &c.Type, &c.Amount, &c.CheckNumber, &c.BankName, &c.AccountNumber,
		&c.IssueDate, &c.DueDate, &c.Status, &c.Description,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
	)
}

func collectChecks(rows pgx.Rows) ([]domain.Check, error) {
	defer rows.Close()
	checks := []domain.Check{}
	for rows.Next() {
		var c domain.Check
		if err := scanCheck(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check rows: %w", err)
	}
	return checks, nil
}

func (r *PgxCheckRepository) FindCheckByID(ctx context.Context, companyID, checkID string) (*domain.Check, error) {
	var c domain.Check
	err := scanCheck(r.Pool.QueryRow(ctx, `SELECT `+checkColumns+` FROM checks WHERE id = $1 AND company_id = $2`, checkID, companyID), &c)
	if err != nil {
		return nil, mapFindError(err, "check", checkID)
	}
	return &c, nil
}

func (r *PgxCheckRepository) ListChecks(ctx context.Context, companyID string, filter domain.CheckFilter) ([]domain.Check, int, error) {
	where := newWhereClause("company_id", companyID)
	where.addIf(filter.Type != "", "type = $%d", filter.Type)
	where.addIf(filter.Status != "", "status = $%d", filter.Status)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM checks`+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count checks: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, `SELECT `+checkColumns+` FROM checks`+where.String()+` ORDER BY due_date ASC`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query checks: %w", err)
	}
	checks, err := collectChecks(rows)
	if err != nil {
		return nil, 0, err
	}
	return checks, total, nil
}

func (r *PgxCheckRepository) ListPendingDueBetween(ctx context.Context, companyID string, from, to time.Time) ([]domain.Check, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+checkColumns+` FROM checks
		 WHERE company_id = $1 AND status = $2 AND due_date >= $3 AND due_date <= $4
		 ORDER BY due_date ASC`,
		companyID, domain.CheckPending, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks due soon: %w", err)
	}
	return collectChecks(rows)
}

func (r *PgxCheckRepository) SaveCheck(ctx context.Context, c domain.Check) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO checks (`+checkColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		c.CheckID, c.CompanyID, c.Type, c.Amount, c.CheckNumber, c.BankName, c.AccountNumber,
		c.IssueDate, c.DueDate, c.Status, c.Description,
		c.CreatedAt, c.CreatedBy, c.UpdatedAt, c.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "Check")
	}
	return nil
}

// UpdateCheckStatus moves a check from one status to another only if it is
// still in the expected status.
func (r *PgxCheckRepository) UpdateCheckStatus(ctx context.Context, companyID, checkID string, from, to domain.CheckStatus, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE checks SET status = $4, updated_at = $5, updated_by = $6
		 WHERE id = $1 AND company_id = $2 AND status = $3`,
		checkID, companyID, from, to, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update check %s status: %w", checkID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewBadRequestError(fmt.Sprintf("Check status is no longer %s", from))
	}
	return nil
}
