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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `id, company_id, employee_code, name, email, phone, position, department, hire_date, salary, is_active,
	created_at, created_by, updated_at, updated_by`

func scanEmployee(row pgx.Row, e *domain.Employee) error {
	return row.Scan(
		&e.EmployeeID, &e.CompanyID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Position, &e.Department,
		&e.HireDate, &e.Salary, &e.IsActive,
		&e.CreatedAt, &e.CreatedBy, &e.UpdatedAt, &e.UpdatedBy,
	)
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	var e domain.Employee
	err := scanEmployee(r.Pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 AND company_id = $2`, employeeID, companyID), &e)
	if err != nil {
		return nil, mapFindError(err, "employee", employeeID)
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, companyID string, filter domain.EmployeeFilter) ([]domain.Employee, int, error) {
	where := newWhereClause("company_id", companyID)
	where.addRaw("is_active = TRUE")
	where.addIf(filter.Department != "", "department = $%d", filter.Department)
	if filter.Search != "" {
		where.add("(name ILIKE $%[1]d OR employee_code ILIKE $%[1]d OR email ILIKE $%[1]d)", likePattern(filter.Search))
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees`+where.String()+` ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, total, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		e.EmployeeID, e.CompanyID, e.EmployeeCode, e.Name, e.Email, e.Phone, e.Position, e.Department,
		e.HireDate, e.Salary, e.IsActive,
		e.CreatedAt, e.CreatedBy, e.UpdatedAt, e.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "Employee code")
	}
	return nil
}

// PgxPayrollRepository stores payroll records. Records are scoped through their employee.
type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) *PgxPayrollRepository {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const payrollSelect = `SELECT p.id, p.employee_id, p.period, p.gross_pay, p.deductions, p.net_pay, p.status,
	p.created_at, p.created_by, p.updated_at, p.updated_by,
	e.name, e.employee_code, e.position
	FROM payroll_records p
	JOIN employees e ON e.id = p.employee_id`

func scanPayroll(row pgx.Row, p *domain.PayrollRecord) error {
	emp := &domain.EmployeeSummary{}
	err := row.Scan(
		&p.PayrollID, &p.EmployeeID, &p.Period, &p.GrossPay, &p.Deductions, &p.NetPay, &p.Status,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
		&emp.Name, &emp.EmployeeCode, &emp.Position,
	)
	p.Employee = emp
	return err
}

func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, companyID, payrollID string) (*domain.PayrollRecord, error) {
	var p domain.PayrollRecord
	if err := scanPayroll(r.Pool.QueryRow(ctx, payrollSelect+` WHERE p.id = $1 AND e.company_id = $2`, payrollID, companyID), &p); err != nil {
		return nil, mapFindError(err, "payroll record", payrollID)
	}

	items, err := r.loadItems(ctx, []string{p.PayrollID})
	if err != nil {
		return nil, err
	}
	p.Items = items[p.PayrollID]
	if p.Items == nil {
		p.Items = []domain.PayrollItem{}
	}
	return &p, nil
}

func (r *PgxPayrollRepository) ListPayrolls(ctx context.Context, companyID string, filter domain.PayrollFilter) ([]domain.PayrollRecord, int, error) {
	where := newWhereClause("e.company_id", companyID)
	where.addIf(filter.Period != "", "p.period = $%d", filter.Period)
	where.addIf(filter.EmployeeID != "", "p.employee_id = $%d", filter.EmployeeID)

	var total int
	countQuery := `SELECT COUNT(*) FROM payroll_records p JOIN employees e ON e.id = p.employee_id` + where.String()
	if err := r.Pool.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, payrollSelect+where.String()+` ORDER BY p.created_at DESC`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	records := []domain.PayrollRecord{}
	ids := []string{}
	for rows.Next() {
		var p domain.PayrollRecord
		if err := scanPayroll(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		records = append(records, p)
		ids = append(ids, p.PayrollID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating payroll rows: %w", err)
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range records {
		records[i].Items = items[records[i].PayrollID]
		if records[i].Items == nil {
			records[i].Items = []domain.PayrollItem{}
		}
	}
	return records, total, nil
}

func (r *PgxPayrollRepository) loadItems(ctx context.Context, payrollIDs []string) (map[string][]domain.PayrollItem, error) {
	if len(payrollIDs) == 0 {
		return map[string][]domain.PayrollItem{}, nil
	}
	rows, err := r.Pool.Query(ctx,
		`SELECT id, payroll_id, type, description, amount FROM payroll_items WHERE payroll_id = ANY($1) ORDER BY id`,
		payrollIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.PayrollItem, len(payrollIDs))
	for rows.Next() {
		var it domain.PayrollItem
		if err := rows.Scan(&it.ItemID, &it.PayrollID, &it.Type, &it.Description, &it.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items[it.PayrollID] = append(items[it.PayrollID], it)
	}
	return items, rows.Err()
}

// SavePayroll persists a record and its items in one transaction.
func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, p domain.PayrollRecord) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO payroll_records (id, employee_id, period, gross_pay, deductions, net_pay, status,
				created_at, created_by, updated_at, updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.PayrollID, p.EmployeeID, p.Period, p.GrossPay, p.Deductions, p.NetPay, p.Status,
			p.CreatedAt, p.CreatedBy, p.UpdatedAt, p.UpdatedBy,
		)
		if err != nil {
			return mapSaveError(err, "Payroll record")
		}

		batch := &pgx.Batch{}
		for _, it := range p.Items {
			batch.Queue(`INSERT INTO payroll_items (id, payroll_id, type, description, amount) VALUES ($1, $2, $3, $4, $5)`,
				it.ItemID, p.PayrollID, it.Type, it.Description, it.Amount)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapSaveError(err, "Payroll item")
		}
		return nil
	})
}

func (r *PgxPayrollRepository) UpdatePayrollStatus(ctx context.Context, companyID, payrollID string, status domain.PayrollStatus, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE payroll_records p SET status = $3, updated_at = $4, updated_by = $5
		 FROM employees e
		 WHERE p.employee_id = e.id AND p.id = $1 AND e.company_id = $2`,
		payrollID, companyID, status, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll %s status: %w", payrollID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
