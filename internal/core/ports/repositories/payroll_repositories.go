package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error)
	// ListEmployees returns active employees ordered by name, and the total count.
	ListEmployees(ctx context.Context, companyID string, filter domain.EmployeeFilter) ([]domain.Employee, int, error)
}

type EmployeeWriter interface {
	// SaveEmployee persists a new employee. A reused employee code yields apperrors.ErrDuplicate.
	SaveEmployee(ctx context.Context, employee domain.Employee) error
}

type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

type PayrollReader interface {
	FindPayrollByID(ctx context.Context, companyID, payrollID string) (*domain.PayrollRecord, error)
	ListPayrolls(ctx context.Context, companyID string, filter domain.PayrollFilter) ([]domain.PayrollRecord, int, error)
}

type PayrollWriter interface {
	// SavePayroll persists a record and its items in one transaction.
	SavePayroll(ctx context.Context, record domain.PayrollRecord) error
	UpdatePayrollStatus(ctx context.Context, companyID, payrollID string, status domain.PayrollStatus, userID string, now time.Time) error
}

type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
