package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

type PayrollSvcFacade interface {
	CreateEmployee(ctx context.Context, companyID, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error)
	CreatePayroll(ctx context.Context, companyID, userID string, req dto.CreatePayrollRequest) (*domain.PayrollRecord, error)
	ListPayrolls(ctx context.Context, companyID string, params dto.ListPayrollsParams) (*dto.ListPayrollsResponse, error)
	UpdatePayrollStatus(ctx context.Context, companyID, userID, payrollID string, req dto.UpdatePayrollStatusRequest) (*domain.PayrollRecord, error)
}
