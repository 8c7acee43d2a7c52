package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/google/uuid"
)

type payrollService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	payrollRepo  portsrepo.PayrollRepositoryFacade
}

func NewPayrollService(employeeRepo portsrepo.EmployeeRepositoryFacade, payrollRepo portsrepo.PayrollRepositoryFacade) portssvc.PayrollSvcFacade {
	return &payrollService{BaseService: newBaseService(), employeeRepo: employeeRepo, payrollRepo: payrollRepo}
}

func (s *payrollService) CreateEmployee(ctx context.Context, companyID, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	salary, err := accounting.NormalizeAmount(req.Salary, "Salary")
	if err != nil {
		return nil, err
	}

	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		CompanyID:    companyID,
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Department:   req.Department,
		HireDate:     req.HireDate.Time(),
		Salary:       salary,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("employee_code", req.EmployeeCode))
		return nil, err
	}
	return &employee, nil
}

func (s *payrollService) ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error) {
	page := params.Params()
	employees, total, err := s.employeeRepo.ListEmployees(ctx, companyID, domain.EmployeeFilter{
		Search:     params.Search,
		Department: params.Department,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListEmployeesResponse{Employees: employees, Pagination: dto.NewPagination(page, total)}, nil
}

// CreatePayroll records a DRAFT payroll for an employee of the company with totals computed from its items.
func (s *payrollService) CreatePayroll(ctx context.Context, companyID, userID string, req dto.CreatePayrollRequest) (*domain.PayrollRecord, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, companyID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	payrollID := uuid.NewString()
	items := make([]domain.PayrollItem, 0, len(req.Items))
	for _, it := range req.Items {
		amount, err := accounting.NormalizeAmount(it.Amount, "Payroll item amount")
		if err != nil {
			return nil, err
		}
		if !it.Type.IsValid() {
			return nil, apperrors.NewBadRequestError("Invalid payroll item type")
		}
		items = append(items, domain.PayrollItem{
			ItemID:      uuid.NewString(),
			PayrollID:   payrollID,
			Type:        it.Type,
			Description: it.Description,
			Amount:      amount,
		})
	}

	gross, deductions, net := accounting.PayrollTotals(items)
	if err := accounting.CheckAmountRange(gross, "Gross pay"); err != nil {
		return nil, err
	}
	record := domain.PayrollRecord{
		PayrollID:  payrollID,
		EmployeeID: employee.EmployeeID,
		Period:     req.Period,
		GrossPay:   gross,
		Deductions: deductions,
		NetPay:     net,
		Status:     domain.PayrollDraft,
		Items:      items,
		Employee: &domain.EmployeeSummary{
			Name:         employee.Name,
			EmployeeCode: employee.EmployeeCode,
			Position:     employee.Position,
		},
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}

	if err := s.payrollRepo.SavePayroll(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save payroll", slog.String("employee_id", employee.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll created", slog.String("payroll_id", payrollID), slog.String("net_pay", net.String()))
	return &record, nil
}

func (s *payrollService) ListPayrolls(ctx context.Context, companyID string, params dto.ListPayrollsParams) (*dto.ListPayrollsResponse, error) {
	page := params.Params()
	records, total, err := s.payrollRepo.ListPayrolls(ctx, companyID, domain.PayrollFilter{
		Period:     params.Period,
		EmployeeID: params.EmployeeID,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListPayrollsResponse{Payrolls: records, Pagination: dto.NewPagination(page, total)}, nil
}

// UpdatePayrollStatus changes the status only; totals stay as computed at creation.
func (s *payrollService) UpdatePayrollStatus(ctx context.Context, companyID, userID, payrollID string, req dto.UpdatePayrollStatusRequest) (*domain.PayrollRecord, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid payroll status")
	}
	if err := s.payrollRepo.UpdatePayrollStatus(ctx, companyID, payrollID, req.Status, userID, s.now()); err != nil {
		return nil, err
	}
	return s.payrollRepo.FindPayrollByID(ctx, companyID, payrollID)
}
