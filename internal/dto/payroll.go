package dto

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employeeCode" binding:"required,max=50"`
	Name         string           `json:"name" binding:"required,max=255"`
	Email        string           `json:"email" binding:"omitempty,email,max=255"`
	Phone        string           `json:"phone" binding:"max=50"`
	Position     string           `json:"position" binding:"required,max=255"`
	Department   string           `json:"department" binding:"max=255"`
	HireDate     Date             `json:"hireDate" binding:"required"`
	Salary       *decimal.Decimal `json:"salary" binding:"required"`
}

type ListEmployeesParams struct {
	PageQuery
	Search     string `form:"search"`
	Department string `form:"department"`
}

type ListEmployeesResponse struct {
	Employees  []domain.Employee `json:"employees"`
	Pagination Pagination        `json:"pagination"`
}

type PayrollItemRequest struct {
	Type        domain.PayrollItemType `json:"type" binding:"required,oneof=SALARY BONUS OVERTIME DEDUCTION TAX INSURANCE"`
	Description string                 `json:"description" binding:"max=1000"`
	Amount      *decimal.Decimal       `json:"amount" binding:"required"`
}

type CreatePayrollRequest struct {
	EmployeeID string               `json:"employeeId" binding:"required"`
	Period     string               `json:"period" binding:"required,max=20"`
	Items      []PayrollItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdatePayrollStatusRequest struct {
	Status domain.PayrollStatus `json:"status" binding:"required,oneof=DRAFT APPROVED PAID"`
}

type ListPayrollsParams struct {
	PageQuery
	Period     string `form:"period"`
	EmployeeID string `form:"employeeId"`
}

type ListPayrollsResponse struct {
	Payrolls   []domain.PayrollRecord `json:"payrolls"`
	Pagination Pagination             `json:"pagination"`
}
