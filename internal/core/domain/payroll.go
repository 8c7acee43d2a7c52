package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a member of staff paid through payroll.
type Employee struct {
	EmployeeID   string          `json:"id"`
	CompanyID    string          `json:"companyId"`
	EmployeeCode string          `json:"employeeCode"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Position     string          `json:"position"`
	Department   string          `json:"department,omitempty"`
	HireDate     time.Time       `json:"hireDate"`
	Salary       decimal.Decimal `json:"salary"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

type EmployeeFilter struct {
	Search     string
	Department string
	Limit      int
	Offset     int
}

type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "DRAFT"
	PayrollApproved PayrollStatus = "APPROVED"
	PayrollPaid     PayrollStatus = "PAID"
)

func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollDraft, PayrollApproved, PayrollPaid:
		return true
	}
	return false
}

type PayrollItemType string

const (
	PayrollSalary    PayrollItemType = "SALARY"
	PayrollBonus     PayrollItemType = "BONUS"
	PayrollOvertime  PayrollItemType = "OVERTIME"
	PayrollDeduction PayrollItemType = "DEDUCTION"
	PayrollTax       PayrollItemType = "TAX"
	PayrollInsurance PayrollItemType = "INSURANCE"
)

// IsEarning reports whether the item adds to gross pay.
func (t PayrollItemType) IsEarning() bool {
	return t == PayrollSalary || t == PayrollBonus || t == PayrollOvertime
}

// IsDeduction reports whether the item is subtracted from gross pay.
func (t PayrollItemType) IsDeduction() bool {
	return t == PayrollDeduction || t == PayrollTax || t == PayrollInsurance
}

func (t PayrollItemType) IsValid() bool {
	return t.IsEarning() || t.IsDeduction()
}

// PayrollRecord is one employee's pay for a period. Totals are fixed at creation.
type PayrollRecord struct {
	PayrollID  string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Period     string           `json:"period"`
	GrossPay   decimal.Decimal  `json:"grossPay"`
	Deductions decimal.Decimal  `json:"deductions"`
	NetPay     decimal.Decimal  `json:"netPay"`
	Status     PayrollStatus    `json:"status"`
	Items      []PayrollItem    `json:"items"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
	AuditFields
}

type PayrollItem struct {
	ItemID      string          `json:"id"`
	PayrollID   string          `json:"payrollId"`
	Type        PayrollItemType `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// EmployeeSummary is the slice of an employee embedded in payroll listings.
type EmployeeSummary struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employeeCode"`
	Position     string `json:"position"`
}

type PayrollFilter struct {
	Period     string
	EmployeeID string
	Limit      int
	Offset     int
}
