package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckType string

const (
	CheckReceivable CheckType = "RECEIVABLE"
	CheckPayable    CheckType = "PAYABLE"
)

func (t CheckType) IsValid() bool {
	return t == CheckReceivable || t == CheckPayable
}

type CheckStatus string

const (
	CheckPending   CheckStatus = "PENDING"
	CheckCleared   CheckStatus = "CLEARED"
	CheckBounced   CheckStatus = "BOUNCED"
	CheckCancelled CheckStatus = "CANCELLED"
)

func (s CheckStatus) IsValid() bool {
	switch s {
	case CheckPending, CheckCleared, CheckBounced, CheckCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a check in status s may move to next.
// Only PENDING checks can change, and only to a terminal status.
func (s CheckStatus) CanTransitionTo(next CheckStatus) bool {
	if s != CheckPending {
		return false
	}
	switch next {
	case CheckCleared, CheckBounced, CheckCancelled:
		return true
	}
	return false
}

// Check is a receivable or payable paper check tracked by the company.
type Check struct {
	CheckID       string          `json:"id"`
	CompanyID     string          `json:"companyId"`
	Type          CheckType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CheckNumber   string          `json:"checkNumber,omitempty"`
	BankName      string          `json:"bankName,omitempty"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        CheckStatus     `json:"status"`
	Description   string          `json:"description,omitempty"`
	AuditFields
}

type CheckFilter struct {
	Type   CheckType
	Status CheckStatus
	Limit  int
	Offset int
}
