package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a posting.
type TransactionType string

const (
	TransactionIncome   TransactionType = "INCOME"
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionTransfer TransactionType = "TRANSFER"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// Transaction is an immutable posting against an account. Amount is always a
// non-negative magnitude; Type carries the direction.
type Transaction struct {
	TransactionID string          `json:"id"`
	AccountID     string          `json:"accountId"`
	ToAccountID   *string         `json:"toAccountId,omitempty"` // TRANSFER destination
	CategoryID    *string         `json:"categoryId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Date          time.Time       `json:"date"`
	Account       *AccountSummary `json:"account,omitempty"`
	Category      *Category       `json:"category,omitempty"`
	AuditFields
}

// AccountSummary is the slice of an account embedded in transaction listings.
type AccountSummary struct {
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// TransactionFilter narrows a transaction listing. Zero values mean "any".
type TransactionFilter struct {
	Type       TransactionType
	CategoryID string
	AccountID  string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// FinancialSummary aggregates postings and balances for a company.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
}
