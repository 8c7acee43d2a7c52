package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a financial account within the core domain.
// Balance only moves through ledger postings after creation.
type Account struct {
	AccountID   string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
