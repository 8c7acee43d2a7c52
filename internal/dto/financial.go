package dto

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required,max=255"`
	Type     domain.AccountType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Balance  *decimal.Decimal   `json:"balance"` // opening balance, defaults to 0
	Currency string             `json:"currency" binding:"omitempty,len=3,uppercase"`
}

type CreateCategoryRequest struct {
	Name     string              `json:"name" binding:"required,max=255"`
	Type     domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	ParentID *string             `json:"parentId"`
}

type ListCategoriesParams struct {
	Type domain.CategoryType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// CreateTransactionRequest posts money into or out of an account.
// ToAccountID is required for TRANSFER and ignored otherwise.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountId" binding:"required"`
	ToAccountID *string                `json:"toAccountId"`
	CategoryID  *string                `json:"categoryId"`
	Amount      *decimal.Decimal       `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Description string                 `json:"description" binding:"max=1000"`
	Reference   string                 `json:"reference" binding:"max=255"`
	Date        *Date                  `json:"date"`
}

type ListTransactionsParams struct {
	PageQuery
	DateRange
	Type       domain.TransactionType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	CategoryID string                 `form:"categoryId"`
	AccountID  string                 `form:"accountId"`
}

type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Pagination   Pagination           `json:"pagination"`
}

type SummaryParams struct {
	DateRange
}
