package dto

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateCheckRequest struct {
	Type          domain.CheckType `json:"type" binding:"required,oneof=RECEIVABLE PAYABLE"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	CheckNumber   string           `json:"checkNumber" binding:"max=100"`
	BankName      string           `json:"bankName" binding:"max=255"`
	AccountNumber string           `json:"accountNumber" binding:"max=100"`
	IssueDate     Date             `json:"issueDate" binding:"required"`
	DueDate       Date             `json:"dueDate" binding:"required"`
	Description   string           `json:"description" binding:"max=1000"`
}

type UpdateCheckStatusRequest struct {
	Status domain.CheckStatus `json:"status" binding:"required,oneof=PENDING CLEARED BOUNCED CANCELLED"`
}

type ListChecksParams struct {
	PageQuery
	Type   domain.CheckType   `form:"type" binding:"omitempty,oneof=RECEIVABLE PAYABLE"`
	Status domain.CheckStatus `form:"status" binding:"omitempty,oneof=PENDING CLEARED BOUNCED CANCELLED"`
}

type DueSoonParams struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

type ListChecksResponse struct {
	Checks     []domain.Check `json:"checks"`
	Pagination Pagination     `json:"pagination"`
}
