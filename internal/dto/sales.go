package dto

import (
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"omitempty,email,max=255"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=1000"`
	TaxID   string `json:"taxId" binding:"max=100"`
}

type ListCustomersParams struct {
	PageQuery
	Search string `form:"search"`
}

type ListCustomersResponse struct {
	Customers  []domain.Customer `json:"customers"`
	Pagination Pagination        `json:"pagination"`
}

// InvoiceItemRequest may reference at most one of a product or a service.
type InvoiceItemRequest struct {
	ProductID   *string          `json:"productId"`
	ServiceID   *string          `json:"serviceId"`
	Description string           `json:"description" binding:"required,max=1000"`
	Quantity    int              `json:"quantity" binding:"required,min=1,max=2147483647"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

// CreateInvoiceRequest bills a customer. InvoiceNumber is generated when empty.
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customerId" binding:"required"`
	InvoiceNumber string               `json:"invoiceNumber" binding:"max=100"`
	Date          *Date                `json:"date"`
	DueDate       *Date                `json:"dueDate"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Tax           *decimal.Decimal     `json:"tax"`
	Notes         string               `json:"notes" binding:"max=2000"`
}

type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
}

type ListInvoicesParams struct {
	PageQuery
	Status     domain.InvoiceStatus `form:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
	CustomerID string               `form:"customerId"`
}

type ListInvoicesResponse struct {
	Invoices   []domain.Invoice `json:"invoices"`
	Pagination Pagination       `json:"pagination"`
}
