package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID string `json:"id"`
	CompanyID  string `json:"companyId"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	TaxID      string `json:"taxId,omitempty"`
	AuditFields
}

type CustomerFilter struct {
	Search string
	Limit  int
	Offset int
}

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// Invoice is a bill to a customer. Subtotal, Tax and Total are fixed at creation.
type Invoice struct {
	InvoiceID     string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	CustomerID    string           `json:"customerId"`
	Date          time.Time        `json:"date"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	Total         decimal.Decimal  `json:"total"`
	Status        InvoiceStatus    `json:"status"`
	Notes         string           `json:"notes,omitempty"`
	Items         []InvoiceItem    `json:"items"`
	Customer      *CustomerSummary `json:"customer,omitempty"`
	AuditFields
}

// InvoiceItem is one line of an invoice. It may reference a product or a service.
type InvoiceItem struct {
	ItemID      string          `json:"id"`
	InvoiceID   string          `json:"invoiceId"`
	Position    int             `json:"position"`
	ProductID   *string         `json:"productId,omitempty"`
	ServiceID   *string         `json:"serviceId,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type InvoiceFilter struct {
	Status     InvoiceStatus
	CustomerID string
	Limit      int
	Offset     int
}
