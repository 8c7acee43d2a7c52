package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

type CustomerReader interface {
	FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, companyID string, filter domain.CustomerFilter) ([]domain.Customer, int, error)
}

type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, companyID string, filter domain.InvoiceFilter) ([]domain.Invoice, int, error)
}

type InvoiceWriter interface {
	// SaveInvoice persists the invoice and its items and decrements the stock of
	// every referenced product, all in one transaction. Products outside
	// companyID yield apperrors.ErrNotFound.
	SaveInvoice(ctx context.Context, companyID string, invoice domain.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, companyID, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error
}

type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
