package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

type SalesSvcFacade interface {
	CreateCustomer(ctx context.Context, companyID, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context, companyID string, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error)
	CreateInvoice(ctx context.Context, companyID, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, companyID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
	UpdateInvoiceStatus(ctx context.Context, companyID, userID, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error)
}
