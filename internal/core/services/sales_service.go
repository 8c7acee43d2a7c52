package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const invoiceNumberPrefix = "INV"

type salesService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	productRepo  portsrepo.ProductReader
	serviceRepo  portsrepo.ServiceCatalogReader
}

func NewSalesService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	productRepo portsrepo.ProductReader,
	serviceRepo portsrepo.ServiceCatalogReader,
) portssvc.SalesSvcFacade {
	return &salesService{
		BaseService:  newBaseService(),
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
	}
}

func (s *salesService) CreateCustomer(ctx context.Context, companyID, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		TaxID:       req.TaxID,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer")
		return nil, err
	}
	return &customer, nil
}

func (s *salesService) ListCustomers(ctx context.Context, companyID string, params dto.ListCustomersParams) (*dto.ListCustomersResponse, error) {
	page := params.Params()
	customers, total, err := s.customerRepo.ListCustomers(ctx, companyID, domain.CustomerFilter{
		Search: params.Search,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListCustomersResponse{Customers: customers, Pagination: dto.NewPagination(page, total)}, nil
}

// CreateInvoice bills a customer of the company. Every referenced product and
// service must belong to the company; product stock is decremented by the
// invoiced quantity in the same database transaction as the insert.
func (s *salesService) CreateInvoice(ctx context.Context, companyID, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, companyID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	tax := decimal.Zero
	if req.Tax != nil {
		if tax, err = accounting.NormalizeAmount(req.Tax, "Tax"); err != nil {
			return nil, err
		}
	}

	prices := make([]decimal.Decimal, len(req.Items))
	var productIDs, serviceIDs []string
	for i, it := range req.Items {
		if it.ProductID != nil && it.ServiceID != nil {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Item %d references both a product and a service", i+1))
		}
		if prices[i], err = accounting.NormalizeAmount(it.Price, fmt.Sprintf("Item %d price", i+1)); err != nil {
			return nil, err
		}
		if it.Quantity <= 0 {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Item %d quantity must be positive", i+1))
		}
		if it.ProductID != nil {
			productIDs = append(productIDs, *it.ProductID)
		}
		if it.ServiceID != nil {
			serviceIDs = append(serviceIDs, *it.ServiceID)
		}
	}

	if err := s.ensureCatalogRefs(ctx, companyID, productIDs, serviceIDs); err != nil {
		return nil, err
	}

	now := s.now()
	number := req.InvoiceNumber
	if number == "" {
		if number, err = utils.GenerateDocumentNumber(invoiceNumberPrefix, now); err != nil {
			return nil, fmt.Errorf("failed to generate invoice number: %w", err)
		}
	}

	invoiceID := uuid.NewString()
	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for i, it := range req.Items {
		items = append(items, domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Position:    i,
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       prices[i],
		})
	}
	subtotal, total := accounting.InvoiceTotals(items, tax)
	if err := accounting.CheckAmountRange(total, "Invoice total"); err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: number,
		CustomerID:    customer.CustomerID,
		Date:          req.Date.TimeOr(now),
		DueDate:       req.DueDate.TimePtr(),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Status:        domain.InvoiceDraft,
		Notes:         req.Notes,
		Items:         items,
		Customer:      &domain.CustomerSummary{Name: customer.Name, Email: customer.Email},
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, companyID, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", number))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoiceID), slog.String("total", total.String()))
	return &invoice, nil
}

func (s *salesService) ensureCatalogRefs(ctx context.Context, companyID string, productIDs, serviceIDs []string) error {
	if len(productIDs) > 0 {
		products, err := s.productRepo.FindProductsByIDs(ctx, companyID, productIDs)
		if err != nil {
			return err
		}
		for _, id := range productIDs {
			if _, ok := products[id]; !ok {
				return apperrors.NewNotFoundError("Product not found")
			}
		}
	}
	if len(serviceIDs) > 0 {
		services, err := s.serviceRepo.FindServicesByIDs(ctx, companyID, serviceIDs)
		if err != nil {
			return err
		}
		for _, id := range serviceIDs {
			if _, ok := services[id]; !ok {
				return apperrors.NewNotFoundError("Service not found")
			}
		}
	}
	return nil
}

func (s *salesService) ListInvoices(ctx context.Context, companyID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	page := params.Params()
	invoices, total, err := s.invoiceRepo.ListInvoices(ctx, companyID, domain.InvoiceFilter{
		Status:     params.Status,
		CustomerID: params.CustomerID,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListInvoicesResponse{Invoices: invoices, Pagination: dto.NewPagination(page, total)}, nil
}

// UpdateInvoiceStatus changes the status only; totals stay as computed at creation.
func (s *salesService) UpdateInvoiceStatus(ctx context.Context, companyID, userID, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid invoice status")
	}
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, companyID, invoiceID, req.Status, userID, s.now()); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, companyID, invoiceID)
}
