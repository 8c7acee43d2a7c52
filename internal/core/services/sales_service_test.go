package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SalesServiceTestSuite struct {
	suite.Suite
	store *memStore
	sales portssvc.SalesSvcFacade
	ctx   context.Context
}

func (s *SalesServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.store.customers["acme"] = domain.Customer{CustomerID: "acme", CompanyID: companyA, Name: "Acme Corp", Email: "billing@acme.test"}
	s.store.customers["rival"] = domain.Customer{CustomerID: "rival", CompanyID: companyB, Name: "Rival"}
	s.store.products["widget"] = domain.Product{ProductID: "widget", CompanyID: companyA, Name: "Widget", Price: decimal.NewFromInt(100), StockQuantity: 5, LowStockThreshold: 1, IsActive: true}
	s.store.products["rival-widget"] = domain.Product{ProductID: "rival-widget", CompanyID: companyB, Name: "Widget", StockQuantity: 9, IsActive: true}
	s.store.services["setup"] = domain.Service{ServiceID: "setup", CompanyID: companyA, Name: "Setup", Price: decimal.NewFromInt(50), IsActive: true}
	s.sales = services.NewSalesService(s.store, s.store, s.store, s.store)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}

func (s *SalesServiceTestSuite) widgetAndSetup() []dto.InvoiceItemRequest {
	return []dto.InvoiceItemRequest{
		{ProductID: strPtr("widget"), Description: "Widget", Quantity: 2, Price: dec("100")},
		{ServiceID: strPtr("setup"), Description: "Setup", Quantity: 1, Price: dec("50")},
	}
}

func (s *SalesServiceTestSuite) TestCreateInvoice_TotalsAndStock() {
	inv, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
		CustomerID: "acme",
		Items:      s.widgetAndSetup(),
		Tax:        dec("10"),
	})
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(250).Equal(inv.Subtotal), "subtotal %s", inv.Subtotal)
	s.True(decimal.NewFromInt(260).Equal(inv.Total), "total %s", inv.Total)
	s.True(decimal.NewFromInt(200).Equal(inv.Items[0].Total))
	s.Equal(domain.InvoiceDraft, inv.Status)
	s.True(strings.HasPrefix(inv.InvoiceNumber, "INV-"), inv.InvoiceNumber)
	s.Equal("Acme Corp", inv.Customer.Name)
	s.Equal(3, s.store.products["widget"].StockQuantity)
}

func (s *SalesServiceTestSuite) TestCreateInvoice_KeepsGivenNumber() {
	inv, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
		CustomerID:    "acme",
		InvoiceNumber: "2026-001",
		Items:         s.widgetAndSetup(),
	})
	s.Require().NoError(err)
	s.Equal("2026-001", inv.InvoiceNumber)
	s.True(decimal.NewFromInt(250).Equal(inv.Total))

	_, err = s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
		CustomerID:    "acme",
		InvoiceNumber: "2026-001",
		Items:         s.widgetAndSetup(),
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *SalesServiceTestSuite) TestCreateInvoice_RejectsForeignReferences() {
	tests := []struct {
		name string
		req  dto.CreateInvoiceRequest
	}{
		{"customer of another company", dto.CreateInvoiceRequest{CustomerID: "rival", Items: s.widgetAndSetup()}},
		{"product of another company", dto.CreateInvoiceRequest{CustomerID: "acme", Items: []dto.InvoiceItemRequest{
			{ProductID: strPtr("rival-widget"), Description: "Widget", Quantity: 1, Price: dec("1")},
		}}},
		{"unknown service", dto.CreateInvoiceRequest{CustomerID: "acme", Items: []dto.InvoiceItemRequest{
			{ServiceID: strPtr("missing"), Description: "Setup", Quantity: 1, Price: dec("1")},
		}}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.sales.CreateInvoice(s.ctx, companyA, userA, tt.req)
			s.ErrorIs(err, apperrors.ErrNotFound)
		})
	}
	s.Equal(5, s.store.products["widget"].StockQuantity)
	s.Equal(9, s.store.products["rival-widget"].StockQuantity)
	s.Empty(s.store.invoices)
}

func (s *SalesServiceTestSuite) TestCreateInvoice_ValidatesItems() {
	tests := []struct {
		name string
		item dto.InvoiceItemRequest
		tax  *decimal.Decimal
	}{
		{"product and service", dto.InvoiceItemRequest{ProductID: strPtr("widget"), ServiceID: strPtr("setup"), Description: "x", Quantity: 1, Price: dec("1")}, nil},
		{"negative price", dto.InvoiceItemRequest{Description: "x", Quantity: 1, Price: dec("-1")}, nil},
		{"zero quantity", dto.InvoiceItemRequest{Description: "x", Quantity: 0, Price: dec("1")}, nil},
		{"negative tax", dto.InvoiceItemRequest{Description: "x", Quantity: 1, Price: dec("1")}, dec("-0.01")},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
				CustomerID: "acme",
				Items:      []dto.InvoiceItemRequest{tt.item},
				Tax:        tt.tax,
			})
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *SalesServiceTestSuite) TestUpdateInvoiceStatus() {
	inv, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{CustomerID: "acme", Items: s.widgetAndSetup()})
	s.Require().NoError(err)

	updated, err := s.sales.UpdateInvoiceStatus(s.ctx, companyA, userA, inv.InvoiceID, dto.UpdateInvoiceStatusRequest{Status: domain.InvoicePaid})
	s.Require().NoError(err)
	s.Equal(domain.InvoicePaid, updated.Status)
	s.True(inv.Total.Equal(updated.Total))

	_, err = s.sales.UpdateInvoiceStatus(s.ctx, companyB, "user-b", inv.InvoiceID, dto.UpdateInvoiceStatusRequest{Status: domain.InvoiceCancelled})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SalesServiceTestSuite) TestCreateInvoice_TotalBeyondStorageRange() {
	_, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
		CustomerID: "acme",
		Items: []dto.InvoiceItemRequest{
			{ProductID: strPtr("widget"), Description: "Widget", Quantity: 2, Price: dec("9000000000000000")},
		},
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(5, s.store.products["widget"].StockQuantity)
	s.Empty(s.store.invoices)
}

func (s *SalesServiceTestSuite) TestCreateInvoice_NegativeTaxBelowACent() {
	_, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
		CustomerID: "acme",
		Items:      s.widgetAndSetup(),
		Tax:        dec("-0.001"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SalesServiceTestSuite) TestCreateInvoice_ItemsKeepRequestOrder() {
	inv, err := s.sales.CreateInvoice(s.ctx, companyA, userA, dto.CreateInvoiceRequest{
		CustomerID: "acme",
		Items:      s.widgetAndSetup(),
	})
	s.Require().NoError(err)

	stored := s.store.invoices[inv.InvoiceID]
	s.Require().Len(stored.Items, 2)
	for i, it := range stored.Items {
		s.Equal(i, it.Position)
	}
	s.Equal("widget", *stored.Items[0].ProductID)
	s.Equal("setup", *stored.Items[1].ServiceID)
}
