package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type inventoryService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	serviceRepo portsrepo.ServiceCatalogRepositoryFacade
}

func NewInventoryService(productRepo portsrepo.ProductRepositoryFacade, serviceRepo portsrepo.ServiceCatalogRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{BaseService: newBaseService(), productRepo: productRepo, serviceRepo: serviceRepo}
}

func (s *inventoryService) CreateProduct(ctx context.Context, companyID, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	price, err := accounting.NormalizeAmount(req.Price, "Price")
	if err != nil {
		return nil, err
	}
	var cost *decimal.Decimal
	if req.Cost != nil {
		c, err := accounting.NormalizeAmount(req.Cost, "Cost")
		if err != nil {
			return nil, err
		}
		cost = &c
	}
	if req.StockQuantity < 0 || req.LowStockThreshold < 0 {
		return nil, apperrors.NewBadRequestError("Stock quantities must not be negative")
	}

	var sku *string
	if req.SKU != nil {
		if trimmed := strings.TrimSpace(*req.SKU); trimmed != "" {
			sku = &trimmed
		}
	}

	product := domain.Product{
		ProductID:         uuid.NewString(),
		CompanyID:         companyID,
		Name:              req.Name,
		Description:       req.Description,
		SKU:               sku,
		Price:             price,
		Cost:              cost,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
		AuditFields:       domain.NewAuditFields(userID, s.now()),
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, err
	}
	return &product, nil
}

func (s *inventoryService) ListProducts(ctx context.Context, companyID string, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	page := params.Params()
	products, total, err := s.productRepo.ListProducts(ctx, companyID, domain.ProductFilter{
		Search:   params.Search,
		LowStock: params.LowStock,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListProductsResponse{Products: products, Pagination: dto.NewPagination(page, total)}, nil
}

// AdjustStock adds or removes units with an in-place update so concurrent adjustments are not lost.
func (s *inventoryService) AdjustStock(ctx context.Context, companyID, userID, productID string, req dto.AdjustStockRequest) (*domain.Product, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.NewBadRequestError("Quantity must be positive")
	}
	if req.Operation != domain.StockAdd && req.Operation != domain.StockSubtract {
		return nil, apperrors.NewBadRequestError("Operation must be add or subtract")
	}

	product, err := s.productRepo.AdjustStock(ctx, companyID, productID, req.Operation.Delta(req.Quantity), userID, s.now())
	if err != nil {
		return nil, err
	}
	if product.IsLowStock() {
		s.LogInfo(ctx, "Product at or below low stock threshold",
			slog.String("product_id", productID),
			slog.Int("stock_quantity", product.StockQuantity))
	}
	return product, nil
}

func (s *inventoryService) CreateService(ctx context.Context, companyID, userID string, req dto.CreateServiceRequest) (*domain.Service, error) {
	price, err := accounting.NormalizeAmount(req.Price, "Price")
	if err != nil {
		return nil, err
	}
	service := domain.Service{
		ServiceID:   uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to save service")
		return nil, err
	}
	return &service, nil
}

func (s *inventoryService) ListServices(ctx context.Context, companyID string, params dto.ListServicesParams) (*dto.ListServicesResponse, error) {
	page := params.Params()
	services, total, err := s.serviceRepo.ListServices(ctx, companyID, domain.ServiceFilter{
		Search: params.Search,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListServicesResponse{Services: services, Pagination: dto.NewPagination(page, total)}, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, companyID string) ([]domain.Product, error) {
	return s.productRepo.ListLowStock(ctx, companyID)
}

func (s *inventoryService) GetSummary(ctx context.Context, companyID string) (*domain.InventorySummary, error) {
	return s.productRepo.GetInventorySummary(ctx, companyID)
}
