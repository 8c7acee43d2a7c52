package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

type InventorySvcFacade interface {
	CreateProduct(ctx context.Context, companyID, userID string, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, companyID string, params dto.ListProductsParams) (*dto.ListProductsResponse, error)
	AdjustStock(ctx context.Context, companyID, userID, productID string, req dto.AdjustStockRequest) (*domain.Product, error)
	CreateService(ctx context.Context, companyID, userID string, req dto.CreateServiceRequest) (*domain.Service, error)
	ListServices(ctx context.Context, companyID string, params dto.ListServicesParams) (*dto.ListServicesResponse, error)
	ListLowStock(ctx context.Context, companyID string) ([]domain.Product, error)
	GetSummary(ctx context.Context, companyID string) (*domain.InventorySummary, error)
}
