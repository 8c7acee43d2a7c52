package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

type ProductReader interface {
	FindProductByID(ctx context.Context, companyID, productID string) (*domain.Product, error)
	// FindProductsByIDs returns the company's products among ids, keyed by ID.
	FindProductsByIDs(ctx context.Context, companyID string, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, companyID string, filter domain.ProductFilter) ([]domain.Product, int, error)
	// ListLowStock returns active products at or below their threshold, lowest stock first.
	ListLowStock(ctx context.Context, companyID string) ([]domain.Product, error)
	GetInventorySummary(ctx context.Context, companyID string) (*domain.InventorySummary, error)
}

type ProductWriter interface {
	// SaveProduct persists a new product. A reused SKU yields apperrors.ErrDuplicate.
	SaveProduct(ctx context.Context, product domain.Product) error
	// AdjustStock adds delta to the stored quantity in place and returns the updated product.
	AdjustStock(ctx context.Context, companyID, productID string, delta int, userID string, now time.Time) (*domain.Product, error)
}

type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

type ServiceCatalogReader interface {
	FindServicesByIDs(ctx context.Context, companyID string, serviceIDs []string) (map[string]domain.Service, error)
	ListServices(ctx context.Context, companyID string, filter domain.ServiceFilter) ([]domain.Service, int, error)
}

type ServiceCatalogWriter interface {
	SaveService(ctx context.Context, service domain.Service) error
}

type ServiceCatalogRepositoryFacade interface {
	ServiceCatalogReader
	ServiceCatalogWriter
}
