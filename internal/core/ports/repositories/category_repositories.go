package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

type CategoryReader interface {
	FindCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.Category, error)
	// ListCategories returns the company's categories, optionally restricted to one type.
	ListCategories(ctx context.Context, companyID string, categoryType domain.CategoryType) ([]domain.Category, error)
}

type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
}

type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
