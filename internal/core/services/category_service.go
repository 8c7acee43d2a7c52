package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{BaseService: newBaseService(), categoryRepo: repo}
}

// CreateCategory adds a category. A parent must belong to the same company and have the same type.
func (s *categoryService) CreateCategory(ctx context.Context, companyID, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid category type")
	}

	var parentID *string
	if req.ParentID != nil && *req.ParentID != "" {
		parent, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.Type != req.Type {
			return nil, apperrors.NewBadRequestError("Parent category must have the same type")
		}
		parentID = &parent.CategoryID
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Type:        req.Type,
		ParentID:    parentID,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, companyID string, params dto.ListCategoriesParams) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, companyID, params.Type)
}
