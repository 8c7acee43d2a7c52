package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

type CheckSvcFacade interface {
	CreateCheck(ctx context.Context, companyID, userID string, req dto.CreateCheckRequest) (*domain.Check, error)
	ListChecks(ctx context.Context, companyID string, params dto.ListChecksParams) (*dto.ListChecksResponse, error)
	UpdateCheckStatus(ctx context.Context, companyID, userID, checkID string, req dto.UpdateCheckStatusRequest) (*domain.Check, error)
	ListDueSoon(ctx context.Context, companyID string, params dto.DueSoonParams) ([]domain.Check, error)
}
