package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/google/uuid"
)

const defaultDueSoonDays = 7

type checkService struct {
	BaseService
	checkRepo portsrepo.CheckRepositoryFacade
}

func NewCheckService(repo portsrepo.CheckRepositoryFacade) portssvc.CheckSvcFacade {
	return &checkService{BaseService: newBaseService(), checkRepo: repo}
}

func (s *checkService) CreateCheck(ctx context.Context, companyID, userID string, req dto.CreateCheckRequest) (*domain.Check, error) {
	amount, err := accounting.NormalizeAmount(req.Amount, "Amount")
	if err != nil {
		return nil, err
	}
	if req.DueDate.Time().Before(req.IssueDate.Time()) {
		return nil, apperrors.NewBadRequestError("Due date must not be before issue date")
	}

	check := domain.Check{
		CheckID:       uuid.NewString(),
		CompanyID:     companyID,
		Type:          req.Type,
		Amount:        amount,
		CheckNumber:   req.CheckNumber,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IssueDate:     req.IssueDate.Time(),
		DueDate:       req.DueDate.Time(),
		Status:        domain.CheckPending,
		Description:   req.Description,
		AuditFields:   domain.NewAuditFields(userID, s.now()),
	}
	if err := s.checkRepo.SaveCheck(ctx, check); err != nil {
		s.LogError(ctx, err, "Failed to save check")
		return nil, err
	}
	return &check, nil
}

func (s *checkService) ListChecks(ctx context.Context, companyID string, params dto.ListChecksParams) (*dto.ListChecksResponse, error) {
	page := params.Params()
	checks, total, err := s.checkRepo.ListChecks(ctx, companyID, domain.CheckFilter{
		Type:   params.Type,
		Status: params.Status,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListChecksResponse{Checks: checks, Pagination: dto.NewPagination(page, total)}, nil
}

// UpdateCheckStatus moves a PENDING check to a terminal status.
func (s *checkService) UpdateCheckStatus(ctx context.Context, companyID, userID, checkID string, req dto.UpdateCheckStatusRequest) (*domain.Check, error) {
	check, err := s.checkRepo.FindCheckByID(ctx, companyID, checkID)
	if err != nil {
		return nil, err
	}
	if !check.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Invalid status transition from %s to %s", check.Status, req.Status))
	}

	now := s.now()
	if err := s.checkRepo.UpdateCheckStatus(ctx, companyID, checkID, check.Status, req.Status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update check status", slog.String("check_id", checkID))
		return nil, err
	}

	check.Status = req.Status
	check.UpdatedAt, check.UpdatedBy = now, userID
	return check, nil
}

// ListDueSoon returns PENDING checks due between now and the given number of days ahead.
func (s *checkService) ListDueSoon(ctx context.Context, companyID string, params dto.DueSoonParams) ([]domain.Check, error) {
	days := params.Days
	if days <= 0 {
		days = defaultDueSoonDays
	}
	now := s.now()
	return s.checkRepo.ListPendingDueBetween(ctx, companyID, now, now.Add(time.Duration(days)*24*time.Hour))
}
