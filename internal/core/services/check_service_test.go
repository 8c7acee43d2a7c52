package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCheckRepository is a mock implementation of CheckRepositoryFacade
type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) FindCheckByID(ctx context.Context, companyID, checkID string) (*domain.Check, error) {
	args := m.Called(ctx, companyID, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}

func (m *MockCheckRepository) ListChecks(ctx context.Context, companyID string, filter domain.CheckFilter) ([]domain.Check, int, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]domain.Check), args.Int(1), args.Error(2)
}

func (m *MockCheckRepository) ListPendingDueBetween(ctx context.Context, companyID string, from, to time.Time) ([]domain.Check, error) {
	args := m.Called(ctx, companyID, from, to)
	return args.Get(0).([]domain.Check), args.Error(1)
}

func (m *MockCheckRepository) SaveCheck(ctx context.Context, check domain.Check) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockCheckRepository) UpdateCheckStatus(ctx context.Context, companyID, checkID string, from, to domain.CheckStatus, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, checkID, from, to, userID, now)
	return args.Error(0)
}

type CheckServiceTestSuite struct {
	suite.Suite
	repo    *MockCheckRepository
	service portssvc.CheckSvcFacade
	ctx     context.Context
}

func (s *CheckServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = new(MockCheckRepository)
	s.service = services.NewCheckService(s.repo)
}

func (s *CheckServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func TestCheckServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckServiceTestSuite))
}

func day(s string) dto.Date {
	t, _ := time.Parse("2006-01-02", s)
	return dto.Date(t)
}

func (s *CheckServiceTestSuite) TestCreateCheck_StartsPending() {
	s.repo.On("SaveCheck", s.ctx, mock.MatchedBy(func(c domain.Check) bool {
		return c.CompanyID == companyA && c.Status == domain.CheckPending && c.Amount.StringFixed(2) == "120.50"
	})).Return(nil).Once()

	check, err := s.service.CreateCheck(s.ctx, companyA, userA, dto.CreateCheckRequest{
		Type:      domain.CheckReceivable,
		Amount:    dec("120.5"),
		IssueDate: day("2026-03-01"),
		DueDate:   day("2026-03-15"),
	})
	s.Require().NoError(err)
	s.Equal(domain.CheckPending, check.Status)
	s.Equal(userA, check.CreatedBy)
}

func (s *CheckServiceTestSuite) TestCreateCheck_Validation() {
	_, err := s.service.CreateCheck(s.ctx, companyA, userA, dto.CreateCheckRequest{
		Type:      domain.CheckPayable,
		Amount:    dec("10"),
		IssueDate: day("2026-03-15"),
		DueDate:   day("2026-03-01"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateCheck(s.ctx, companyA, userA, dto.CreateCheckRequest{
		Type:      domain.CheckPayable,
		Amount:    dec("-1"),
		IssueDate: day("2026-03-01"),
		DueDate:   day("2026-03-01"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (s *CheckServiceTestSuite) TestUpdateCheckStatus_PendingToCleared() {
	s.repo.On("FindCheckByID", s.ctx, companyA, "chk-1").
		Return(&domain.Check{CheckID: "chk-1", CompanyID: companyA, Status: domain.CheckPending}, nil).Once()
	s.repo.On("UpdateCheckStatus", s.ctx, companyA, "chk-1", domain.CheckPending, domain.CheckCleared, userA, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	check, err := s.service.UpdateCheckStatus(s.ctx, companyA, userA, "chk-1", dto.UpdateCheckStatusRequest{Status: domain.CheckCleared})
	s.Require().NoError(err)
	s.Equal(domain.CheckCleared, check.Status)
	s.Equal(userA, check.UpdatedBy)
}

func (s *CheckServiceTestSuite) TestUpdateCheckStatus_RejectsLeavingTerminalState() {
	s.repo.On("FindCheckByID", s.ctx, companyA, "chk-1").
		Return(&domain.Check{CheckID: "chk-1", CompanyID: companyA, Status: domain.CheckCleared}, nil).Once()

	_, err := s.service.UpdateCheckStatus(s.ctx, companyA, userA, "chk-1", dto.UpdateCheckStatusRequest{Status: domain.CheckBounced})
	s.ErrorIs(err, apperrors.ErrValidation)

	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr))
	s.Equal("Invalid status transition from CLEARED to BOUNCED", appErr.Message)
}

func (s *CheckServiceTestSuite) TestUpdateCheckStatus_ForeignCheck() {
	s.repo.On("FindCheckByID", s.ctx, companyB, "chk-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.UpdateCheckStatus(s.ctx, companyB, "user-b", "chk-1", dto.UpdateCheckStatusRequest{Status: domain.CheckCancelled})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CheckServiceTestSuite) TestListDueSoon_DefaultsToAWeek() {
	s.repo.On("ListPendingDueBetween", s.ctx, companyA, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			from, to := args.Get(2).(time.Time), args.Get(3).(time.Time)
			s.Equal(7*24*time.Hour, to.Sub(from))
		}).
		Return([]domain.Check{{CheckID: "chk-1"}}, nil).Once()

	checks, err := s.service.ListDueSoon(s.ctx, companyA, dto.DueSoonParams{})
	s.Require().NoError(err)
	s.Len(checks, 1)
}

func (s *CheckServiceTestSuite) TestListChecks_Paginates() {
	s.repo.On("ListChecks", s.ctx, companyA, domain.CheckFilter{Status: domain.CheckPending, Limit: 5, Offset: 5}).
		Return([]domain.Check{{CheckID: "chk-6"}}, 6, nil).Once()

	resp, err := s.service.ListChecks(s.ctx, companyA, dto.ListChecksParams{
		PageQuery: dto.PageQuery{Page: 2, Limit: 5},
		Status:    domain.CheckPending,
	})
	s.Require().NoError(err)
	s.Equal(dto.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, resp.Pagination)
}
