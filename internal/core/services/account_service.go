package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "USD"

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{BaseService: newBaseService(), accountRepo: repo}
}

// CreateAccount opens an account in the company. An opening balance may be
// given once here; afterwards the balance only moves through postings.
func (s *accountService) CreateAccount(ctx context.Context, companyID, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid account type")
	}

	balance := decimal.Zero
	if req.Balance != nil {
		var err error
		if balance, err = accounting.NormalizeAmount(req.Balance, "Opening balance"); err != nil {
			return nil, err
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		AccountType: req.Type,
		Balance:     balance,
		Currency:    currency,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, companyID)
}
