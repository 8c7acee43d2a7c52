package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils/accounting"
	"github.com/google/uuid"
)

// ledgerService records postings. Balance changes are computed here and
// applied by the repository inside the same database transaction as the insert.
type ledgerService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryReader
}

func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService:  newBaseService(),
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ledgerService) RecordTransaction(ctx context.Context, companyID, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	amount, err := accounting.NormalizeAmount(req.Amount, "Amount")
	if err != nil {
		return nil, err
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Amount:        amount,
		Type:          req.Type,
		Description:   req.Description,
		Reference:     req.Reference,
		Date:          req.Date.TimeOr(now),
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if req.Type == domain.TransactionTransfer {
		txn.ToAccountID = req.ToAccountID
	}

	changes, err := accounting.BalanceChanges(txn)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, txn.AccountID)
	if err != nil {
		return nil, err
	}
	txn.Account = &domain.AccountSummary{Name: account.Name, Type: account.AccountType}

	if txn.ToAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, companyID, *txn.ToAccountID); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		txn.CategoryID = &category.CategoryID
		txn.Category = category
	}

	if err := s.txnRepo.SavePosting(ctx, companyID, txn, changes); err != nil {
		s.LogError(ctx, err, "Failed to record transaction",
			slog.String("account_id", txn.AccountID),
			slog.String("type", string(txn.Type)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, companyID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	page := params.Params()
	start, end := params.Bounds()

	txns, total, err := s.txnRepo.ListTransactions(ctx, companyID, domain.TransactionFilter{
		Type:       params.Type,
		CategoryID: params.CategoryID,
		AccountID:  params.AccountID,
		StartDate:  start,
		EndDate:    end,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListTransactionsResponse{Transactions: txns, Pagination: dto.NewPagination(page, total)}, nil
}

// GetSummary totals income and expenses over the range and the current balance of all accounts.
func (s *ledgerService) GetSummary(ctx context.Context, companyID string, params dto.SummaryParams) (*domain.FinancialSummary, error) {
	start, end := params.Bounds()

	sums, err := s.txnRepo.SumByType(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	balance, err := s.accountRepo.SumBalances(ctx, companyID)
	if err != nil {
		return nil, err
	}

	income := sums[domain.TransactionIncome]
	expenses := sums[domain.TransactionExpense]
	return &domain.FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income.Sub(expenses),
		TotalBalance:  balance,
	}, nil
}
