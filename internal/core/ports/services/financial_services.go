package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, companyID, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, companyID, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, companyID string, params dto.ListCategoriesParams) ([]domain.Category, error)
}

// LedgerSvcFacade records postings and reports on them.
type LedgerSvcFacade interface {
	// RecordTransaction validates every referenced id against the company and
	// posts the transaction together with its balance changes.
	RecordTransaction(ctx context.Context, companyID, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, companyID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	GetSummary(ctx context.Context, companyID string, params dto.SummaryParams) (*domain.FinancialSummary, error)
}
