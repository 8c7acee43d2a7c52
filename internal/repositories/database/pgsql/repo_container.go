package pgsql

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:           newPgxUserRepository(dbPool),
		AccountRepo:        accountRepo,
		CategoryRepo:       newPgxCategoryRepository(dbPool),
		TransactionRepo:    newPgxTransactionRepository(dbPool, accountRepo),
		CheckRepo:          newPgxCheckRepository(dbPool),
		EmployeeRepo:       newPgxEmployeeRepository(dbPool),
		PayrollRepo:        newPgxPayrollRepository(dbPool),
		CustomerRepo:       newPgxCustomerRepository(dbPool),
		InvoiceRepo:        newPgxInvoiceRepository(dbPool),
		ProductRepo:        newPgxProductRepository(dbPool),
		ServiceCatalogRepo: newPgxServiceCatalogRepository(dbPool),
	}
}
