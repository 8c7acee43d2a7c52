package services

import (
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)

	// Google sign-in stays nil unless a client ID is configured
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	authOpts := []AuthOption{}
	if container.GoogleOAuth != nil {
		authOpts = append(authOpts, WithGoogleOAuth(container.GoogleOAuth))
	}
	container.Auth = NewAuthService(repos.UserRepo, NewTokenService(cfg), authOpts...)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo)
	container.Check = NewCheckService(repos.CheckRepo)
	container.Payroll = NewPayrollService(repos.EmployeeRepo, repos.PayrollRepo)
	container.Sales = NewSalesService(repos.CustomerRepo, repos.InvoiceRepo, repos.ProductRepo, repos.ServiceCatalogRepo)
	container.Inventory = NewInventoryService(repos.ProductRepo, repos.ServiceCatalogRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade   = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.SalesSvcFacade     = (*salesService)(nil)
	_ portssvc.InventorySvcFacade = (*inventoryService)(nil)
)
