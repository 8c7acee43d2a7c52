package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it and pick the facades they need.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	User        UserSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade // nil when Google sign-in is not configured
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Ledger      LedgerSvcFacade
	Check       CheckSvcFacade
	Payroll     PayrollSvcFacade
	Sales       SalesSvcFacade
	Inventory   InventorySvcFacade
}
