package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	UserRepo           UserRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	CategoryRepo       CategoryRepositoryFacade
	TransactionRepo    TransactionRepositoryFacade
	CheckRepo          CheckRepositoryFacade
	EmployeeRepo       EmployeeRepositoryFacade
	PayrollRepo        PayrollRepositoryFacade
	CustomerRepo       CustomerRepositoryFacade
	InvoiceRepo        InvoiceRepositoryFacade
	ProductRepo        ProductRepositoryFacade
	ServiceCatalogRepo ServiceCatalogRepositoryFacade
}
