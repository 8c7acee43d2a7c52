package services_test

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the PostgreSQL repositories. A single
// mutex plays the role of the row locks taken by the real posting path.
type memStore struct {
	mu           sync.Mutex
	companies    map[string]domain.Company
	users        map[string]domain.User
	accounts     map[string]domain.Account
	categories   map[string]domain.Category
	transactions []domain.Transaction
	customers    map[string]domain.Customer
	invoices     map[string]domain.Invoice
	products     map[string]domain.Product
	services     map[string]domain.Service
}

func newMemStore() *memStore {
	return &memStore{
		companies:  map[string]domain.Company{},
		users:      map[string]domain.User{},
		accounts:   map[string]domain.Account{},
		categories: map[string]domain.Category{},
		customers:  map[string]domain.Customer{},
		invoices:   map[string]domain.Invoice{},
		products:   map[string]domain.Product{},
		services:   map[string]domain.Service{},
	}
}

var (
	_ portsrepo.UserRepositoryFacade           = (*memStore)(nil)
	_ portsrepo.AccountRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.CategoryRepositoryFacade       = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.CustomerRepositoryFacade       = (*memStore)(nil)
	_ portsrepo.InvoiceRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.ProductRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.ServiceCatalogRepositoryFacade = (*memStore)(nil)
)

// --- users ---

func (m *memStore) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == strings.ToLower(email) {
			c := m.companies[u.CompanyID]
			u.Company = &domain.Company{CompanyID: c.CompanyID, Name: c.Name}
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) ListUsersByCompany(_ context.Context, companyID string) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, u := range m.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memStore) FindCompanyByID(_ context.Context, companyID string) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[companyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) CreateCompanyWithAdmin(_ context.Context, company domain.Company, admin domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[company.CompanyID] = company
	m.users[admin.UserID] = admin
	return nil
}

func (m *memStore) SaveUser(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserID] = user
	return nil
}

func (m *memStore) UpdateProfile(_ context.Context, userID, name, email string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Name, u.Email, u.UpdatedAt = name, email, now
	m.users[userID] = u
	return nil
}

func (m *memStore) SetUserActive(_ context.Context, companyID, userID string, active bool, _ string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok || u.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	u.IsActive = active
	m.users[userID] = u
	return nil
}

// --- accounts ---

func (m *memStore) FindAccountByID(_ context.Context, companyID, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[accountID]
	if !ok || a.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) ListAccounts(_ context.Context, companyID string) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Account
	for _, a := range m.accounts {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) SumBalances(_ context.Context, companyID string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, a := range m.accounts {
		if a.CompanyID == companyID {
			total = total.Add(a.Balance)
		}
	}
	return total, nil
}

func (m *memStore) SaveAccount(_ context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.CompanyID == account.CompanyID && a.Name == account.Name {
			return apperrors.NewDuplicateError("Account already exists")
		}
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) FindAccountsByIDsForUpdate(_ context.Context, _ pgx.Tx, _ string, _ []string) (map[string]domain.Account, error) {
	panic("not used: postings go through SavePosting")
}

func (m *memStore) UpdateAccountBalancesInTx(_ context.Context, _ pgx.Tx, _ map[string]decimal.Decimal, _ string, _ time.Time) error {
	panic("not used: postings go through SavePosting")
}

// --- categories ---

func (m *memStore) FindCategoryByID(_ context.Context, companyID, categoryID string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[categoryID]
	if !ok || c.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) ListCategories(_ context.Context, companyID string, t domain.CategoryType) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Category
	for _, c := range m.categories {
		if c.CompanyID == companyID && (t == "" || c.Type == t) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) SaveCategory(_ context.Context, c domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[c.CategoryID] = c
	return nil
}

// --- transactions ---

func (m *memStore) ListTransactions(_ context.Context, companyID string, f domain.TransactionFilter) ([]domain.Transaction, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Transaction
	for _, t := range m.transactions {
		if m.accounts[t.AccountID].CompanyID != companyID || (f.Type != "" && t.Type != f.Type) {
			continue
		}
		if f.AccountID != "" && t.AccountID != f.AccountID && (t.ToAccountID == nil || *t.ToAccountID != f.AccountID) {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *memStore) SumByType(_ context.Context, companyID string, _, _ *time.Time) (map[domain.TransactionType]decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sums := map[domain.TransactionType]decimal.Decimal{}
	for _, t := range m.transactions {
		if m.accounts[t.AccountID].CompanyID == companyID {
			sums[t.Type] = sums[t.Type].Add(t.Amount)
		}
	}
	return sums, nil
}

func (m *memStore) SavePosting(_ context.Context, companyID string, txn domain.Transaction, changes map[string]decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range changes {
		if a, ok := m.accounts[id]; !ok || a.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
	}
	for id, delta := range changes {
		a := m.accounts[id]
		a.Balance = a.Balance.Add(delta)
		m.accounts[id] = a
	}
	m.transactions = append(m.transactions, txn)
	return nil
}

// --- customers and invoices ---

func (m *memStore) FindCustomerByID(_ context.Context, companyID, customerID string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[customerID]
	if !ok || c.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) ListCustomers(_ context.Context, companyID string, _ domain.CustomerFilter) ([]domain.Customer, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Customer
	for _, c := range m.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, len(out), nil
}

func (m *memStore) SaveCustomer(_ context.Context, c domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.CustomerID] = c
	return nil
}

func (m *memStore) FindInvoiceByID(_ context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[invoiceID]
	if !ok || m.customers[inv.CustomerID].CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (m *memStore) ListInvoices(_ context.Context, companyID string, _ domain.InvoiceFilter) ([]domain.Invoice, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Invoice
	for _, inv := range m.invoices {
		if m.customers[inv.CustomerID].CompanyID == companyID {
			out = append(out, inv)
		}
	}
	return out, len(out), nil
}

func (m *memStore) SaveInvoice(_ context.Context, companyID string, inv domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber && m.customers[existing.CustomerID].CompanyID == companyID {
			return apperrors.NewDuplicateError("Invoice number already exists")
		}
	}
	for _, it := range inv.Items {
		if it.ProductID == nil {
			continue
		}
		p, ok := m.products[*it.ProductID]
		if !ok || p.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
	}
	for _, it := range inv.Items {
		if it.ProductID != nil {
			p := m.products[*it.ProductID]
			p.StockQuantity -= it.Quantity
			m.products[p.ProductID] = p
		}
	}
	m.invoices[inv.InvoiceID] = inv
	return nil
}

func (m *memStore) UpdateInvoiceStatus(_ context.Context, companyID, invoiceID string, status domain.InvoiceStatus, _ string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[invoiceID]
	if !ok || m.customers[inv.CustomerID].CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	inv.Status = status
	m.invoices[invoiceID] = inv
	return nil
}

// --- products and services ---

func (m *memStore) FindProductByID(_ context.Context, companyID, productID string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok || p.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) FindProductsByIDs(_ context.Context, companyID string, ids []string) (map[string]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]domain.Product{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok && p.CompanyID == companyID {
			out[id] = p
		}
	}
	return out, nil
}

func (m *memStore) ListProducts(_ context.Context, companyID string, f domain.ProductFilter) ([]domain.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, p := range m.products {
		if p.CompanyID == companyID && (!f.LowStock || p.IsLowStock()) {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (m *memStore) ListLowStock(ctx context.Context, companyID string) ([]domain.Product, error) {
	out, _, err := m.ListProducts(ctx, companyID, domain.ProductFilter{LowStock: true})
	slices.SortFunc(out, func(a, b domain.Product) int { return a.StockQuantity - b.StockQuantity })
	return out, err
}

func (m *memStore) GetInventorySummary(_ context.Context, companyID string) (*domain.InventorySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &domain.InventorySummary{}
	for _, p := range m.products {
		if p.CompanyID != companyID {
			continue
		}
		s.TotalProducts++
		s.TotalStockQuantity += p.StockQuantity
		if p.IsLowStock() {
			s.LowStockCount++
		}
	}
	for _, svc := range m.services {
		if svc.CompanyID == companyID {
			s.TotalServices++
		}
	}
	return s, nil
}

func (m *memStore) SaveProduct(_ context.Context, p domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.SKU != nil {
		for _, existing := range m.products {
			if existing.CompanyID == p.CompanyID && existing.SKU != nil && *existing.SKU == *p.SKU {
				return apperrors.NewDuplicateError("SKU already exists")
			}
		}
	}
	m.products[p.ProductID] = p
	return nil
}

func (m *memStore) AdjustStock(_ context.Context, companyID, productID string, delta int, userID string, now time.Time) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok || p.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	p.StockQuantity += delta
	p.UpdatedAt, p.UpdatedBy = now, userID
	m.products[productID] = p
	return &p, nil
}

func (m *memStore) FindServicesByIDs(_ context.Context, companyID string, ids []string) (map[string]domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]domain.Service{}
	for _, id := range ids {
		if s, ok := m.services[id]; ok && s.CompanyID == companyID {
			out[id] = s
		}
	}
	return out, nil
}

func (m *memStore) ListServices(_ context.Context, companyID string, _ domain.ServiceFilter) ([]domain.Service, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Service
	for _, s := range m.services {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (m *memStore) SaveService(_ context.Context, s domain.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[s.ServiceID] = s
	return nil
}
