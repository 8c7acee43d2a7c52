package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `id, company_id, name, email, phone, address, tax_id, created_at, created_by, updated_at, updated_by`

func scanCustomer(row pgx.Row, c *domain.Customer) error {
	return row.Scan(&c.CustomerID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TaxID,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy)
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error) {
	var c domain.Customer
	err := scanCustomer(r.Pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1 AND company_id = $2`, customerID, companyID), &c)
	if err != nil {
		return nil, mapFindError(err, "customer", customerID)
	}
	return &c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, companyID string, filter domain.CustomerFilter) ([]domain.Customer, int, error) {
	where := newWhereClause("company_id", companyID)
	if filter.Search != "" {
		where.add("(name ILIKE $%[1]d OR email ILIKE $%[1]d)", likePattern(filter.Search))
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, `SELECT `+customerColumns+` FROM customers`+where.String()+` ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, total, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, c domain.Customer) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO customers (`+customerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.CustomerID, c.CompanyID, c.Name, c.Email, c.Phone, c.Address, c.TaxID,
		c.CreatedAt, c.CreatedBy, c.UpdatedAt, c.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "Customer")
	}
	return nil
}

// PgxInvoiceRepository stores invoices and their lines. Invoices are scoped
// through their customer; company_id on the row only backs number uniqueness.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceSelect = `SELECT i.id, i.invoice_number, i.customer_id, i.date, i.due_date, i.subtotal, i.tax, i.total, i.status, i.notes,
	i.created_at, i.created_by, i.updated_at, i.updated_by,
	c.name, c.email
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id`

func scanInvoice(row pgx.Row, inv *domain.Invoice) error {
	cust := &domain.CustomerSummary{}
	err := row.Scan(
		&inv.InvoiceID, &inv.InvoiceNumber, &inv.CustomerID, &inv.Date, &inv.DueDate,
		&inv.Subtotal, &inv.Tax, &inv.Total, &inv.Status, &inv.Notes,
		&inv.CreatedAt, &inv.CreatedBy, &inv.UpdatedAt, &inv.UpdatedBy,
		&cust.Name, &cust.Email,
	)
	inv.Customer = cust
	return err
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := scanInvoice(r.Pool.QueryRow(ctx, invoiceSelect+` WHERE i.id = $1 AND c.company_id = $2`, invoiceID, companyID), &inv); err != nil {
		return nil, mapFindError(err, "invoice", invoiceID)
	}
	items, err := r.loadItems(ctx, []string{inv.InvoiceID})
	if err != nil {
		return nil, err
	}
	inv.Items = itemsOrEmpty(items[inv.InvoiceID])
	return &inv, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, companyID string, filter domain.InvoiceFilter) ([]domain.Invoice, int, error) {
	where := newWhereClause("c.company_id", companyID)
	where.addIf(filter.Status != "", "i.status = $%d", filter.Status)
	where.addIf(filter.CustomerID != "", "i.customer_id = $%d", filter.CustomerID)

	var total int
	countQuery := `SELECT COUNT(*) FROM invoices i JOIN customers c ON c.id = i.customer_id` + where.String()
	if err := r.Pool.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, invoiceSelect+where.String()+` ORDER BY i.date DESC, i.created_at DESC`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	ids := []string{}
	for rows.Next() {
		var inv domain.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
		ids = append(ids, inv.InvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range invoices {
		invoices[i].Items = itemsOrEmpty(items[invoices[i].InvoiceID])
	}
	return invoices, total, nil
}

func itemsOrEmpty(items []domain.InvoiceItem) []domain.InvoiceItem {
	if items == nil {
		return []domain.InvoiceItem{}
	}
	return items
}

func (r *PgxInvoiceRepository) loadItems(ctx context.Context, invoiceIDs []string) (map[string][]domain.InvoiceItem, error) {
	if len(invoiceIDs) == 0 {
		return map[string][]domain.InvoiceItem{}, nil
	}
	rows, err := r.Pool.Query(ctx,
		`SELECT id, invoice_id, position, product_id, service_id, description, quantity, price, total
		 FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY invoice_id, position`,
		invoiceIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.InvoiceItem, len(invoiceIDs))
	for rows.Next() {
		var it domain.InvoiceItem
		if err := rows.Scan(&it.ItemID, &it.InvoiceID, &it.Position, &it.ProductID, &it.ServiceID, &it.Description, &it.Quantity, &it.Price, &it.Total); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items[it.InvoiceID] = append(items[it.InvoiceID], it)
	}
	return items, rows.Err()
}

// SaveInvoice persists the invoice and its items and decrements the stock of
// every referenced product in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, companyID string, inv domain.Invoice) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1 AND company_id = $2)`,
			inv.CustomerID, companyID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to verify customer: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, inv.CustomerID)
		}

		stockChanges := map[string]int{}
		for _, it := range inv.Items {
			if it.ProductID != nil {
				stockChanges[*it.ProductID] -= it.Quantity
			}
		}
		if err := lockProducts(ctx, tx, companyID, stockChanges); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO invoices (id, company_id, customer_id, invoice_number, date, due_date, subtotal, tax, total, status, notes,
				created_at, created_by, updated_at, updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			inv.InvoiceID, companyID, inv.CustomerID, inv.InvoiceNumber, inv.Date, inv.DueDate,
			inv.Subtotal, inv.Tax, inv.Total, inv.Status, inv.Notes,
			inv.CreatedAt, inv.CreatedBy, inv.UpdatedAt, inv.UpdatedBy,
		)
		if err != nil {
			return mapSaveError(err, fmt.Sprintf("Invoice number %q", inv.InvoiceNumber))
		}

		batch := &pgx.Batch{}
		for _, it := range inv.Items {
			batch.Queue(
				`INSERT INTO invoice_items (id, invoice_id, position, product_id, service_id, description, quantity, price, total)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				it.ItemID, inv.InvoiceID, it.Position, it.ProductID, it.ServiceID, it.Description, it.Quantity, it.Price, it.Total,
			)
		}
		for productID, delta := range stockChanges {
			batch.Queue(
				`UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = $3, updated_by = $4 WHERE id = $1`,
				productID, delta, inv.CreatedAt, inv.CreatedBy,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapSaveError(err, "Invoice item")
		}
		return nil
	})
}

// lockProducts locks the given products of the company, failing with
// ErrNotFound if any of them is missing.
func lockProducts(ctx context.Context, tx pgx.Tx, companyID string, stockChanges map[string]int) error {
	if len(stockChanges) == 0 {
		return nil
	}
	ids := make([]string, 0, len(stockChanges))
	for id := range stockChanges {
		ids = append(ids, id)
	}

	rows, err := tx.Query(ctx,
		`SELECT id FROM products WHERE id = ANY($1) AND company_id = $2 ORDER BY id FOR UPDATE`,
		ids, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to lock products: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("failed to scan locked products: %w", err)
	}
	if len(found) != len(ids) {
		return fmt.Errorf("%w: product", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, companyID, invoiceID string, status domain.InvoiceStatus, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE invoices i SET status = $3, updated_at = $4, updated_by = $5
		 FROM customers c
		 WHERE i.customer_id = c.id AND i.id = $1 AND c.company_id = $2`,
		invoiceID, companyID, status, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s status: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
