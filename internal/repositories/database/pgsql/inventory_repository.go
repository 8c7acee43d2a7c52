package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `id, company_id, name, description, sku, price, cost, stock_quantity, low_stock_threshold, is_active,
	created_at, created_by, updated_at, updated_by`

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ProductID, &p.CompanyID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.Cost,
		&p.StockQuantity, &p.LowStockThreshold, &p.IsActive,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, companyID, productID string) (*domain.Product, error) {
	var p domain.Product
	err := scanProduct(r.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND company_id = $2`, productID, companyID), &p)
	if err != nil {
		return nil, mapFindError(err, "product", productID)
	}
	return &p, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, companyID string, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1) AND company_id = $2`, productIDs, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	return byID, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, companyID string, filter domain.ProductFilter) ([]domain.Product, int, error) {
	where := newWhereClause("company_id", companyID)
	where.addRaw("is_active = TRUE")
	if filter.Search != "" {
		where.add("(name ILIKE $%[1]d OR sku ILIKE $%[1]d OR description ILIKE $%[1]d)", likePattern(filter.Search))
	}
	if filter.LowStock {
		where.addRaw("stock_quantity <= low_stock_threshold")
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM products`+where.String()+` ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListLowStock returns active products at or below their threshold, lowest stock first.
func (r *PgxProductRepository) ListLowStock(ctx context.Context, companyID string) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE company_id = $1 AND is_active = TRUE AND stock_quantity <= low_stock_threshold
		 ORDER BY stock_quantity ASC, name`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	return collectProducts(rows)
}

func (r *PgxProductRepository) GetInventorySummary(ctx context.Context, companyID string) (*domain.InventorySummary, error) {
	var s domain.InventorySummary
	err := r.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products WHERE company_id = $1 AND is_active = TRUE),
			(SELECT COUNT(*) FROM services WHERE company_id = $1 AND is_active = TRUE),
			(SELECT COUNT(*) FROM products WHERE company_id = $1 AND is_active = TRUE AND stock_quantity <= low_stock_threshold),
			(SELECT COALESCE(SUM(stock_quantity), 0) FROM products WHERE company_id = $1 AND is_active = TRUE)`,
		companyID,
	).Scan(&s.TotalProducts, &s.TotalServices, &s.LowStockCount, &s.TotalStockQuantity)
	if err != nil {
		return nil, fmt.Errorf("failed to compute inventory summary: %w", err)
	}
	return &s, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, p domain.Product) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ProductID, p.CompanyID, p.Name, p.Description, p.SKU, p.Price, p.Cost,
		p.StockQuantity, p.LowStockThreshold, p.IsActive,
		p.CreatedAt, p.CreatedBy, p.UpdatedAt, p.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "SKU")
	}
	return nil
}

// AdjustStock adds delta to the stored quantity in place and returns the updated product.
func (r *PgxProductRepository) AdjustStock(ctx context.Context, companyID, productID string, delta int, userID string, now time.Time) (*domain.Product, error) {
	var p domain.Product
	err := scanProduct(r.Pool.QueryRow(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $3, updated_at = $4, updated_by = $5
		 WHERE id = $1 AND company_id = $2
		 RETURNING `+productColumns,
		productID, companyID, delta, now, userID,
	), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, mapFindError(err, "product", productID)
	}
	if err != nil {
		return nil, mapSaveError(err, "Stock quantity")
	}
	return &p, nil
}

type PgxServiceCatalogRepository struct {
	BaseRepository
}

func newPgxServiceCatalogRepository(pool *pgxpool.Pool) *PgxServiceCatalogRepository {
	return &PgxServiceCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceCatalogRepositoryFacade = (*PgxServiceCatalogRepository)(nil)

const serviceColumns = `id, company_id, name, description, price, is_active, created_at, created_by, updated_at, updated_by`

func collectServices(rows pgx.Rows) ([]domain.Service, error) {
	defer rows.Close()
	services := []domain.Service{}
	for rows.Next() {
		var s domain.Service
		err := rows.Scan(&s.ServiceID, &s.CompanyID, &s.Name, &s.Description, &s.Price, &s.IsActive,
			&s.CreatedAt, &s.CreatedBy, &s.UpdatedAt, &s.UpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}
	return services, nil
}

func (r *PgxServiceCatalogRepository) FindServicesByIDs(ctx context.Context, companyID string, serviceIDs []string) (map[string]domain.Service, error) {
	if len(serviceIDs) == 0 {
		return map[string]domain.Service{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ANY($1) AND company_id = $2`, serviceIDs, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query services by IDs: %w", err)
	}
	services, err := collectServices(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Service, len(services))
	for _, s := range services {
		byID[s.ServiceID] = s
	}
	return byID, nil
}

func (r *PgxServiceCatalogRepository) ListServices(ctx context.Context, companyID string, filter domain.ServiceFilter) ([]domain.Service, int, error) {
	where := newWhereClause("company_id", companyID)
	where.addRaw("is_active = TRUE")
	if filter.Search != "" {
		where.add("(name ILIKE $%[1]d OR description ILIKE $%[1]d)", likePattern(filter.Search))
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	suffix, args := where.page(filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, `SELECT `+serviceColumns+` FROM services`+where.String()+` ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query services: %w", err)
	}
	services, err := collectServices(rows)
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *PgxServiceCatalogRepository) SaveService(ctx context.Context, s domain.Service) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO services (`+serviceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ServiceID, s.CompanyID, s.Name, s.Description, s.Price, s.IsActive,
		s.CreatedAt, s.CreatedBy, s.UpdatedAt, s.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "Service")
	}
	return nil
}
