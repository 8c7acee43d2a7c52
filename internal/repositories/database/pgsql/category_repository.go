package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `id, company_id, name, type, parent_id, created_at, created_by, updated_at, updated_by`

func scanCategory(row pgx.Row, c *domain.Category) error {
	return row.Scan(&c.CategoryID, &c.CompanyID, &c.Name, &c.Type, &c.ParentID,
		&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND company_id = $2`

	var c domain.Category
	if err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID, companyID), &c); err != nil {
		return nil, mapFindError(err, "category", categoryID)
	}
	return &c, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, companyID string, categoryType domain.CategoryType) ([]domain.Category, error) {
	where := newWhereClause("company_id", companyID)
	where.addIf(categoryType != "", "type = $%d", categoryType)

	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories`+where.String()+` ORDER BY name`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for company %s: %w", companyID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.CategoryID, c.CompanyID, c.Name, c.Type, c.ParentID, c.CreatedAt, c.CreatedBy, c.UpdatedAt, c.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, fmt.Sprintf("Category named %q", c.Name))
	}
	return nil
}
