package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user and company data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `u.id, u.email, u.password_hash, u.name, u.role, u.company_id, u.is_active,
	u.created_at, u.created_by, u.updated_at, u.updated_by`

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CompanyID, &u.IsActive,
		&u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy,
	)
}

// FindUserByID retrieves a user and its company.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "u.id = $1", userID)
}

// FindUserByEmail retrieves a user by login email, case-insensitively.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "u.email = $1", strings.ToLower(email))
}

func (r *PgxUserRepository) findUser(ctx context.Context, condition, arg string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `, c.id, c.name
		FROM users u
		JOIN companies c ON c.id = u.company_id
		WHERE ` + condition

	var u domain.User
	company := &domain.Company{}
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CompanyID, &u.IsActive,
		&u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy,
		&company.CompanyID, &company.Name,
	)
	if err != nil {
		return nil, mapFindError(err, "user", arg)
	}
	u.Company = company
	return &u, nil
}

// ListUsersByCompany lists every member of a company ordered by name.
func (r *PgxUserRepository) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.company_id = $1 ORDER BY u.name`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users for company %s: %w", companyID, err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// FindCompanyByID retrieves the tenant record.
func (r *PgxUserRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT id, name, address, phone, email, tax_id, settings, created_at, updated_at
		FROM companies WHERE id = $1`

	var c domain.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&c.CompanyID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.TaxID, &c.Settings, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapFindError(err, "company", companyID)
	}
	return &c, nil
}

// CreateCompanyWithAdmin persists a new company and its first user in one transaction.
func (r *PgxUserRepository) CreateCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.User) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		settings := company.Settings
		if settings == nil {
			settings = map[string]any{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO companies (id, name, address, phone, email, tax_id, settings, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			company.CompanyID, company.Name, company.Address, company.Phone, company.Email, company.TaxID,
			settings, company.CreatedAt, company.UpdatedAt,
		)
		if err != nil {
			return mapSaveError(err, "Company")
		}
		return insertUser(ctx, tx, admin)
	})
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return insertUser(ctx, r.Pool, user)
}

func insertUser(ctx context.Context, db execer, u domain.User) error {
	_, err := db.Exec(ctx,
		`INSERT INTO users (id, company_id, email, password_hash, name, role, is_active, created_at, created_by, updated_at, updated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.UserID, u.CompanyID, strings.ToLower(u.Email), u.PasswordHash, u.Name, u.Role, u.IsActive,
		u.CreatedAt, u.CreatedBy, u.UpdatedAt, u.UpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "User")
	}
	return nil
}

// UpdateProfile changes a user's display name and login email.
func (r *PgxUserRepository) UpdateProfile(ctx context.Context, userID, name, email string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, updated_at = $4, updated_by = $1 WHERE id = $1`,
		userID, name, strings.ToLower(email), now,
	)
	if err != nil {
		return mapSaveError(err, "User")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetUserActive activates or deactivates a member of companyID.
func (r *PgxUserRepository) SetUserActive(ctx context.Context, companyID, userID string, active bool, actorID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE users SET is_active = $3, updated_at = $4, updated_by = $5 WHERE id = $1 AND company_id = $2`,
		userID, companyID, active, now, actorID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s status: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
