package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// UserReader defines read operations for user and company data
type UserReader interface {
	// FindUserByID retrieves a user regardless of company. Used to resolve token subjects.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByCompany lists every member of a company ordered by name.
	ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error)

	// FindCompanyByID retrieves the tenant record.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateCompanyWithAdmin persists a new company and its first user in one transaction.
	CreateCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.User) error

	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile changes a user's display name and login email.
	UpdateProfile(ctx context.Context, userID, name, email string, now time.Time) error

	// SetUserActive activates or deactivates a member of companyID.
	SetUserActive(ctx context.Context, companyID, userID string, active bool, actorID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
