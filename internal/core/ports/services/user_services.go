package services

import (
	"context"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID resolves a user regardless of company. Used by the auth gate.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetProfile returns the user with its company attached.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)

	// ListCompanyUsers lists the members of a company.
	ListCompanyUsers(ctx context.Context, companyID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
	CreateCompanyUser(ctx context.Context, companyID, actorID string, req dto.CreateUserRequest) (*domain.User, error)
	SetUserStatus(ctx context.Context, companyID, actorID, userID string, active bool) error
}

type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
