package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{BaseService: newBaseService(), userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetProfile returns the user with the full company record attached.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	company, err := s.userRepo.FindCompanyByID(ctx, user.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company for profile", slog.String("company_id", user.CompanyID))
		return nil, err
	}
	user.Company = company
	return user, nil
}

func (s *userService) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.User, error) {
	return s.userRepo.ListUsersByCompany(ctx, companyID)
}

// UpdateProfile changes name and email. Empty fields keep their current value.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = user.Name
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		email = user.Email
	}

	now := s.now()
	if err := s.userRepo.UpdateProfile(ctx, userID, name, email, now); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, err
	}

	user.Name, user.Email = name, email
	user.UpdatedAt, user.UpdatedBy = now, userID
	return user, nil
}

// CreateCompanyUser adds a member with the given role to the company.
func (s *userService) CreateCompanyUser(ctx context.Context, companyID, actorID string, req dto.CreateUserRequest) (*domain.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateError("User already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		CompanyID:    companyID,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(actorID, s.now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create company user", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company user created", slog.String("new_user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// SetUserStatus activates or deactivates a member. Admins cannot deactivate themselves.
func (s *userService) SetUserStatus(ctx context.Context, companyID, actorID, userID string, active bool) error {
	if userID == actorID && !active {
		return apperrors.NewBadRequestError("You cannot deactivate your own account")
	}
	return s.userRepo.SetUserActive(ctx, companyID, userID, active, actorID, s.now())
}
