package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for signing access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService returns nil when Google sign-in is not configured.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	if !cfg.GoogleEnabled() {
		return nil
	}
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// authService implements AuthSvcFacade.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
	google   portssvc.GoogleOAuthSvcFacade
}

// AuthOption configures the auth service.
type AuthOption func(*authService)

// WithGoogleOAuth enables LoginWithGoogle.
func WithGoogleOAuth(google portssvc.GoogleOAuthSvcFacade) AuthOption {
	return func(s *authService) {
		s.google = google
	}
}

// NewAuthService creates the service that registers and signs in users.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, opts ...AuthOption) portssvc.AuthSvcFacade {
	svc := &authService{
		BaseService: newBaseService(),
		userRepo:    userRepo,
		tokens:      tokens,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var errInvalidCredentials = apperrors.NewUnauthorizedError("Invalid credentials")

// Register creates a company and its ADMIN user and signs them in.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.NewDuplicateError("User already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user", slog.String("email", email))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	userID := uuid.NewString()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        req.CompanyName,
		Settings:    map[string]any{},
		AuditFields: domain.NewAuditFields(userID, now),
	}
	user := domain.User{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         domain.RoleAdmin,
		CompanyID:    company.CompanyID,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	if err := s.userRepo.CreateCompanyWithAdmin(ctx, company, user); err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("email", email))
		return nil, err
	}
	user.Company = &domain.Company{CompanyID: company.CompanyID, Name: company.Name}

	s.LogInfo(ctx, "Company registered", slog.String("company_id", company.CompanyID), slog.String("user_id", userID))
	return s.issue(ctx, &user)
}

// Login verifies email and password of an active user.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials or inactive account")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, errInvalidCredentials
	}
	return s.issue(ctx, user)
}

// LoginWithGoogle signs in an existing active user whose verified Google email matches.
// Users are not created implicitly; they must first be registered or invited.
func (s *authService) LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	if s.google == nil {
		return nil, apperrors.NewNotFoundError("Google sign-in is not configured")
	}

	rawIDToken := req.IDToken
	if rawIDToken == "" {
		token, err := s.google.ExchangeCodeForToken(ctx, req.Code)
		if err != nil {
			s.LogError(ctx, err, "Google code exchange failed")
			return nil, apperrors.NewUnauthorizedError("Invalid Google authorization code")
		}
		idTok, ok := token.Extra("id_token").(string)
		if !ok || idTok == "" {
			return nil, apperrors.NewUnauthorizedError("Google did not return an ID token")
		}
		rawIDToken = idTok
	}

	payload, err := s.google.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		s.LogError(ctx, err, "Google ID token rejected")
		return nil, apperrors.NewUnauthorizedError("Invalid Google ID token")
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, apperrors.NewUnauthorizedError("Google account email is not verified")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials or inactive account")
	}
	return s.issue(ctx, user)
}

func (s *authService) issue(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &dto.AuthResponse{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
