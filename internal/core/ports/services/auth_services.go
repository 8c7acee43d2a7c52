package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade issues credentials.
type AuthSvcFacade interface {
	// Register creates a company and its ADMIN user and signs them in.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies email and password of an active user.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// LoginWithGoogle signs in an existing active user whose verified Google email matches.
	LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (*dto.AuthResponse, error)
}

// TokenSvcFacade mints access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade talks to Google's OAuth endpoints.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
