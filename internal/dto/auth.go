package dto

import (
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
)

// RegisterRequest creates a company together with its first ADMIN user.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
	Name        string `json:"name" binding:"required,max=255"`
	CompanyName string `json:"companyName" binding:"required,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries either a Google ID token or an authorization code.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required_without=Code"`
	Code    string `json:"code" binding:"required_without=IDToken"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
}

// CreateUserRequest adds a member to the caller's company.
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"required,min=6,max=128"`
	Name     string      `json:"name" binding:"required,max=255"`
	Role     domain.Role `json:"role" binding:"required,oneof=ADMIN ACCOUNTANT USER VIEWER"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
