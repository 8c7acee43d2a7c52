package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-for-services"

type AuthServiceTestSuite struct {
	suite.Suite
	store *memStore
	auth  portssvc.AuthSvcFacade
	users portssvc.UserSvcFacade
	ctx   context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	cfg := &config.Config{JWTSecret: testJWTSecret, JWTExpiryDuration: time.Hour, JWTIssuer: "bizbooks-test"}
	s.auth = services.NewAuthService(s.store, services.NewTokenService(cfg))
	s.users = services.NewUserService(s.store)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) register() *dto.AuthResponse {
	resp, err := s.auth.Register(s.ctx, dto.RegisterRequest{
		Email:       "Owner@Acme.test",
		Password:    "secret123",
		Name:        "Owner",
		CompanyName: "Acme",
	})
	s.Require().NoError(err)
	return resp
}

func (s *AuthServiceTestSuite) TestRegisterThenLogin() {
	reg := s.register()
	s.Equal(domain.RoleAdmin, reg.User.Role)
	s.Equal("owner@acme.test", reg.User.Email)
	s.Equal("Acme", reg.User.Company.Name)
	s.NotEmpty(reg.Token)

	claims, err := utils.ParseAndValidateJWT(reg.Token, testJWTSecret)
	s.Require().NoError(err)
	s.Equal(reg.User.UserID, claims.Subject)

	login, err := s.auth.Login(s.ctx, dto.LoginRequest{Email: "owner@acme.test", Password: "secret123"})
	s.Require().NoError(err)
	s.Equal(reg.User.UserID, login.User.UserID)
	s.Equal(reg.User.CompanyID, login.User.CompanyID)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.register()

	_, err := s.auth.Register(s.ctx, dto.RegisterRequest{Email: "owner@acme.test", Password: "other123", Name: "Again", CompanyName: "Acme 2"})
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Len(s.store.companies, 1)
}

func (s *AuthServiceTestSuite) TestLogin_Failures() {
	reg := s.register()

	_, err := s.auth.Login(s.ctx, dto.LoginRequest{Email: "owner@acme.test", Password: "wrong"})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
	s.Equal("Invalid credentials", appMessage(err))

	_, err = s.auth.Login(s.ctx, dto.LoginRequest{Email: "nobody@acme.test", Password: "secret123"})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)

	u := s.store.users[reg.User.UserID]
	u.IsActive = false
	s.store.users[u.UserID] = u
	_, err = s.auth.Login(s.ctx, dto.LoginRequest{Email: "owner@acme.test", Password: "secret123"})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
	s.Equal("Invalid credentials or inactive account", appMessage(err))
}

func (s *AuthServiceTestSuite) TestLoginWithGoogle_NotConfigured() {
	_, err := s.auth.LoginWithGoogle(s.ctx, dto.GoogleLoginRequest{IDToken: "whatever"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestCompanyUsers() {
	reg := s.register()
	companyID, adminID := reg.User.CompanyID, reg.User.UserID

	viewer, err := s.users.CreateCompanyUser(s.ctx, companyID, adminID, dto.CreateUserRequest{
		Email: "viewer@acme.test", Password: "secret123", Name: "Viewer", Role: domain.RoleViewer,
	})
	s.Require().NoError(err)
	s.Equal(companyID, viewer.CompanyID)
	s.True(viewer.IsActive)

	_, err = s.users.CreateCompanyUser(s.ctx, companyID, adminID, dto.CreateUserRequest{
		Email: "VIEWER@acme.test", Password: "secret123", Name: "Dup", Role: domain.RoleUser,
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	members, err := s.users.ListCompanyUsers(s.ctx, companyID)
	s.Require().NoError(err)
	s.Len(members, 2)

	s.ErrorIs(s.users.SetUserStatus(s.ctx, companyID, adminID, adminID, false), apperrors.ErrValidation)
	s.Require().NoError(s.users.SetUserStatus(s.ctx, companyID, adminID, viewer.UserID, false))
	s.False(s.store.users[viewer.UserID].IsActive)

	// members of other companies are invisible
	s.ErrorIs(s.users.SetUserStatus(s.ctx, "company-x", "admin-x", viewer.UserID, true), apperrors.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestProfile() {
	reg := s.register()

	profile, err := s.users.GetProfile(s.ctx, reg.User.UserID)
	s.Require().NoError(err)
	s.Equal("Acme", profile.Company.Name)

	updated, err := s.users.UpdateProfile(s.ctx, reg.User.UserID, dto.UpdateProfileRequest{Name: "Renamed"})
	s.Require().NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Equal("owner@acme.test", updated.Email)
}

func appMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
