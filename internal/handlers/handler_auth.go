package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler serves sign-up, sign-in, the caller's profile and company user administration.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	userService portssvc.UserSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{authService: as, userService: us}
}

// registerAuthRoutes registers /auth. register, login and google are public and
// rate limited; the rest require a token, and user administration requires ADMIN.
func registerAuthRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade, limit, authenticate gin.HandlerFunc) {
	h := newAuthHandler(as, us)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limit, h.register)
		auth.POST("/login", limit, h.login)
		auth.POST("/google", limit, h.loginWithGoogle)
	}

	me := auth.Group("", authenticate)
	{
		me.GET("/me", h.me)
		me.PUT("/profile", h.updateProfile)
	}

	users := me.Group("/users", middleware.RequireRoles())
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.PUT("/:id/status", h.updateUserStatus)
	}
}

// register godoc
// @Summary Register a company
// @Description Creates a company together with its first user, who becomes ADMIN, and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or user already exists"
// @Failure 429 {object} dto.APIResponse "Too many requests"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	logger.Info("User registered", slog.String("user_id", resp.User.UserID), slog.String("company_id", resp.User.CompanyID))
	respondOK(c, http.StatusCreated, "User registered successfully", resp)
}

// login godoc
// @Summary Log in
// @Description Exchanges email and password of an active user for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Invalid credentials or inactive account"
// @Failure 429 {object} dto.APIResponse "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", resp)
}

// loginWithGoogle godoc
// @Summary Log in with Google
// @Description Accepts a Google ID token or an authorization code and signs in the matching active user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Google credential"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.APIResponse "Google credential rejected or no matching user"
// @Failure 404 {object} dto.APIResponse "Google sign-in is not configured"
// @Router /auth/google [post]
func (h *authHandler) loginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authService.LoginWithGoogle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", resp)
}

// me godoc
// @Summary Current user
// @Description Returns the authenticated user with their company
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{"user": user})
}

// updateProfile godoc
// @Summary Update profile
// @Description Changes the caller's display name and/or email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Validation error or email already in use"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/profile [put]
func (h *authHandler) updateProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), p.UserID, req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	respondOK(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

// listUsers godoc
// @Summary List company users
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.User}
// @Failure 403 {object} dto.APIResponse "Requires ADMIN"
// @Security BearerAuth
// @Router /auth/users [get]
func (h *authHandler) listUsers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	users, err := h.userService.ListCompanyUsers(c.Request.Context(), p.CompanyID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	respondOK(c, http.StatusOK, "", users)
}

// createUser godoc
// @Summary Add a company user
// @Description Creates a user with the given role in the caller's company
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "New user"
// @Success 201 {object} dto.APIResponse{data=domain.User}
// @Failure 400 {object} dto.APIResponse "Validation error or user already exists"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN"
// @Security BearerAuth
// @Router /auth/users [post]
func (h *authHandler) createUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateCompanyUser(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	respondOK(c, http.StatusCreated, "User created successfully", user)
}

// updateUserStatus godoc
// @Summary Activate or deactivate a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Cannot deactivate own account"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Security BearerAuth
// @Router /auth/users/{id}/status [put]
func (h *authHandler) updateUserStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := c.Param("id")
	if err := h.userService.SetUserStatus(c.Request.Context(), p.CompanyID, p.UserID, userID, *req.IsActive); err != nil {
		respondError(c, err, "User not found")
		return
	}

	respondOK(c, http.StatusOK, "User status updated successfully", gin.H{"id": userID, "isActive": *req.IsActive})
}
