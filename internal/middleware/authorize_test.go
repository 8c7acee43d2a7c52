package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routerWithRole(role domain.Role, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", func(c *gin.Context) {
		if role != "" {
			p := domain.Principal{UserID: "user-1", CompanyID: "co-1", Role: role}
			c.Request = c.Request.WithContext(middleware.WithPrincipal(c.Request.Context(), p))
		}
		c.Next()
	}, guard, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		allowed []domain.Role
		want    int
		message string
	}{
		{"no principal", "", []domain.Role{domain.RoleAccountant}, http.StatusUnauthorized, "Access denied. Please authenticate."},
		{"viewer denied", domain.RoleViewer, []domain.Role{domain.RoleAdmin, domain.RoleAccountant}, http.StatusForbidden,
			"Access denied. Required roles: ADMIN, ACCOUNTANT. Your role: VIEWER"},
		{"accountant allowed", domain.RoleAccountant, []domain.Role{domain.RoleAdmin, domain.RoleAccountant}, http.StatusNoContent, ""},
		{"admin always allowed", domain.RoleAdmin, []domain.Role{domain.RoleViewer}, http.StatusNoContent, ""},
		{"admin only route", domain.RoleUser, nil, http.StatusForbidden, "Access denied. Required roles: ADMIN. Your role: USER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := routerWithRole(tt.role, middleware.RequireRoles(tt.allowed...))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))

			assert.Equal(t, tt.want, w.Code)
			if tt.message != "" {
				var body dto.APIResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, tt.message, body.Message)
			}
		})
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewLimiter("2-M", "test", "")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/limited", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots", "test", "")
	assert.Error(t, err)
}

func TestStructuredLogging_EchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(middlewareTestLogger()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "8f14e45f-ceea-4e6b-9a5e-0b5c7a8b9c0d")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "8f14e45f-ceea-4e6b-9a5e-0b5c7a8b9c0d", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	bad := httptest.NewRequest(http.MethodGet, "/ping", nil)
	bad.Header.Set("X-Request-ID", "not a uuid")
	r.ServeHTTP(w, bad)
	assert.NotEqual(t, "not a uuid", w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}
