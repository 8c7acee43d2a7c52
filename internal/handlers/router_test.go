package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/handlers"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "handler-test-secret"
	testCompany = "company-1"
)

// testAPI is a router wired with mocked services.
type testAPI struct {
	router    *gin.Engine
	auth      *MockAuthService
	users     *MockUserService
	accounts  *MockAccountService
	ledger    *MockLedgerService
	inventory *MockInventoryService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		router:    gin.New(),
		auth:      new(MockAuthService),
		users:     new(MockUserService),
		accounts:  new(MockAccountService),
		ledger:    new(MockLedgerService),
		inventory: new(MockInventoryService),
	}
	cfg := &config.Config{
		JWTSecret:         testSecret,
		JWTExpiryDuration: time.Hour,
		AuthRateLimit:     "100-M",
		IsProduction:      true,
	}
	container := &portssvc.ServiceContainer{
		Auth:      api.auth,
		User:      api.users,
		Account:   api.accounts,
		Ledger:    api.ledger,
		Inventory: api.inventory,
	}
	require.NoError(t, handlers.RegisterRoutes(api.router, cfg, container, nil))
	return api
}

// tokenFor signs a token for userID and makes the auth gate resolve it to an
// active member of testCompany with the given role.
func (api *testAPI) tokenFor(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	api.users.On("GetUserByID", mock.Anything, userID).Return(&domain.User{
		UserID:    userID,
		Email:     userID + "@example.com",
		Name:      "Test " + string(role),
		Role:      role,
		CompanyID: testCompany,
		IsActive:  true,
	}, nil).Maybe()

	tok, err := utils.GenerateJWT(userID, userID+"@example.com", testSecret, time.Hour, "test")
	require.NoError(t, err)
	return tok
}

func (api *testAPI) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	var envelope dto.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestRouter_UnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	w, body := api.do(t, http.MethodGet, "/api/v1/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "API endpoint not found", body.Message)
}

func TestRouter_WrongMethod(t *testing.T) {
	api := newTestAPI(t)

	w, body := api.do(t, http.MethodDelete, "/health", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method not allowed", body.Message)
}

func TestHealth_WithoutDatabase(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "unhealthy", health.Database.Status)
	assert.False(t, health.Timestamp.IsZero())
	assert.GreaterOrEqual(t, health.Uptime, 0.0)
}

func TestRouter_SwaggerHiddenInProduction(t *testing.T) {
	api := newTestAPI(t)

	w, _ := api.do(t, http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
