package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/cmd/docs"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/pkg/database"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// db may be nil, in which case /health reports the storage as unhealthy.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db database.Pinger,
) error {
	useJSONFieldNames()

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse("API endpoint not found", "not_found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse("Method not allowed", "method_not_allowed"))
	})

	registerHealthRoutes(r, cfg, db)

	authLimiter, err := middleware.NewLimiter(cfg.AuthRateLimit, "auth", cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create auth rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1")

	// Register public authentication routes; the authenticated ones share the group
	authenticate := middleware.AuthMiddleware(cfg.JWTSecret, services.User)
	registerAuthRoutes(v1, services.Auth, services.User, middleware.RateLimit(authLimiter), authenticate)

	// Business resources: any role may read, ADMIN and ACCOUNTANT may write
	setupBusinessRoutes(v1.Group("", authenticate), services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupBusinessRoutes delegates route registration to the per-domain handlers.
func setupBusinessRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	writers := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant)

	registerFinancialRoutes(rg, writers, services.Account, services.Category, services.Ledger)
	registerCheckRoutes(rg, writers, services.Check)
	registerPayrollRoutes(rg, writers, services.Payroll)
	registerSalesRoutes(rg, writers, services.Sales)
	registerInventoryRoutes(rg, writers, services.Inventory)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

type healthHandler struct {
	db        database.Pinger
	dbURL     string
	startedAt time.Time
}

func registerHealthRoutes(r *gin.Engine, cfg *config.Config, db database.Pinger) {
	h := &healthHandler{db: db, dbURL: cfg.DatabaseURL, startedAt: time.Now()}
	r.GET("/health", h.health)
}

// health godoc
// @Summary Service health
// @Description Reports process uptime and whether the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startedAt).Seconds(),
		Database:  database.CheckHealth(c.Request.Context(), h.db, h.dbURL),
	})
}
