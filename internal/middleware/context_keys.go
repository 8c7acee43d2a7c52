package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for values stored in the request context.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	principalCtxKey = contextKey("principal")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It falls back to the default logger outside a request.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// WithPrincipal stores the authenticated principal in ctx.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromCtx returns the principal set by AuthMiddleware.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(domain.Principal)
	return p, ok
}

// GetPrincipalFromContext retrieves the authenticated principal for a gin request.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	return PrincipalFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user ID from the gin request.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p, ok := GetPrincipalFromContext(c)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}
