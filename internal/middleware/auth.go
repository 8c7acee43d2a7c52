package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalResolver loads the user a token subject refers to.
type PrincipalResolver interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthMiddleware validates the bearer token, loads the user it names and
// attaches an active principal to the request context.
func AuthMiddleware(jwtSecret string, users PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthenticated(c, "Access denied. No token provided.", "unauthenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			logger.Warn("Authorization header format invalid")
			abortUnauthenticated(c, "Authorization header format must be Bearer {token}", "unauthenticated")
			return
		}

		claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(parts[1]), jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Token is invalid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			abortUnauthenticated(c, msg, "invalid_token")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve token subject", slog.String("user_id", claims.Subject), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse("Internal server error", "internal_error"))
			return
		}
		if user == nil || !user.IsActive {
			logger.Warn("Token subject missing or inactive", slog.String("user_id", claims.Subject))
			abortUnauthenticated(c, "Token is invalid or user is inactive", "unauthenticated")
			return
		}

		principal := user.Principal()
		enrichedLogger := logger.With(
			slog.String("user_id", principal.UserID),
			slog.String("company_id", principal.CompanyID),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, message, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse(message, code))
}
