package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

// RequireRoles admits principals whose role is in roles. ADMIN is always admitted,
// so RequireRoles() with no arguments restricts a route to ADMIN.
// It must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortUnauthenticated(c, "Access denied. Please authenticate.", "unauthenticated")
			return
		}

		if principal.Allows(roles...) {
			c.Next()
			return
		}

		GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted",
			slog.String("role", string(principal.Role)),
			slog.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse(ForbiddenMessage(principal.Role, roles), "forbidden"))
	}
}

// ForbiddenMessage names the roles a route accepts and the caller's role.
func ForbiddenMessage(role domain.Role, allowed []domain.Role) string {
	names := make([]string, 0, len(allowed)+1)
	if len(allowed) == 0 {
		names = append(names, string(domain.RoleAdmin))
	}
	for _, r := range allowed {
		names = append(names, string(r))
	}
	return fmt.Sprintf("Access denied. Required roles: %s. Your role: %s", strings.Join(names, ", "), role)
}
