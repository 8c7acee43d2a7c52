package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records one analytics event per successful authenticated request.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			return
		}

		// "/api/v1/sales/invoices/:id/status" -> "POST api_v1_sales_invoices_:id_status"
		route := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if route == "" {
			return
		}

		posthogClient.Enqueue(principal.UserID, principal.CompanyID, c.Request.Method+" "+route, map[string]any{
			"status_code": c.Writer.Status(),
			"role":        string(principal.Role),
		})
	}
}
