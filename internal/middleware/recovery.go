package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the standard 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered",
			slog.String("panic", fmt.Sprint(recovered)))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse("Internal server error", "internal_error"))
	})
}

// SecurityHeaders sets conservative browser security headers on every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cross-Origin-Resource-Policy", "same-site")
		c.Next()
	}
}
