package middleware

import (
	"net/http"

	"hotel/internal/access"
	"hotel/internal/domain"
	"hotel/internal/metrics"
	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles admits only callers whose role is in allowed. operation names
// the gated endpoint for metrics and logs.
func RequireRoles(operation string, allowed ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if !caller.IsAuthenticated() {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		if err := caller.Check(allowed...); err != nil {
			metrics.IncAccessDenied(operation)
			LoggerFrom(c).Warn().
				Str("operation", operation).
				Int64("user_id", caller.UserID).
				Str("role", string(caller.Role)).
				Msg("access denied")
			response.Abort(c, http.StatusForbidden, "ACCESS_DENIED", access.DeniedMessage)
			return
		}

		c.Next()
	}
}
