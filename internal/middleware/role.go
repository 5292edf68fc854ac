package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EstateDesk/estate_management_app/internal/core/domain"
)

// RequireRole returns a middleware that permits the request only when the
// authenticated subject's role exactly matches the required one. There is no
// role hierarchy: an admin token does not open owner/realtor/customer routes.
// AuthMiddleware must have run first.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if !ok || role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
