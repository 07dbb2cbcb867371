package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly must run after JWTAuthMiddleware; it checks the role claim set
// there.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
