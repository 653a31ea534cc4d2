package middleware

import (
	"net/http"
	"strings"

	"salonbook/config"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the admin endpoints behind a single static bearer
// token from configuration. This is a thin gate, not an auth system; the admin
// panel itself lives outside this service.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AdminToken
		if token == "" {
			utils.JSONError(c, http.StatusServiceUnavailable, "Admin access is not configured", "")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			c.Abort()
			return
		}

		if strings.TrimPrefix(authHeader, "Bearer ") != token {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access", "")
			c.Abort()
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
