package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanduks/driver_logistics_app/internal/platform/config"
)

// AdminGuard authenticates back-office requests against the static admin
// credentials from the environment. It compares in constant time and rejects
// everything when the credentials are unconfigured.
func AdminGuard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}

		email := c.GetHeader("X-Admin-Email")
		password := c.GetHeader("X-Admin-Password")

		emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(cfg.AdminEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
		if !emailOK || !passwordOK {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Next()
	}
}
