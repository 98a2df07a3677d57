package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
)

// AuthMiddleware creates a Gin middleware handler that authenticates the
// request via the bearer-token strategy and stores the resolved user in the
// request context.
func AuthMiddleware(bearer portssvc.AuthStrategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := bearer.Authenticate(c.Request.Context(), portssvc.Credentials{BearerToken: parts[1]})
		if err != nil {
			logger.Warn("Bearer authentication failed", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctx = context.WithValue(ctx, userRoleKey, string(user.Role))

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx = WithLogger(ctx, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
