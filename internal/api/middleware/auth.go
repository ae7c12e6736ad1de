package middleware

import (
	"errors"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates admin routes on the session cookie. A missing or
// unknown token and a stale token both map to 401, with distinct messages
// so the admin UI can tell them apart.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(services.SessionCookieName)
		if err != nil || token == "" {
			c.JSON(401, gin.H{"detail": "Unauthorized"})
			c.Abort()
			return
		}

		if err := authService.ValidateSession(token); err != nil {
			if errors.Is(err, services.ErrSessionExpired) {
				c.JSON(401, gin.H{"detail": "Session expired"})
			} else {
				c.JSON(401, gin.H{"detail": "Unauthorized"})
			}
			c.Abort()
			return
		}

		c.Set("session_token", token)

		c.Next()
	}
}
