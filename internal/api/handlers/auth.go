package handlers

import (
	"errors"
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles admin login. Attempts are rate-limited per client IP before
// the password check so wrong passwords count toward the cap.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"detail": "Password is required."})
		return
	}

	token, err := h.authService.Login(c.ClientIP(), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrRateLimited) {
			c.JSON(429, gin.H{"detail": "Too many login attempts. Please try again later."})
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"detail": "Wrong password"})
			return
		}
		c.JSON(500, gin.H{"detail": "Failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(services.SessionCookieName, token, int(services.SessionMaxAge.Seconds()), "/", "", true, true)

	logAudit("login", "session", "", c.ClientIP(), c.GetHeader("User-Agent"))

	c.JSON(200, gin.H{"success": true})
}

// Logout revokes the session referenced by the cookie, if any, and clears
// the cookie. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(services.SessionCookieName); err == nil && token != "" {
		h.authService.Logout(token)
		logAudit("logout", "session", "", c.ClientIP(), c.GetHeader("User-Agent"))
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(services.SessionCookieName, "", -1, "/", "", true, true)

	c.JSON(200, gin.H{"success": true})
}
