package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voxnote/study-api/internal/services/auth"
)

// Handler manages auth endpoints
type Handler struct {
	verifier auth.Verifier
}

// NewHandler creates a new auth handler
func NewHandler(verifier auth.Verifier) *Handler {
	return &Handler{verifier: verifier}
}

// Me returns current user info from the bearer token
// @Summary Get current user
// @Description Get current user information from the bearer credential
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.UserInfo
// @Failure 401 {object} map[string]string
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	// Set by the auth middleware
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	authClaims := claims.(*auth.Claims)
	c.JSON(http.StatusOK, auth.GetUserInfo(authClaims))
}

// AuthMiddleware validates bearer tokens and resolves the user identity
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := h.verifier.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.Sub)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// UserID extracts the authenticated user id set by AuthMiddleware
func UserID(c *gin.Context) string {
	return c.GetString("user_id")
}
