package delivery

import (
	"net/http"
	"strings"

	authdomain "task-manager-api/internal/auth/domain"
	"task-manager-api/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", token)
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware
func CurrentUser(c *gin.Context) *authdomain.User {
	return c.MustGet("user").(*authdomain.User)
}

// CurrentToken returns the raw bearer token attached by AuthMiddleware
func CurrentToken(c *gin.Context) string {
	return c.MustGet("token").(string)
}
