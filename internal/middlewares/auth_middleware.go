package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vetclinic/internal/services"
)

// UsernameKey is where Authenticate stores the token subject.
const UsernameKey = "username"

// Authenticate requires a valid "Bearer <token>" Authorization header
// and stores the resolved username in the request context.
func Authenticate(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid Authorization format"})
			return
		}

		username, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
