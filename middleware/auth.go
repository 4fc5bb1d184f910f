// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	userRepo "booktrack/database/repository/user"
	"booktrack/models"
	"booktrack/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware validates the bearer token, loads the account behind it and
// attaches the caller's Identity to the request context. Blocked accounts
// are rejected here, before any handler runs.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		u, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if u.Blocked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account blocked"})
			return
		}

		c.Set(identityKey, models.Identity{ID: u.ID, Role: u.Role, Name: u.Name})
		c.Next()
	}
}

// Identity returns the authenticated caller set by AuthMiddleware.
func Identity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	ident, ok := v.(models.Identity)
	return ident, ok
}
