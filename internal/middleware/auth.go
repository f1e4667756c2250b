package middleware

import (
	"net/http"
	"strings"

	"keyblogger/internal/auth"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "username"

// AuthRequired verifies the bearer token and sets the principal's
// username to the context. Requests without a valid token get a 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		username, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(CurrentUserKey, username)
		c.Next()
	}
}

// CurrentUser returns the principal set by AuthRequired.
func CurrentUser(c *gin.Context) (string, bool) {
	username, ok := c.Get(CurrentUserKey)
	if !ok {
		return "", false
	}
	return username.(string), true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Legacy clients send the token as a query param
	return c.Query("_token")
}
