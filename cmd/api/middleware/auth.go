package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"summary-share/cmd/api/auth"
)

const userIDKey = "userID"

// CurrentUserID returns the authenticated user's id, zero when anonymous.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// RequireAuth rejects requests without a valid bearer access token.
func RequireAuth(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or malformed authorization header"})
			return
		}

		userID, err := jwt.Parse(token, auth.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the viewer when a bearer token is present but lets
// anonymous requests through. A token that is present but invalid is still
// rejected.
func OptionalAuth(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		userID, err := jwt.Parse(token, auth.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
