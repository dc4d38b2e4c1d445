package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"hotel-reservation-backend/services"
)

const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

// RequireAuth verifies the Authorization bearer token and attaches the decoded
// claims to the request context. Requests without a valid token never reach
// the downstream handler.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims := &services.AuthClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin gates handlers behind the role flag set by RequireAuth. A valid
// token without the flag yields 403, not 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated account id attached by RequireAuth.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

// IsAdmin returns the role flag attached by RequireAuth.
func IsAdmin(c *gin.Context) bool {
	if v, ok := c.Get(ContextIsAdmin); ok {
		if flag, ok2 := v.(bool); ok2 {
			return flag
		}
	}
	return false
}
