package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todoly-be/internal/jwt"
)

// UserIDKey is the context key under which the verified caller's user ID
// is stored for downstream handlers
const UserIDKey = "user_id"

// AuthMiddleware verifies the bearer token on protected routes. It checks
// the signature, expiry, issuer and audience, and puts the token subject
// into the context. Any failure short-circuits the request with 401.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization header",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header format",
			})
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
