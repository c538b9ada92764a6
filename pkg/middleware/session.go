package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/pkg/utils"
)

// SessionMiddleware parses a bearer session token when one is present and
// exposes the traveler on the context. Requests without a token pass
// through untouched; handlers that need an identity check it themselves.
func SessionMiddleware() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseSessionToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		c.Set("traveler_id", claims.TravelerID)
		c.Set("is_organizer", claims.IsOrganizer)
		c.Next()
	}
}

// RequireOrganizer gates organizer-only endpoints.
func RequireOrganizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_organizer") {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: organizer access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
