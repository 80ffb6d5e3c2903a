package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/driveshare/car-rental-backend/auth"
	"github.com/driveshare/car-rental-backend/user"
)

// SessionAuth resolves the bearer token to a user and stores the resulting
// auth.Context under "actor" for the handlers.
func SessionAuth(users user.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		u, err := users.GetBySessionToken(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("actor", auth.Context{
			UserID: u.ID,
			Role:   u.Role,
		})
	}
}

func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorFrom(c).Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func actorFrom(c *gin.Context) auth.Context {
	return c.MustGet("actor").(auth.Context)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}

	return ""
}
