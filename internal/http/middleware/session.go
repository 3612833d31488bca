package middleware

import (
	"net/http"

	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests that carry no session cookie. Only
// create may mint a session, so every read endpoint runs behind this.
// The token is not validated against storage; possession is the whole
// credential.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(service.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("session_id", token)
		c.Next()
	}
}
