package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthRequired gates a route group on a valid admin session. API clients get
// a 401 JSON body rather than the browser redirect the old backend issued.
func AuthRequired(sessions *SessionStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookie)
		if err != nil || value == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
			c.Abort()
			return
		}

		sid, err := ParseSessionID(value, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		session, ok := sessions.Get(sid)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("admin", session)
		c.Next()
	}
}
