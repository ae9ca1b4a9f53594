package auth

import (
	"net/http"

	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * 60 * 60

type AuthController struct {
	AuthService AuthServicePort
	Sessions    *middlewares.SessionStore
	Secret      string
}

// Login accepts the admin UI form (or JSON) and establishes a session.
// Failures come back as 401 JSON instead of the old inline alert script.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := ac.AuthService.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	sid := ac.Sessions.Create(admin.AdminID, admin.Name, admin.Email)
	signed, err := middlewares.SignSessionID(sid, ac.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, signed, sessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard.html")
}

// Logout destroys the session unconditionally and sends the browser home.
func (ac *AuthController) Logout(c *gin.Context) {
	if value, err := c.Cookie(middlewares.SessionCookie); err == nil && value != "" {
		if sid, err := middlewares.ParseSessionID(value, ac.Secret); err == nil {
			ac.Sessions.Delete(sid)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Me returns the identity behind the current session.
func (ac *AuthController) Me(c *gin.Context) {
	session := c.MustGet("admin").(middlewares.Session)
	c.JSON(http.StatusOK, session)
}
