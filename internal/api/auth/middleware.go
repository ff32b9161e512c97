package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jfeld/guestlist/internal/api/models"
)

// RequireAdmin guards the admin routes. A missing or non-admin session is
// redirected to the login page instead of answering with a bare 401 body.
// On success the principal is placed on the gin context for the handlers.
func (p *Provider) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionUserID)
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user := &models.User{
			Username: getSessionString(session, sessionUserName),
			IsAdmin:  getSessionBool(session, sessionIsAdmin),
		}
		if id, ok := userID.(uint); ok {
			user.ID = id
		}

		if !user.IsAdmin {
			// drop the session so the login page doesn't bounce straight
			// back here
			session.Clear()
			if err := session.Save(); err != nil {
				log.Error("failed to clear session", "error", err)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func getSessionString(session sessions.Session, key string) string {
	if v, ok := session.Get(key).(string); ok {
		return v
	}
	return ""
}

func getSessionBool(session sessions.Session, key string) bool {
	if v, ok := session.Get(key).(bool); ok {
		return v
	}
	return false
}
