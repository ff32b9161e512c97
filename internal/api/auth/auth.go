// Package auth implements the credential login flow and the session-backed
// admin gate.
package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jfeld/guestlist/internal/database"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionUserID   = "user_id"
	sessionUserName = "user_name"
	sessionIsAdmin  = "user_is_admin"
)

// Provider authenticates admins against the user table.
type Provider struct {
	db *database.Client
}

// New creates a new auth provider.
func New(db *database.Client) *Provider {
	return &Provider{db: db}
}

// ShowLogin renders the login form, or redirects straight to the admin view
// when the session is already established.
func (p *Provider) ShowLogin(c *gin.Context) {
	if isAuthenticated(sessions.Default(c)) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login checks the submitted credentials. On success the session carries the
// user's id, name and admin claim and the request is redirected to /admin.
// On failure the login form is re-rendered with a message and no session is
// established.
func (p *Provider) Login(c *gin.Context) {
	session := sessions.Default(c)
	if isAuthenticated(session) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	username := c.PostForm("login")
	password := c.PostForm("password")

	user, err := p.db.GetUserByUsername(c.Request.Context(), username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Debug("login rejected", "username", username)
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid username or password.",
		})
		return
	}

	session.Set(sessionUserID, user.ID)
	session.Set(sessionUserName, user.Username)
	session.Set(sessionIsAdmin, user.IsAdmin)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Something went wrong, please try again.",
		})
		return
	}

	log.Info("user logged in", "username", user.Username)
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session and redirects to the public index.
func (p *Provider) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func isAuthenticated(session sessions.Session) bool {
	return session.Get(sessionUserID) != nil
}
