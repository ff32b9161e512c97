package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jfeld/guestlist/internal/api/auth"
	"github.com/jfeld/guestlist/internal/api/handler"
	"github.com/jfeld/guestlist/internal/catalog"
	"github.com/jfeld/guestlist/internal/config"
	"github.com/jfeld/guestlist/internal/web"
)

// Server serves the public and admin HTTP surface.
type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	catalog      *catalog.Catalog
	authProvider *auth.Provider
}

// New creates the HTTP server with all routes configured.
func New(cfg *config.Config, cat *catalog.Catalog, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:          cfg,
		ginEngine:    gin.Default(),
		catalog:      cat,
		authProvider: auth.New(cat.DB()),
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.ginEngine.SetHTMLTemplate(templates)

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("guestlist_session", store))
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.setupSession()

	h := handler.New(s.catalog)

	s.ginEngine.GET("/", h.Index)
	s.ginEngine.GET("/login", s.authProvider.ShowLogin)
	s.ginEngine.POST("/login", s.authProvider.Login)
	s.ginEngine.GET("/logout", s.authProvider.Logout)
	s.ginEngine.GET("/registration/:id", h.RegistrationForm)
	s.ginEngine.POST("/registration/:id", h.SubmitRegistration)

	protected := s.ginEngine.Group("/")
	protected.Use(s.authProvider.RequireAdmin())

	protected.GET("/admin", h.Dashboard)
	protected.GET("/add_event", h.AddEventForm)
	protected.POST("/add_event", h.AddEvent)
	protected.GET("/edit_event/:id", h.EditEventForm)
	protected.POST("/edit_event/:id", h.EditEvent)
	protected.GET("/delete_event/:id", h.DeleteEvent)
	protected.GET("/registrations/:id", h.Registrations)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}

// Router exposes the configured gin engine, used by the tests.
func (s *Server) Router() *gin.Engine {
	return s.ginEngine
}
