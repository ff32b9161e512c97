package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jfeld/guestlist/internal/api/models"
	"github.com/jfeld/guestlist/internal/catalog"
	"github.com/jfeld/guestlist/internal/database"
)

// Handler serves the public routes: the upcoming event listing and the
// registration form.
type Handler struct {
	catalog *catalog.Catalog
}

// New creates a new handler.
func New(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

// Index lists the upcoming events on the public start page.
func (h *Handler) Index(c *gin.Context) {
	events, err := h.catalog.UpcomingEvents(c.Request.Context())
	if err != nil {
		log.Error("failed to list upcoming events", "error", err)
		events = nil
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Events": models.ToEventViews(events),
	})
}

// RegistrationForm shows an event's details with the registration form.
func (h *Handler) RegistrationForm(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	event, err := h.catalog.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c)
		return
	}

	c.HTML(http.StatusOK, "registration.html", gin.H{
		"Event": models.ToEventView(*event),
	})
}

// SubmitRegistration creates a registration for the event and redirects to
// the public index.
func (h *Handler) SubmitRegistration(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	in := catalog.RegistrationInput{
		FirstName: c.PostForm("name"),
		LastName:  c.PostForm("lastname"),
		Rank:      c.PostForm("rank"),
		Phone:     c.PostForm("phone"),
	}
	if _, err := h.catalog.Register(c.Request.Context(), id, in); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func parseUintParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Message": "The page you are looking for does not exist.",
	})
}

func internalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message": "Something went wrong, please try again.",
	})
}
