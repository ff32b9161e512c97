package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jfeld/guestlist/internal/api/models"
	"github.com/jfeld/guestlist/internal/catalog"
	"github.com/jfeld/guestlist/internal/database"
)

// Dashboard lists the upcoming events with their registration counts.
func (h *Handler) Dashboard(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	events, err := h.catalog.UpcomingEventsWithCounts(c.Request.Context())
	if err != nil {
		log.Error("failed to list events for dashboard", "error", err)
		events = nil
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"User":   user,
		"Events": models.ToCountedEventViews(events),
	})
}

// AddEventForm shows the empty event creation form.
func (h *Handler) AddEventForm(c *gin.Context) {
	c.HTML(http.StatusOK, "event_form.html", gin.H{
		"Action": "/add_event",
		"Event":  models.EventView{},
	})
}

// AddEvent creates an event from the submitted form. Missing or invalid
// fields re-render the form with the submitted values.
func (h *Handler) AddEvent(c *gin.Context) {
	in := eventInputFromForm(c)

	if _, err := h.catalog.CreateEvent(c.Request.Context(), in); err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			c.HTML(http.StatusOK, "event_form.html", gin.H{
				"Action": "/add_event",
				"Event": models.EventView{
					Title:       in.Title,
					Description: in.Description,
					DateInput:   in.Date,
					Time:        in.Time,
				},
			})
			return
		}
		internalError(c)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// EditEventForm shows the event form prefilled with the stored values.
func (h *Handler) EditEventForm(c *gin.Context) {
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

	c.HTML(http.StatusOK, "event_form.html", gin.H{
		"Action": "/edit_event/" + c.Param("id"),
		"Event":  models.ToEventView(*event),
	})
}

// EditEvent overwrites an event with the submitted form values.
func (h *Handler) EditEvent(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	in := eventInputFromForm(c)

	if _, err := h.catalog.UpdateEvent(c.Request.Context(), id, in); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			c.HTML(http.StatusOK, "event_form.html", gin.H{
				"Action": "/edit_event/" + c.Param("id"),
				"Event": models.EventView{
					ID:          id,
					Title:       in.Title,
					Description: in.Description,
					DateInput:   in.Date,
					Time:        in.Time,
				},
			})
		case errors.Is(err, database.ErrNotFound):
			notFound(c)
		default:
			internalError(c)
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// DeleteEvent removes an event and its registrations.
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	if err := h.catalog.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Registrations lists an event's registrations.
func (h *Handler) Registrations(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	event, registrations, err := h.catalog.EventRegistrations(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c)
		return
	}

	c.HTML(http.StatusOK, "registrations.html", gin.H{
		"User":          user,
		"Event":         models.ToEventView(*event),
		"Registrations": models.ToRegistrationViews(registrations),
	})
}

func eventInputFromForm(c *gin.Context) catalog.EventInput {
	return catalog.EventInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
		Time:        c.PostForm("time"),
	}
}
