// Package catalog implements the event and registration lifecycle between the
// HTTP handlers and the store: upcoming filtering, event CRUD with the date
// reformatting on the write path, the cascading delete and the registration
// intake.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jfeld/guestlist/internal/database"
	"github.com/jfeld/guestlist/internal/dates"
	"github.com/samber/lo"
)

// ErrInvalidInput is returned when an event submission is missing required
// fields or carries an unparseable date. Handlers re-render the form on it.
var ErrInvalidInput = errors.New("invalid event input")

// Catalog is the service layer over the store.
type Catalog struct {
	db *database.Client
}

// New creates a new catalog backed by the given store.
func New(db *database.Client) *Catalog {
	return &Catalog{db: db}
}

// DB exposes the underlying store, used by the auth provider.
func (c *Catalog) DB() *database.Client {
	return c.db
}

// EventInput carries the form fields for creating or editing an event.
// Date is expected in the form input format (2006-01-02).
type EventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
}

// RegistrationInput carries the public registration form fields.
// Rank and Phone are optional.
type RegistrationInput struct {
	FirstName string
	LastName  string
	Rank      string
	Phone     string
}

// EventWithCount pairs an event with its registration count for the admin
// listing.
type EventWithCount struct {
	Event         database.Event
	Registrations int64
}

// UpcomingEvents returns all events dated today or later, sorted ascending by
// date. The stored date text orders lexicographically, so both the filter and
// the sort work on parsed dates. Events with an unparseable date are skipped.
func (c *Catalog) UpcomingEvents(ctx context.Context) ([]database.Event, error) {
	events, err := c.db.GetAllEvents(ctx)
	if err != nil {
		return nil, err
	}

	today := dates.Today()
	parsed := make(map[uint]time.Time, len(events))

	upcoming := lo.Filter(events, func(event database.Event, _ int) bool {
		day, err := dates.ParseStored(event.Date)
		if err != nil {
			log.Warn("skipping event with unparseable date", "id", event.ID, "date", event.Date)
			return false
		}
		parsed[event.ID] = day
		return dates.OnOrAfter(day, today)
	})

	sort.SliceStable(upcoming, func(i, j int) bool {
		return parsed[upcoming[i].ID].Before(parsed[upcoming[j].ID])
	})

	return upcoming, nil
}

// UpcomingEventsWithCounts returns the upcoming events annotated with their
// registration counts, in the same order as UpcomingEvents.
func (c *Catalog) UpcomingEventsWithCounts(ctx context.Context) ([]EventWithCount, error) {
	events, err := c.UpcomingEvents(ctx)
	if err != nil {
		return nil, err
	}

	ids := lo.Map(events, func(event database.Event, _ int) uint { return event.ID })
	counts, err := c.db.CountRegistrationsByEvent(ctx, ids)
	if err != nil {
		return nil, err
	}

	return lo.Map(events, func(event database.Event, _ int) EventWithCount {
		return EventWithCount{Event: event, Registrations: counts[event.ID]}
	}), nil
}

// GetEvent loads a single event. Returns database.ErrNotFound if the id does
// not resolve.
func (c *Catalog) GetEvent(ctx context.Context, id uint) (*database.Event, error) {
	return c.db.GetEventByID(ctx, id)
}

// CreateEvent validates the input, reformats the date to the stored format
// and persists a new event.
func (c *Catalog) CreateEvent(ctx context.Context, in EventInput) (*database.Event, error) {
	stored, err := validateEventInput(in)
	if err != nil {
		return nil, err
	}

	event := database.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        stored,
		Time:        strings.TrimSpace(in.Time),
	}
	if err := c.db.CreateEvent(ctx, &event); err != nil {
		return nil, err
	}

	log.Info("event created", "id", event.ID, "title", event.Title, "date", event.Date)
	return &event, nil
}

// UpdateEvent loads the event, overwrites all fields from the input and
// persists it, with the same date reformatting as CreateEvent.
func (c *Catalog) UpdateEvent(ctx context.Context, id uint, in EventInput) (*database.Event, error) {
	stored, err := validateEventInput(in)
	if err != nil {
		return nil, err
	}

	event, err := c.db.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = strings.TrimSpace(in.Title)
	event.Description = strings.TrimSpace(in.Description)
	event.Date = stored
	event.Time = strings.TrimSpace(in.Time)
	if err := c.db.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}

	log.Info("event updated", "id", event.ID, "title", event.Title, "date", event.Date)
	return event, nil
}

// DeleteEvent removes an event and all of its registrations atomically.
func (c *Catalog) DeleteEvent(ctx context.Context, id uint) error {
	if err := c.db.DeleteEventCascade(ctx, id); err != nil {
		return err
	}
	log.Info("event deleted", "id", id)
	return nil
}

// Register creates exactly one registration for the given event. The event
// must exist; beyond that the submission is accepted as-is, including empty
// optional fields and events that already took place.
func (c *Catalog) Register(ctx context.Context, eventID uint, in RegistrationInput) (*database.Registration, error) {
	if _, err := c.db.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	registration := database.Registration{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Rank:      strings.TrimSpace(in.Rank),
		Phone:     strings.TrimSpace(in.Phone),
		EventID:   eventID,
	}
	if err := c.db.CreateRegistration(ctx, &registration); err != nil {
		return nil, err
	}

	log.Info("registration created", "id", registration.ID, "event_id", eventID)
	return &registration, nil
}

// EventRegistrations returns an event together with all of its registrations
// for the admin view.
func (c *Catalog) EventRegistrations(ctx context.Context, eventID uint) (*database.Event, []database.Registration, error) {
	event, err := c.db.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	registrations, err := c.db.GetRegistrationsByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	return event, registrations, nil
}

// SweepOrphans deletes registrations whose event no longer exists.
func (c *Catalog) SweepOrphans(ctx context.Context) error {
	removed, err := c.db.DeleteOrphanedRegistrations(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Info("removed orphaned registrations", "count", removed)
	}
	return nil
}

func validateEventInput(in EventInput) (string, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return "", fmt.Errorf("%w: title, date and time are required", ErrInvalidInput)
	}
	stored, err := dates.InputToStored(strings.TrimSpace(in.Date))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return stored, nil
}
