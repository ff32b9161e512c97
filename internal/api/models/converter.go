package models

import (
	"github.com/jfeld/guestlist/internal/catalog"
	"github.com/jfeld/guestlist/internal/database"
	"github.com/jfeld/guestlist/internal/dates"
	"github.com/mergestat/timediff"
	"github.com/samber/lo"
)

// ToEventView converts a stored event to its template shape.
func ToEventView(event database.Event) EventView {
	view := EventView{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
	}

	if day, err := dates.ParseStored(event.Date); err == nil {
		view.DateInput = dates.FormatInput(day)
		view.Relative = timediff.TimeDiff(day)
	}
	return view
}

// ToEventViews converts a slice of stored events.
func ToEventViews(events []database.Event) []EventView {
	return lo.Map(events, func(event database.Event, _ int) EventView {
		return ToEventView(event)
	})
}

// ToCountedEventViews converts count-annotated events for the admin listing.
func ToCountedEventViews(events []catalog.EventWithCount) []EventView {
	return lo.Map(events, func(ec catalog.EventWithCount, _ int) EventView {
		view := ToEventView(ec.Event)
		view.Registrations = ec.Registrations
		return view
	})
}

// ToRegistrationViews converts stored registrations for the admin listing.
func ToRegistrationViews(registrations []database.Registration) []RegistrationView {
	return lo.Map(registrations, func(r database.Registration, _ int) RegistrationView {
		return RegistrationView{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Rank:      r.Rank,
			Phone:     r.Phone,
		}
	})
}
