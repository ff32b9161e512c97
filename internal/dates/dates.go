// Package dates owns the two textual date representations used by guestlist:
// the form input format (2006-01-02) and the stored/display format
// (02.01.2006). All parsing and reformatting goes through here so the layouts
// appear in exactly one place.
package dates

import (
	"fmt"
	"time"
)

const (
	// InputLayout is the format used by the html date input.
	InputLayout = "2006-01-02"
	// StoredLayout is the format events are persisted and displayed in.
	StoredLayout = "02.01.2006"
)

// ParseInput parses a date in the form input format.
func ParseInput(s string) (time.Time, error) {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseStored parses a date in the stored format.
func ParseStored(s string) (time.Time, error) {
	t, err := time.Parse(StoredLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return t, nil
}

// FormatStored renders a date in the stored format.
func FormatStored(t time.Time) string {
	return t.Format(StoredLayout)
}

// FormatInput renders a date in the form input format.
func FormatInput(t time.Time) string {
	return t.Format(InputLayout)
}

// InputToStored converts a form input date to the stored format.
// This is the write-path conversion for event create and edit.
func InputToStored(s string) (string, error) {
	t, err := ParseInput(s)
	if err != nil {
		return "", err
	}
	return FormatStored(t), nil
}

// StoredToInput converts a stored date back to the form input format,
// used to prefill the edit form.
func StoredToInput(s string) (string, error) {
	t, err := ParseStored(s)
	if err != nil {
		return "", err
	}
	return FormatInput(t), nil
}

// Today returns the current day at midnight UTC, the reference point for
// deciding whether an event is upcoming.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// OnOrAfter reports whether day t is the same day as ref or later.
func OnOrAfter(t, ref time.Time) bool {
	return !t.Before(ref)
}
