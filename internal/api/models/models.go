package models

// User is the request-scoped principal derived from the session during
// RequireAdmin. Handlers read it from the gin context instead of touching the
// session themselves.
type User struct {
	ID       uint
	Username string
	IsAdmin  bool
}

// EventView is the template-facing shape of an event. Date carries the stored
// display format (02.01.2006), DateInput the form input format (2006-01-02)
// for prefilling the edit form.
type EventView struct {
	ID            uint
	Title         string
	Description   string
	Date          string
	DateInput     string
	Time          string
	Relative      string
	Registrations int64
}

// RegistrationView is the template-facing shape of a registration.
type RegistrationView struct {
	FirstName string
	LastName  string
	Rank      string
	Phone     string
}
