package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Registration is one person's intent to attend an event. It is created by
// anonymous public submission and only ever removed as a cascade side effect
// of deleting its event, or by the orphan sweep. EventID references an Event
// by id without an enforced foreign key.
type Registration struct {
	gorm.Model
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Rank      string
	Phone     string
	EventID   uint `gorm:"index;not null"`
}

func (c *Client) CreateRegistration(ctx context.Context, registration *Registration) error {
	if err := c.db.WithContext(ctx).Create(registration).Error; err != nil {
		log.Error("failed to create registration", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]Registration, error) {
	var registrations []Registration
	if err := c.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&registrations).Error; err != nil {
		log.Error("failed to get registrations for event", "event_id", eventID, "error", err)
		return nil, err
	}
	return registrations, nil
}

// CountRegistrationsByEvent returns the registration count per event id for
// the given events, using a single grouped query.
func (c *Client) CountRegistrationsByEvent(ctx context.Context, eventIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		EventID uint
		Total   int64
	}
	err := c.db.WithContext(ctx).
		Model(&Registration{}).
		Select("event_id, count(*) as total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		log.Error("failed to count registrations", "error", err)
		return nil, err
	}

	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}

// DeleteOrphanedRegistrations removes registrations whose event no longer
// exists and returns how many were deleted. The store does not enforce the
// event reference, so the sweep keeps the invariant honest.
func (c *Client) DeleteOrphanedRegistrations(ctx context.Context) (int64, error) {
	result := c.db.WithContext(ctx).
		Where("event_id NOT IN (?)", c.db.Model(&Event{}).Select("id")).
		Delete(&Registration{})
	if result.Error != nil {
		log.Error("failed to delete orphaned registrations", "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
