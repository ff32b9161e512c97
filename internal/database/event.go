package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Event represents an event visitors can register for.
// Date is kept in the stored text format (02.01.2006); chronological
// comparisons happen in the catalog layer after parsing, because ordering the
// stored text would be lexicographic.
type Event struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	Date        string `gorm:"not null"`
	Time        string `gorm:"not null"`
}

func (c *Client) CreateEvent(ctx context.Context, event *Event) error {
	if err := c.db.WithContext(ctx).Create(event).Error; err != nil {
		log.Error("failed to create event", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	var event Event
	if err := c.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get event by ID", "error", err)
		}
		return nil, err
	}
	return &event, nil
}

func (c *Client) GetAllEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.db.WithContext(ctx).Find(&events).Error; err != nil {
		log.Error("failed to get all events", "error", err)
		return nil, err
	}
	return events, nil
}

func (c *Client) UpdateEvent(ctx context.Context, event *Event) error {
	if err := c.db.WithContext(ctx).Save(event).Error; err != nil {
		log.Error("failed to update event", "error", err)
		return err
	}
	return nil
}

// DeleteEventCascade removes an event together with all of its registrations
// in a single transaction, so a failure between the two deletes can never
// leave orphaned rows behind.
func (c *Client) DeleteEventCascade(ctx context.Context, id uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to delete event", "id", id, "error", err)
		}
		return err
	}
	return nil
}
