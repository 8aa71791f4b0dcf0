package repository

import (
	"crestora-backend/internal/database/models"

	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByEventID retrieves an event by its public event identifier
func (r *EventRepository) GetByEventID(eventID string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "event_id = ?", eventID).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves events with optional type and status filters and pagination
func (r *EventRepository) GetAll(eventType *models.EventType, status *models.EventStatus, limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{})
	if eventType != nil {
		query = query.Where("type = ?", *eventType)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("event_id ASC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Update updates an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete deletes an event with all its rounds, scores and weights
func (r *EventRepository) Delete(eventID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var roundIDs []string
		if err := tx.Model(&models.Round{}).Where("event_id = ?", eventID).Pluck("id", &roundIDs).Error; err != nil {
			return err
		}
		if len(roundIDs) > 0 {
			if err := tx.Delete(&models.RoundWeight{}, "round_id IN ?", roundIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.TeamScore{}, "event_id = ?", eventID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Round{}, "event_id = ?", eventID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "event_id = ?", eventID).Error
	})
}

// CountByType returns the number of events of the given type
func (r *EventRepository) CountByType(eventType models.EventType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("type = ?", eventType).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of events with the given status
func (r *EventRepository) CountByStatus(status models.EventStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountAll returns the total number of events
func (r *EventRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
