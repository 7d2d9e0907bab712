package database

import (
	"errors"

	"github.com/blockwavenation/gtn-backend/models"
	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// FindAll returns all events, newest first
func (r *EventRepo) FindAll() ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Order("created_at DESC, id DESC").Find(&events).Error
	return events, err
}

// FindByID returns an event by its ID, or nil when no row exists
func (r *EventRepo) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Add inserts a new event into the database
func (r *EventRepo) Add(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update replaces the mutable fields of an existing event
func (r *EventRepo) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event by id and reports how many rows were affected
func (r *EventRepo) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Event{}, id)
	return result.RowsAffected, result.Error
}
