package repository

import (
	"context"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventTypeRepository handles database operations for event types
type EventTypeRepository struct {
	db *gorm.DB
}

// NewEventTypeRepository creates a new event type repository
func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

// Create creates a new event type
func (r *EventTypeRepository) Create(ctx context.Context, eventType *models.EventType) error {
	return r.db.WithContext(ctx).Create(eventType).Error
}

// GetByID retrieves an event type by ID
func (r *EventTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EventType, error) {
	var eventType models.EventType
	err := r.db.WithContext(ctx).First(&eventType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &eventType, nil
}

// GetByListingID retrieves all event types for a listing
func (r *EventTypeRepository) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]models.EventType, error) {
	var eventTypes []models.EventType
	err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).Order("created_at ASC").Find(&eventTypes).Error
	return eventTypes, err
}

// Update updates an event type
func (r *EventTypeRepository) Update(ctx context.Context, eventType *models.EventType) error {
	return r.db.WithContext(ctx).Save(eventType).Error
}

// Delete soft-deletes an event type
func (r *EventTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.EventType{}, "id = ?", id).Error
}
