package repository

import (
	"context"
	"time"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySlotRepository handles database operations for availability slots
type AvailabilitySlotRepository struct {
	db *gorm.DB
}

// NewAvailabilitySlotRepository creates a new availability slot repository
func NewAvailabilitySlotRepository(db *gorm.DB) *AvailabilitySlotRepository {
	return &AvailabilitySlotRepository{db: db}
}

// Create creates a new availability slot
func (r *AvailabilitySlotRepository) Create(ctx context.Context, slot *models.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

// GetByID retrieves an availability slot by ID
func (r *AvailabilitySlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetByWindow retrieves a listing's slots whose dates fall within the window
func (r *AvailabilitySlotRepository) GetByWindow(ctx context.Context, listingID uuid.UUID, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND date >= ? AND date <= ?", listingID, windowStart, windowEnd).
		Order("start_time ASC").
		Find(&slots).Error
	return slots, err
}

// GetByPatternID retrieves the slots generated from a pattern
func (r *AvailabilitySlotRepository) GetByPatternID(ctx context.Context, patternID uuid.UUID) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := r.db.WithContext(ctx).Where("pattern_id = ?", patternID).Order("start_time ASC").Find(&slots).Error
	return slots, err
}

// Update updates an availability slot
func (r *AvailabilitySlotRepository) Update(ctx context.Context, slot *models.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

// IncrementBookings bumps the slot's booking count, guarded by capacity.
// Returns gorm.ErrRecordNotFound when the slot is full or missing.
func (r *AvailabilitySlotRepository) IncrementBookings(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.AvailabilitySlot{}).
		Where("id = ? AND available = ? AND current_bookings < max_bookings", id, true).
		Update("current_bookings", gorm.Expr("current_bookings + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementBookings releases one booking from the slot
func (r *AvailabilitySlotRepository) DecrementBookings(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.AvailabilitySlot{}).
		Where("id = ? AND current_bookings > 0", id).
		Update("current_bookings", gorm.Expr("current_bookings - 1")).Error
}

// Delete soft-deletes an availability slot
func (r *AvailabilitySlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.AvailabilitySlot{}, "id = ?", id).Error
}
