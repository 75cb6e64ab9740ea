package repository

import (
	"context"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringPatternRepository handles database operations for recurring patterns
type RecurringPatternRepository struct {
	db *gorm.DB
}

// NewRecurringPatternRepository creates a new recurring pattern repository
func NewRecurringPatternRepository(db *gorm.DB) *RecurringPatternRepository {
	return &RecurringPatternRepository{db: db}
}

// Create creates a new recurring pattern
func (r *RecurringPatternRepository) Create(ctx context.Context, pattern *models.RecurringPattern) error {
	return r.db.WithContext(ctx).Create(pattern).Error
}

// GetByID retrieves a recurring pattern by ID
func (r *RecurringPatternRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringPattern, error) {
	var pattern models.RecurringPattern
	err := r.db.WithContext(ctx).First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetByListingID retrieves all recurring patterns for a listing
func (r *RecurringPatternRepository) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]models.RecurringPattern, error) {
	var patterns []models.RecurringPattern
	err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).Order("created_at ASC").Find(&patterns).Error
	return patterns, err
}

// GetActiveByListingID retrieves the active patterns for a listing
func (r *RecurringPatternRepository) GetActiveByListingID(ctx context.Context, listingID uuid.UUID) ([]models.RecurringPattern, error) {
	var patterns []models.RecurringPattern
	err := r.db.WithContext(ctx).Where("listing_id = ? AND active = ?", listingID, true).Order("created_at ASC").Find(&patterns).Error
	return patterns, err
}

// Update updates a recurring pattern
func (r *RecurringPatternRepository) Update(ctx context.Context, pattern *models.RecurringPattern) error {
	return r.db.WithContext(ctx).Save(pattern).Error
}

// Deactivate soft-terminates a pattern; expansion then yields no slots
func (r *RecurringPatternRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.RecurringPattern{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft-deletes a recurring pattern
func (r *RecurringPatternRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.RecurringPattern{}, "id = ?", id).Error
}
