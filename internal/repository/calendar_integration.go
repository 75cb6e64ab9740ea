package repository

import (
	"context"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarIntegrationRepository handles database operations for calendar integrations
type CalendarIntegrationRepository struct {
	db *gorm.DB
}

// NewCalendarIntegrationRepository creates a new calendar integration repository
func NewCalendarIntegrationRepository(db *gorm.DB) *CalendarIntegrationRepository {
	return &CalendarIntegrationRepository{db: db}
}

// Create creates a new calendar integration
func (r *CalendarIntegrationRepository) Create(ctx context.Context, integration *models.CalendarIntegration) error {
	return r.db.WithContext(ctx).Create(integration).Error
}

// GetByID retrieves a calendar integration by ID
func (r *CalendarIntegrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CalendarIntegration, error) {
	var integration models.CalendarIntegration
	err := r.db.WithContext(ctx).First(&integration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

// GetActiveByUserID retrieves the enabled, sync-enabled integrations
// of a user; only these participate in conflict checks
func (r *CalendarIntegrationRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]models.CalendarIntegration, error) {
	var integrations []models.CalendarIntegration
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND enabled = ? AND sync_enabled = ?", userID, true, true).
		Find(&integrations).Error
	return integrations, err
}

// Update updates a calendar integration
func (r *CalendarIntegrationRepository) Update(ctx context.Context, integration *models.CalendarIntegration) error {
	return r.db.WithContext(ctx).Save(integration).Error
}

// Delete soft-deletes a calendar integration
func (r *CalendarIntegrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.CalendarIntegration{}, "id = ?", id).Error
}
