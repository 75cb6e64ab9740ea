package repository

import (
	"context"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByListingID retrieves all team members for a listing in creation
// order. The order is stable: round-robin tie-breaking depends on it.
func (r *TeamMemberRepository) GetByListingID(ctx context.Context, listingID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).Order("created_at ASC, id ASC").Find(&members).Error
	return members, err
}

// GetAssignable retrieves the active, round-robin-enabled members of a
// listing in stable creation order
func (r *TeamMemberRepository) GetAssignable(ctx context.Context, listingID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND is_active = ? AND round_robin_enabled = ?", listingID, true, true).
		Order("created_at ASC, id ASC").
		Find(&members).Error
	return members, err
}

// Update updates a team member
func (r *TeamMemberRepository) Update(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete soft-deletes a team member
func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id).Error
}
