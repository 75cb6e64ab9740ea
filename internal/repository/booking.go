package repository

import (
	"context"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blockingStatuses are the booking statuses that occupy their interval
// for conflict purposes
var blockingStatuses = []models.BookingStatus{models.BookingStatusPending, models.BookingStatusConfirmed}

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking without conflict enforcement. Used for
// unassigned bookings; assigned bookings go through CreateAssigned.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// CreateAssigned creates a booking assigned to a team member inside a
// transaction that locks the member row and rejects overlapping
// pending/confirmed bookings. This is the double-booking enforcement
// point: two racing assignments may both pick the same member, but
// only one write wins; the loser receives a retryable conflict.
func (r *BookingRepository) CreateAssigned(ctx context.Context, booking *models.Booking) error {
	if booking.TeamMemberID == nil {
		return r.Create(ctx, booking)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The overlap count below only locks booking rows that already
		// exist, so two first-time inserts for the same member would
		// each count zero. Locking the member row serializes them: the
		// second transaction waits, then re-reads with the winner's
		// row committed.
		var member models.TeamMember
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, "id = ?", *booking.TeamMemberID).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.Booking{}).
			Where("team_member_id = ? AND status IN ?", *booking.TeamMemberID, blockingStatuses).
			Where("start_time < ? AND ? < end_time", booking.EndTime, booking.StartTime).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrBookingConflict
		}
		return tx.Create(booking).Error
	})
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByConfirmationCode retrieves a booking by its confirmation code
func (r *BookingRepository) GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, "confirmation_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByExternalRef retrieves a booking synced from an external backend
func (r *BookingRepository) GetByExternalRef(ctx context.Context, backend models.ProviderBackend, ref string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, "source_backend = ? AND external_ref = ?", backend, ref).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetConflicting retrieves the pending/confirmed bookings of a team
// member whose intervals strictly overlap [start, end). An interval
// ending exactly when another begins does not conflict.
func (r *BookingRepository) GetConflicting(ctx context.Context, teamMemberID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("team_member_id = ? AND status IN ?", teamMemberID, blockingStatuses).
		Where("start_time < ? AND ? < end_time", end, start).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

// GetByListingAndWindow retrieves a listing's bookings intersecting the window
func (r *BookingRepository) GetByListingAndWindow(ctx context.Context, listingID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Where("start_time < ? AND ? < end_time", end, start).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

// Update updates a booking
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// GetAssignmentHistory derives the most recent assignment records for
// a listing and event type from assigned bookings, newest first. The
// projection is read-only; history is never written directly.
func (r *BookingRepository) GetAssignmentHistory(ctx context.Context, listingID, eventTypeID uuid.UUID, limit int) ([]models.AssignmentHistoryRecord, error) {
	var records []models.AssignmentHistoryRecord
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("bookings.id AS booking_id, bookings.team_member_id, team_members.user_id, bookings.created_at AS assigned_at").
		Joins("JOIN team_members ON team_members.id = bookings.team_member_id").
		Where("bookings.listing_id = ? AND bookings.event_type_id = ? AND bookings.team_member_id IS NOT NULL", listingID, eventTypeID).
		Where("bookings.status IN ?", blockingStatuses).
		Order("bookings.created_at DESC").
		Limit(limit).
		Scan(&records).Error
	return records, err
}
