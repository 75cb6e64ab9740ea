package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/provider"
	"booking-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService orchestrates booking creation: resource assignment
// first, then delegation to the backend provider
type BookingService struct {
	bookings   *repository.BookingRepository
	eventTypes *repository.EventTypeRepository
	assignor   *AssignmentService
	registry   *provider.Registry
	validator  *validator.Validate
	log        *logger.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookings *repository.BookingRepository,
	eventTypes *repository.EventTypeRepository,
	assignor *AssignmentService,
	registry *provider.Registry,
	validator *validator.Validate,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		eventTypes: eventTypes,
		assignor:   assignor,
		registry:   registry,
		validator:  validator,
		log:        log,
	}
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	ListingID     uuid.UUID  `json:"listing_id" validate:"required"`
	EventTypeID   uuid.UUID  `json:"event_type_id" validate:"required"`
	SlotID        *uuid.UUID `json:"slot_id,omitempty"`
	CustomerName  string     `json:"customer_name" validate:"required"`
	CustomerEmail string     `json:"customer_email" validate:"required,email"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	StartTime     time.Time  `json:"start_time" validate:"required"`
	Timezone      string     `json:"timezone" validate:"required"`
	Notes         string     `json:"notes,omitempty"`
	Backend       string     `json:"backend,omitempty"`
}

// Create assigns a team member and creates the booking through the
// configured provider. A conflicting assignment is retried once with
// the losing candidate excluded before giving up.
func (s *BookingService) Create(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	eventType, err := s.eventTypes.GetByID(ctx, req.EventTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventTypeNotFound
		}
		return nil, fmt.Errorf("failed to get event type: %w", err)
	}
	if eventType.ListingID != req.ListingID {
		return nil, &apperrors.ValidationError{Field: "event_type_id", Message: "event type does not belong to listing"}
	}

	end := req.StartTime.Add(time.Duration(eventType.DurationMinutes) * time.Minute)

	backend := models.ProviderBackend(req.Backend)
	if backend == "" {
		backend = models.ProviderBackendLocal
	}
	prov, err := s.registry.Get(backend)
	if err != nil {
		return nil, err
	}

	booking, err := s.createOnce(ctx, prov, req, eventType, end, nil)
	if apperrors.IsConflict(err) {
		s.log.WithContext(ctx).WithField("event_type_id", req.EventTypeID).
			Warn("Assignment conflicted with concurrent booking, retrying once")
		booking, err = s.createOnce(ctx, prov, req, eventType, end, lastAssignee(booking))
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// createOnce runs one assign-then-create round. exclude, when set,
// removes a candidate that just lost a write race.
func (s *BookingService) createOnce(ctx context.Context, prov provider.BookingProvider, req *CreateBookingRequest, eventType *models.EventType, end time.Time, exclude *uuid.UUID) (*models.Booking, error) {
	member, err := s.assignor.AssignExcluding(ctx, req.EventTypeID, req.ListingID, req.StartTime, end, req.Timezone, exclude)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ListingID:     req.ListingID,
		EventTypeID:   req.EventTypeID,
		SlotID:        req.SlotID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartTime:     req.StartTime,
		EndTime:       end,
		Timezone:      req.Timezone,
		Notes:         req.Notes,
	}
	if member != nil {
		booking.TeamMemberID = &member.ID
	}

	created, err := prov.CreateBooking(ctx, booking)
	if err != nil {
		if apperrors.IsConflict(err) {
			// carry the loser back so the retry can exclude it
			return booking, err
		}
		return nil, err
	}
	return created, nil
}

func lastAssignee(b *models.Booking) *uuid.UUID {
	if b == nil {
		return nil
	}
	return b.TeamMemberID
}

// GetByID retrieves a booking by ID
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// GetByConfirmationCode retrieves a booking by its confirmation code
func (s *BookingService) GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	booking, err := s.bookings.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListByWindow retrieves bookings for a listing within a time window
func (s *BookingService) ListByWindow(ctx context.Context, listingID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	bookings, err := s.bookings.GetByListingAndWindow(ctx, listingID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus transitions a booking to a new status through its
// backend provider
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prov, err := s.registry.Get(booking.SourceBackend)
	if err != nil {
		return nil, err
	}
	return prov.UpdateBooking(ctx, id, status)
}

// Cancel cancels a booking through its backend provider
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.Booking, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prov, err := s.registry.Get(booking.SourceBackend)
	if err != nil {
		return nil, err
	}
	return prov.CancelBooking(ctx, id, reason)
}
