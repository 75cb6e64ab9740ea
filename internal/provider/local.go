package provider

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const confirmationCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// LocalProvider is the reference BookingProvider backed by the
// service's own database. Double-booking and slot capacity are
// enforced here, at the persistence boundary.
type LocalProvider struct {
	bookings   *repository.BookingRepository
	eventTypes *repository.EventTypeRepository
	slots      *repository.AvailabilitySlotRepository
	db         *gorm.DB
	log        *logger.Logger
}

// NewLocalProvider creates the local booking provider
func NewLocalProvider(
	bookings *repository.BookingRepository,
	eventTypes *repository.EventTypeRepository,
	slots *repository.AvailabilitySlotRepository,
	db *gorm.DB,
	log *logger.Logger,
) *LocalProvider {
	return &LocalProvider{
		bookings:   bookings,
		eventTypes: eventTypes,
		slots:      slots,
		db:         db,
		log:        log,
	}
}

// Backend returns the local backend identifier
func (p *LocalProvider) Backend() models.ProviderBackend {
	return models.ProviderBackendLocal
}

// CreateBooking persists a new booking, defaulting status and payment
// to pending when the caller left them unset. When the booking targets
// a slot, the slot's capacity is claimed first; a full slot rejects
// the booking before any row is written.
func (p *LocalProvider) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	eventType, err := p.eventTypes.GetByID(ctx, booking.EventTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventTypeNotFound
		}
		return nil, fmt.Errorf("failed to get event type: %w", err)
	}

	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	} else if !booking.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentStatusPending
	}
	booking.SourceBackend = models.ProviderBackendLocal
	booking.BasePrice = eventType.Price
	booking.TotalPrice = eventType.Price
	booking.Currency = eventType.Currency
	booking.ConfirmationCode = generateConfirmationCode()

	if booking.SlotID != nil {
		if err := p.slots.IncrementBookings(ctx, *booking.SlotID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSlotNotBookable
			}
			return nil, fmt.Errorf("failed to claim slot: %w", err)
		}
	}

	if err := p.bookings.CreateAssigned(ctx, booking); err != nil {
		if booking.SlotID != nil {
			if relErr := p.slots.DecrementBookings(ctx, *booking.SlotID); relErr != nil {
				p.log.WithContext(ctx).WithError(relErr).
					WithField("slot_id", *booking.SlotID).
					Error("Failed to release slot after rejected booking")
			}
		}
		return nil, err
	}

	p.log.WithContext(ctx).WithFields(map[string]interface{}{
		"booking_id":        booking.ID,
		"confirmation_code": booking.ConfirmationCode,
	}).Info("Booking created")
	return booking, nil
}

// UpdateBooking transitions a booking's status, rejecting moves the
// lifecycle does not allow
func (p *LocalProvider) UpdateBooking(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	booking, err := p.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, booking.Status, status)
	}

	booking.Status = status
	if err := p.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// CancelBooking cancels a booking and releases its slot capacity.
// Cancellation is a status transition, so terminal bookings reject it.
func (p *LocalProvider) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*models.Booking, error) {
	booking, err := p.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(models.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, booking.Status, models.BookingStatusCancelled)
	}

	now := time.Now().UTC()
	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = reason
	if err := p.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if booking.SlotID != nil {
		if err := p.slots.DecrementBookings(ctx, *booking.SlotID); err != nil {
			p.log.WithContext(ctx).WithError(err).
				WithField("slot_id", *booking.SlotID).
				Error("Failed to release slot for cancelled booking")
		}
	}
	return booking, nil
}

// GetAvailability returns bookable slots for the listing within the
// window
func (p *LocalProvider) GetAvailability(ctx context.Context, listingID uuid.UUID, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error) {
	if !windowStart.Before(windowEnd) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	slots, err := p.slots.GetByWindow(ctx, listingID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	bookable := make([]models.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBookable() {
			bookable = append(bookable, slot)
		}
	}
	return bookable, nil
}

// SyncBookings is a no-op for the local backend, which is already the
// system of record
func (p *LocalProvider) SyncBookings(ctx context.Context, listingID uuid.UUID) (*SyncResult, error) {
	return &SyncResult{Backend: models.ProviderBackendLocal}, nil
}

// HealthCheck pings the database
func (p *LocalProvider) HealthCheck(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Backend:   models.ProviderBackendLocal,
		CheckedAt: time.Now().UTC(),
	}
	sqlDB, err := p.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status.Message = err.Error()
		return status
	}
	status.Healthy = true
	return status
}

func (p *LocalProvider) getBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := p.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// generateConfirmationCode returns a 10-character code from an
// alphabet with no ambiguous characters
func generateConfirmationCode() string {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = confirmationCodeAlphabet[int(b)%len(confirmationCodeAlphabet)]
	}
	return string(buf)
}
