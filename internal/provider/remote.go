package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/repository"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RemoteProvider adapts an external marketplace booking API to the
// BookingProvider contract. Remote bookings are mirrored into local
// storage keyed by their external reference so availability checks
// see them alongside local ones.
type RemoteProvider struct {
	http     *resty.Client
	bookings *repository.BookingRepository
	log      *logger.Logger
}

// remoteBooking is the remote API's booking representation
type remoteBooking struct {
	Ref           string    `json:"ref"`
	ListingID     uuid.UUID `json:"listing_id"`
	EventTypeID   uuid.UUID `json:"event_type_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Timezone      string    `json:"timezone"`
	Status        string    `json:"status"`
	TotalPrice    float64   `json:"total_price"`
	Currency      string    `json:"currency"`
}

type remoteBookingList struct {
	Bookings []remoteBooking `json:"bookings"`
}

// NewRemoteProvider creates a remote marketplace provider
func NewRemoteProvider(baseURL, apiKey string, timeout time.Duration, bookings *repository.BookingRepository, log *logger.Logger) *RemoteProvider {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("X-API-Key", apiKey)
	return &RemoteProvider{
		http:     c,
		bookings: bookings,
		log:      log,
	}
}

// Backend returns the remote backend identifier
func (p *RemoteProvider) Backend() models.ProviderBackend {
	return models.ProviderBackendRemote
}

// CreateBooking creates the booking remotely, then mirrors it locally
// so conflict checks include it
func (p *RemoteProvider) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	payload := remoteBooking{
		ListingID:     booking.ListingID,
		EventTypeID:   booking.EventTypeID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		StartTime:     booking.StartTime.UTC(),
		EndTime:       booking.EndTime.UTC(),
		Timezone:      booking.Timezone,
	}

	var out remoteBooking
	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/v1/bookings")
	if err != nil {
		return nil, fmt.Errorf("remote booking request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote backend rejected booking: status %d", resp.StatusCode())
	}

	booking.Status = models.BookingStatus(out.Status)
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	booking.PaymentStatus = models.PaymentStatusPending
	booking.SourceBackend = models.ProviderBackendRemote
	booking.ExternalRef = out.Ref
	booking.TotalPrice = out.TotalPrice
	booking.BasePrice = out.TotalPrice
	if out.Currency != "" {
		booking.Currency = out.Currency
	}
	booking.ConfirmationCode = generateConfirmationCode()

	if err := p.bookings.CreateAssigned(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateBooking pushes the status change remotely, then applies it to
// the local mirror
func (p *RemoteProvider) UpdateBooking(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
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

	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"status": string(status)}).
		Patch("/v1/bookings/" + booking.ExternalRef)
	if err != nil {
		return nil, fmt.Errorf("remote status update failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote backend rejected status update: status %d", resp.StatusCode())
	}

	booking.Status = status
	if err := p.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// CancelBooking cancels remotely, then marks the local mirror
func (p *RemoteProvider) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*models.Booking, error) {
	booking, err := p.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, booking.Status, models.BookingStatusCancelled)
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"reason": reason}).
		Delete("/v1/bookings/" + booking.ExternalRef)
	if err != nil {
		return nil, fmt.Errorf("remote cancellation failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote backend rejected cancellation: status %d", resp.StatusCode())
	}

	now := time.Now().UTC()
	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = reason
	if err := p.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return booking, nil
}

// GetAvailability is not served remotely; slots are expanded and
// stored locally even for remote-backed listings
func (p *RemoteProvider) GetAvailability(ctx context.Context, listingID uuid.UUID, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

// SyncBookings pulls the remote backend's bookings for a listing and
// upserts them into local storage. Individual record failures are
// collected, not fatal.
func (p *RemoteProvider) SyncBookings(ctx context.Context, listingID uuid.UUID) (*SyncResult, error) {
	var out remoteBookingList
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParam("listing_id", listingID.String()).
		SetResult(&out).
		Get("/v1/bookings")
	if err != nil {
		return nil, fmt.Errorf("remote booking list failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote backend rejected booking list: status %d", resp.StatusCode())
	}

	result := &SyncResult{Backend: models.ProviderBackendRemote}
	for _, rb := range out.Bookings {
		if err := p.upsert(ctx, rb); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", rb.Ref, err))
			continue
		}
		result.Synced++
	}
	return result, nil
}

func (p *RemoteProvider) upsert(ctx context.Context, rb remoteBooking) error {
	status := models.BookingStatus(rb.Status)
	if !status.IsValid() {
		return fmt.Errorf("unknown remote status %q", rb.Status)
	}

	existing, err := p.bookings.GetByExternalRef(ctx, models.ProviderBackendRemote, rb.Ref)
	switch {
	case err == nil:
		existing.Status = status
		existing.StartTime = rb.StartTime
		existing.EndTime = rb.EndTime
		existing.TotalPrice = rb.TotalPrice
		return p.bookings.Update(ctx, existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		booking := &models.Booking{
			ListingID:     rb.ListingID,
			EventTypeID:   rb.EventTypeID,
			CustomerName:  rb.CustomerName,
			CustomerEmail: rb.CustomerEmail,
			StartTime:     rb.StartTime,
			EndTime:       rb.EndTime,
			Timezone:      rb.Timezone,
			Status:        status,
			PaymentStatus: models.PaymentStatusPending,
			SourceBackend: models.ProviderBackendRemote,
			ExternalRef:   rb.Ref,
			TotalPrice:    rb.TotalPrice,
			BasePrice:     rb.TotalPrice,
			Currency:      rb.Currency,
		}
		booking.ConfirmationCode = generateConfirmationCode()
		return p.bookings.Create(ctx, booking)
	default:
		return err
	}
}

// HealthCheck probes the remote API's health endpoint
func (p *RemoteProvider) HealthCheck(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Backend:   models.ProviderBackendRemote,
		CheckedAt: time.Now().UTC(),
	}
	resp, err := p.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		status.Message = err.Error()
		return status
	}
	if resp.IsError() {
		status.Message = fmt.Sprintf("status %d", resp.StatusCode())
		return status
	}
	status.Healthy = true
	return status
}

func (p *RemoteProvider) getBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := p.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}
