// Package provider defines the pluggable booking backend boundary.
// The scheduling core talks to a BookingProvider and never to a
// backend directly, so local persistence and remote marketplaces are
// interchangeable at runtime.
package provider

import (
	"context"
	"time"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=provider.go -destination=../mocks/provider_mocks.go -package=mocks

// BookingProvider is the contract every booking backend implements
type BookingProvider interface {
	// Backend returns the identifier this provider is registered under
	Backend() models.ProviderBackend

	// CreateBooking persists a new booking. The booking arrives with
	// assignment already resolved; the provider enforces conflict and
	// capacity rules at its own storage boundary.
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// UpdateBooking transitions a booking to a new lifecycle status
	UpdateBooking(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)

	// CancelBooking cancels a booking, recording when and why
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) (*models.Booking, error)

	// GetAvailability returns the bookable slots for a listing within
	// the window
	GetAvailability(ctx context.Context, listingID uuid.UUID, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error)

	// SyncBookings reconciles bookings between this backend and local
	// storage, returning per-record outcomes
	SyncBookings(ctx context.Context, listingID uuid.UUID) (*SyncResult, error)

	// HealthCheck reports whether the backend is reachable
	HealthCheck(ctx context.Context) *HealthStatus
}

// SyncResult summarizes one reconciliation pass
type SyncResult struct {
	Backend models.ProviderBackend `json:"backend"`
	Synced  int                    `json:"synced"`
	Failed  int                    `json:"failed"`
	Errors  []string               `json:"errors,omitempty"`
}

// HealthStatus reports backend reachability
type HealthStatus struct {
	Backend   models.ProviderBackend `json:"backend"`
	Healthy   bool                   `json:"healthy"`
	Message   string                 `json:"message,omitempty"`
	CheckedAt time.Time              `json:"checked_at"`
}
