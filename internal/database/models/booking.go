package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a customer booking of an event type, optionally
// assigned to a team member. Bookings are append-mostly for audit
// purposes: cancellation is a status transition, never a row deletion.
type Booking struct {
	BaseModel
	ListingID    uuid.UUID  `json:"listing_id" gorm:"type:uuid;not null;index" validate:"required"`
	EventTypeID  uuid.UUID  `json:"event_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamMemberID *uuid.UUID `json:"team_member_id,omitempty" gorm:"type:uuid;index"` // nil until assigned
	SlotID       *uuid.UUID `json:"slot_id,omitempty" gorm:"type:uuid;index"`

	StartTime time.Time `json:"start_time" gorm:"not null;index" validate:"required"`
	EndTime   time.Time `json:"end_time" gorm:"not null" validate:"required"`
	Timezone  string    `json:"timezone" gorm:"size:64;not null;default:'UTC'"`

	Status        BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending'"`

	BasePrice        float64 `json:"base_price" gorm:"not null;default:0"`
	TotalPrice       float64 `json:"total_price" gorm:"not null;default:0"`
	Currency         string  `json:"currency" gorm:"size:3;not null;default:'USD'"`
	ConfirmationCode string  `json:"confirmation_code" gorm:"size:12;uniqueIndex"`

	CustomerName  string `json:"customer_name" gorm:"size:200"`
	CustomerEmail string `json:"customer_email" gorm:"size:255"`
	CustomerPhone string `json:"customer_phone,omitempty" gorm:"size:32"`
	Notes         string `json:"notes" gorm:"size:1000"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"size:500"`

	// Provenance for bookings pulled in from an external backend
	SourceBackend ProviderBackend `json:"source_backend" gorm:"type:varchar(20);not null;default:'local'"`
	ExternalRef   string          `json:"external_ref,omitempty" gorm:"size:128;index"`

	// Relationships
	Listing    *Listing    `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	EventType  *EventType  `json:"event_type,omitempty" gorm:"foreignKey:EventTypeID"`
	TeamMember *TeamMember `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// BlocksAvailability reports whether the booking occupies its interval
// for conflict purposes. Only pending and confirmed bookings block.
func (b *Booking) BlocksAvailability() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Overlaps reports whether the booking's interval strictly overlaps
// [start, end). Touching intervals do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
