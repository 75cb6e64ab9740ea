package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot represents one concrete bookable date/time instance,
// either generated from a recurring pattern or created standalone.
type AvailabilitySlot struct {
	BaseModel
	ListingID       uuid.UUID  `json:"listing_id" gorm:"type:uuid;not null;index" validate:"required"`
	PatternID       *uuid.UUID `json:"pattern_id,omitempty" gorm:"type:uuid;index"` // back-reference, nil for standalone slots
	TeamMemberID    *uuid.UUID `json:"team_member_id,omitempty" gorm:"type:uuid;index"`
	Date            time.Time  `json:"date" gorm:"not null;index" validate:"required"`
	StartTime       time.Time  `json:"start_time" gorm:"not null" validate:"required"`
	EndTime         time.Time  `json:"end_time" gorm:"not null" validate:"required"`
	Available       bool       `json:"available" gorm:"default:true"`
	MaxBookings     int        `json:"max_bookings" gorm:"not null;default:1" validate:"min=1"`
	CurrentBookings int        `json:"current_bookings" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	Listing *Listing          `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Pattern *RecurringPattern `json:"pattern,omitempty" gorm:"foreignKey:PatternID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AvailabilitySlot
func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// IsBookable reports whether the slot can accept another booking
func (s *AvailabilitySlot) IsBookable() bool {
	return s.Available && s.CurrentBookings < s.MaxBookings
}
