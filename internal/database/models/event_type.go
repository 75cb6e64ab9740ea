package models

import "github.com/google/uuid"

// EventType represents a bookable service definition attached to a listing
type EventType struct {
	BaseModel
	ListingID           uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name                string    `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description         string    `json:"description" gorm:"size:500" validate:"max=500"`
	DurationMinutes     int       `json:"duration_minutes" gorm:"not null" validate:"required,min=1"`
	Price               float64   `json:"price" gorm:"not null;default:0" validate:"min=0"`
	Currency            string    `json:"currency" gorm:"size:3;not null;default:'USD'"`
	BufferBeforeMinutes int       `json:"buffer_before_minutes" gorm:"default:0" validate:"min=0"`
	BufferAfterMinutes  int       `json:"buffer_after_minutes" gorm:"default:0" validate:"min=0"`
	IsActive            bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Listing  *Listing  `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:EventTypeID"`
}

// TableName returns the table name for EventType
func (EventType) TableName() string {
	return "event_types"
}
