package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUIDSlice stores a list of UUIDs as a JSONB column
type UUIDSlice []uuid.UUID

// Value implements driver.Valuer for JSONB serialization
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB deserialization
func (s *UUIDSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for UUIDSlice: %T", value)
	}
	return json.Unmarshal(b, s)
}

// Contains reports whether the slice contains the given id
func (s UUIDSlice) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// OverrideWindow is a single weekday entry of an availability override.
// Open=false marks the day as closed regardless of the window bounds.
type OverrideWindow struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"` // wall clock "HH:MM"
	End   string `json:"end,omitempty"`   // wall clock "HH:MM"
}

// AvailabilityOverride maps lowercase weekday names ("monday".."sunday")
// to an open/closed window. Days absent from the map are treated as open.
type AvailabilityOverride map[string]OverrideWindow

// Value implements driver.Valuer for JSONB serialization
func (o AvailabilityOverride) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB deserialization
func (o *AvailabilityOverride) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for AvailabilityOverride: %T", value)
	}
	return json.Unmarshal(b, o)
}

// TeamMember represents a bookable resource attached to a listing
type TeamMember struct {
	BaseModel
	UserID               uuid.UUID            `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ListingID            uuid.UUID            `json:"listing_id" gorm:"type:uuid;not null;index" validate:"required"`
	DisplayName          string               `json:"display_name" gorm:"size:200;not null" validate:"required,max=200"`
	Role                 TeamMemberRole       `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`
	EventTypeIDs         UUIDSlice            `json:"event_type_ids" gorm:"type:jsonb"` // empty = eligible for all event types
	AvailabilityOverride AvailabilityOverride `json:"availability_override,omitempty" gorm:"type:jsonb"`
	RoundRobinEnabled    bool                 `json:"round_robin_enabled" gorm:"default:true"`
	RoundRobinWeight     float64              `json:"round_robin_weight" gorm:"not null;default:1" validate:"gt=0"`
	IsActive             bool                 `json:"is_active" gorm:"default:true"`

	// Relationships
	Listing              *Listing              `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Bookings             []Booking             `json:"bookings,omitempty" gorm:"foreignKey:TeamMemberID"`
	CalendarIntegrations []CalendarIntegration `json:"calendar_integrations,omitempty" gorm:"foreignKey:UserID;references:UserID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// EligibleFor reports whether the member may take bookings of the given
// event type. An empty allow-list means eligible for all event types.
func (m *TeamMember) EligibleFor(eventTypeID uuid.UUID) bool {
	if len(m.EventTypeIDs) == 0 {
		return true
	}
	return m.EventTypeIDs.Contains(eventTypeID)
}
