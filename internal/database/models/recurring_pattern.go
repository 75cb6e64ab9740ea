package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IntSlice stores a list of integers as a JSONB column
type IntSlice []int

// Value implements driver.Valuer for JSONB serialization
func (s IntSlice) Value() (driver.Value, error) {
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
func (s *IntSlice) Scan(value interface{}) error {
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
		return fmt.Errorf("unsupported type for IntSlice: %T", value)
	}
	return json.Unmarshal(b, s)
}

// Contains reports whether the slice contains the given value
func (s IntSlice) Contains(v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// StringSlice stores a list of strings as a JSONB column
type StringSlice []string

// Value implements driver.Valuer for JSONB serialization
func (s StringSlice) Value() (driver.Value, error) {
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
func (s *StringSlice) Scan(value interface{}) error {
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
		return fmt.Errorf("unsupported type for StringSlice: %T", value)
	}
	return json.Unmarshal(b, s)
}

// ExceptionDateLayout is the calendar-day format used for exception dates
const ExceptionDateLayout = "2006-01-02"

// RecurringPattern represents a rule generating repeated availability
// on a daily/weekly/monthly/yearly schedule.
//
// Termination: at most one of EndDate and Occurrences may be set. When
// neither is set the rule is unbounded and must be expanded against an
// explicit window.
type RecurringPattern struct {
	BaseModel
	ListingID    uuid.UUID        `json:"listing_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamMemberID *uuid.UUID       `json:"team_member_id,omitempty" gorm:"type:uuid;index"`
	Frequency    PatternFrequency `json:"frequency" gorm:"type:varchar(20);not null" validate:"required"`
	Interval     int              `json:"interval" gorm:"not null;default:1" validate:"required,min=1"`

	// Weekly: ISO weekday numbers 1 (Monday) .. 7 (Sunday)
	DaysOfWeek IntSlice `json:"days_of_week,omitempty" gorm:"type:jsonb"`
	// Monthly: day-of-month addressing; takes precedence over WeekOfMonth
	// when both are populated
	DaysOfMonth IntSlice `json:"days_of_month,omitempty" gorm:"type:jsonb"`
	// Monthly: Nth-weekday addressing (1..5, used with DaysOfWeek)
	WeekOfMonth *int `json:"week_of_month,omitempty"`
	// Yearly: month number 1..12
	MonthOfYear *int `json:"month_of_year,omitempty"`

	StartTime string `json:"start_time,omitempty" gorm:"size:5"` // wall clock "HH:MM" in Timezone
	EndTime   string `json:"end_time,omitempty" gorm:"size:5"`   // wall clock "HH:MM" in Timezone

	StartDate      time.Time   `json:"start_date" gorm:"not null" validate:"required"`
	EndDate        *time.Time  `json:"end_date,omitempty"`
	Occurrences    *int        `json:"occurrences,omitempty"`
	ExceptionDates StringSlice `json:"exception_dates,omitempty" gorm:"type:jsonb"` // "2006-01-02" calendar days

	Timezone    string `json:"timezone" gorm:"size:64;not null" validate:"required"`
	MaxBookings int    `json:"max_bookings" gorm:"not null;default:1" validate:"min=1"`
	Active      bool   `json:"active" gorm:"default:true"`

	// Relationships
	Listing *Listing           `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Slots   []AvailabilitySlot `json:"slots,omitempty" gorm:"foreignKey:PatternID"`
}

// TableName returns the table name for RecurringPattern
func (RecurringPattern) TableName() string {
	return "recurring_patterns"
}

// HasException reports whether the given calendar day (in the pattern's
// timezone) is suppressed by an exception date.
func (p *RecurringPattern) HasException(day time.Time) bool {
	key := day.Format(ExceptionDateLayout)
	for _, d := range p.ExceptionDates {
		if d == key {
			return true
		}
	}
	return false
}
