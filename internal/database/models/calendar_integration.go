package models

import "github.com/google/uuid"

// CalendarIntegration represents a user's connection to an external
// calendar system. Token refresh mechanics live outside this service;
// the integration is only consulted as a conflict oracle.
type CalendarIntegration struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Provider    string    `json:"provider" gorm:"size:50;not null" validate:"required,max=50"` // e.g. "google", "outlook"
	ExternalID  string    `json:"external_id" gorm:"size:128"`
	Enabled     bool      `json:"enabled" gorm:"default:true"`
	SyncEnabled bool      `json:"sync_enabled" gorm:"default:true"`
}

// TableName returns the table name for CalendarIntegration
func (CalendarIntegration) TableName() string {
	return "calendar_integrations"
}

// ChecksConflicts reports whether the integration participates in
// availability conflict checks
func (c *CalendarIntegration) ChecksConflicts() bool {
	return c.Enabled && c.SyncEnabled
}
