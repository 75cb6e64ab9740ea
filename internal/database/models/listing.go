package models

// Listing represents a tenant-owned marketplace listing that team members,
// event types and availability patterns attach to
type Listing struct {
	BaseModel
	TenantID string `json:"tenant_id" gorm:"size:64;not null;index" validate:"required,max=64"`
	Name     string `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Timezone string `json:"timezone" gorm:"size:64;not null;default:'UTC'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	TeamMembers       []TeamMember       `json:"team_members,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	EventTypes        []EventType        `json:"event_types,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	RecurringPatterns []RecurringPattern `json:"recurring_patterns,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Listing
func (Listing) TableName() string {
	return "listings"
}
