package testutils

import (
	"fmt"
	"time"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for test suites
type FactorySet struct {
	Listing     *ListingFactory
	EventType   *EventTypeFactory
	TeamMember  *TeamMemberFactory
	Pattern     *PatternFactory
	Booking     *BookingFactory
	Integration *IntegrationFactory
}

// NewFactorySet creates a fresh set of factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Listing:     NewListingFactory(),
		EventType:   NewEventTypeFactory(),
		TeamMember:  NewTeamMemberFactory(),
		Pattern:     NewPatternFactory(),
		Booking:     NewBookingFactory(),
		Integration: NewIntegrationFactory(),
	}
}

// ListingFactory provides methods to create test Listing data
type ListingFactory struct{}

// NewListingFactory creates a new ListingFactory
func NewListingFactory() *ListingFactory {
	return &ListingFactory{}
}

// Create creates a test Listing with default values
func (f *ListingFactory) Create() *models.Listing {
	return &models.Listing{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: "tenant-test",
		Name:     "Test Listing",
		Timezone: "UTC",
		IsActive: true,
	}
}

// WithTenant sets a custom tenant for the listing
func (f *ListingFactory) WithTenant(tenantID string) *models.Listing {
	listing := f.Create()
	listing.TenantID = tenantID
	return listing
}

// WithTimezone sets a custom timezone for the listing
func (f *ListingFactory) WithTimezone(tz string) *models.Listing {
	listing := f.Create()
	listing.Timezone = tz
	return listing
}

// EventTypeFactory provides methods to create test EventType data
type EventTypeFactory struct{}

// NewEventTypeFactory creates a new EventTypeFactory
func NewEventTypeFactory() *EventTypeFactory {
	return &EventTypeFactory{}
}

// Create creates a test EventType with default values
func (f *EventTypeFactory) Create(listingID uuid.UUID) *models.EventType {
	return &models.EventType{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ListingID:       listingID,
		Name:            "Consultation",
		Description:     "A test event type",
		DurationMinutes: 60,
		Price:           50,
		Currency:        "USD",
		IsActive:        true,
	}
}

// WithDuration sets a custom duration in minutes
func (f *EventTypeFactory) WithDuration(listingID uuid.UUID, minutes int) *models.EventType {
	et := f.Create(listingID)
	et.DurationMinutes = minutes
	return et
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct {
	counter int
}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create(listingID uuid.UUID) *models.TeamMember {
	f.counter++
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:            uuid.New(),
		ListingID:         listingID,
		DisplayName:       fmt.Sprintf("Member %d", f.counter),
		Role:              models.TeamMemberRoleMember,
		RoundRobinEnabled: true,
		RoundRobinWeight:  1,
		IsActive:          true,
	}
}

// WithWeight sets a custom round-robin weight
func (f *TeamMemberFactory) WithWeight(listingID uuid.UUID, weight float64) *models.TeamMember {
	m := f.Create(listingID)
	m.RoundRobinWeight = weight
	return m
}

// WithEventTypes restricts the member to the given event types
func (f *TeamMemberFactory) WithEventTypes(listingID uuid.UUID, eventTypeIDs ...uuid.UUID) *models.TeamMember {
	m := f.Create(listingID)
	m.EventTypeIDs = models.UUIDSlice(eventTypeIDs)
	return m
}

// PatternFactory provides methods to create test RecurringPattern data
type PatternFactory struct{}

// NewPatternFactory creates a new PatternFactory
func NewPatternFactory() *PatternFactory {
	return &PatternFactory{}
}

// Create creates a daily test pattern with default values
func (f *PatternFactory) Create(listingID uuid.UUID) *models.RecurringPattern {
	return &models.RecurringPattern{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ListingID:   listingID,
		Frequency:   models.PatternFrequencyDaily,
		Interval:    1,
		StartTime:   "09:00",
		EndTime:     "10:00",
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Timezone:    "UTC",
		MaxBookings: 1,
		Active:      true,
	}
}

// Weekly creates a weekly pattern on the given ISO weekdays
func (f *PatternFactory) Weekly(listingID uuid.UUID, daysOfWeek ...int) *models.RecurringPattern {
	p := f.Create(listingID)
	p.Frequency = models.PatternFrequencyWeekly
	p.DaysOfWeek = models.IntSlice(daysOfWeek)
	return p
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a pending test Booking with default values
func (f *BookingFactory) Create(listingID, eventTypeID uuid.UUID, start, end time.Time) *models.Booking {
	id := uuid.New()
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ListingID:        listingID,
		EventTypeID:      eventTypeID,
		StartTime:        start,
		EndTime:          end,
		Timezone:         "UTC",
		Status:           models.BookingStatusPending,
		PaymentStatus:    models.PaymentStatusPending,
		Currency:         "USD",
		ConfirmationCode: id.String()[:8],
		CustomerName:     "Jane Customer",
		CustomerEmail:    "jane@test.com",
		SourceBackend:    models.ProviderBackendLocal,
	}
}

// Assigned creates a booking already assigned to a team member
func (f *BookingFactory) Assigned(listingID, eventTypeID, teamMemberID uuid.UUID, start, end time.Time) *models.Booking {
	b := f.Create(listingID, eventTypeID, start, end)
	b.TeamMemberID = &teamMemberID
	return b
}

// IntegrationFactory provides methods to create test CalendarIntegration data
type IntegrationFactory struct{}

// NewIntegrationFactory creates a new IntegrationFactory
func NewIntegrationFactory() *IntegrationFactory {
	return &IntegrationFactory{}
}

// Create creates an enabled test CalendarIntegration
func (f *IntegrationFactory) Create(userID uuid.UUID) *models.CalendarIntegration {
	return &models.CalendarIntegration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		Provider:    "google",
		Enabled:     true,
		SyncEnabled: true,
	}
}
