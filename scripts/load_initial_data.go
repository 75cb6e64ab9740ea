package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"booking-scheduler-backend/internal/config"
	"booking-scheduler-backend/internal/database"
	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ListingData struct {
	TenantID string `yaml:"tenant_id"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

type EventTypeData struct {
	ListingName     string  `yaml:"listing_name"`
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description,omitempty"`
	DurationMinutes int     `yaml:"duration_minutes"`
	Price           float64 `yaml:"price"`
	Currency        string  `yaml:"currency,omitempty"`
	BufferBefore    int     `yaml:"buffer_before_minutes,omitempty"`
	BufferAfter     int     `yaml:"buffer_after_minutes,omitempty"`
}

type TeamMemberData struct {
	ListingName       string   `yaml:"listing_name"`
	DisplayName       string   `yaml:"display_name"`
	Role              string   `yaml:"role,omitempty"`
	EventTypeNames    []string `yaml:"event_types,omitempty"`
	RoundRobinEnabled *bool    `yaml:"round_robin_enabled,omitempty"`
	RoundRobinWeight  float64  `yaml:"round_robin_weight,omitempty"`
}

type PatternData struct {
	ListingName string   `yaml:"listing_name"`
	Frequency   string   `yaml:"frequency"`
	Interval    int      `yaml:"interval,omitempty"`
	DaysOfWeek  []int    `yaml:"days_of_week,omitempty"`
	DaysOfMonth []int    `yaml:"days_of_month,omitempty"`
	StartTime   string   `yaml:"start_time,omitempty"`
	EndTime     string   `yaml:"end_time,omitempty"`
	StartDate   string   `yaml:"start_date"`
	EndDate     string   `yaml:"end_date,omitempty"`
	Occurrences *int     `yaml:"occurrences,omitempty"`
	Exceptions  []string `yaml:"exception_dates,omitempty"`
	Timezone    string   `yaml:"timezone,omitempty"`
	MaxBookings int      `yaml:"max_bookings,omitempty"`
}

type seedFile struct {
	Listings    []ListingData    `yaml:"listings"`
	EventTypes  []EventTypeData  `yaml:"event_types"`
	TeamMembers []TeamMemberData `yaml:"team_members"`
	Patterns    []PatternData    `yaml:"patterns"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 5, 2*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Seed data loaded")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err = database.Initialize(dsn, &database.Options{LogLevel: logger.Warn})
		if err == nil {
			return db, nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(delay)
	}
	return nil, err
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var seed seedFile
	found := false
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var part seedFile
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		seed.Listings = append(seed.Listings, part.Listings...)
		seed.EventTypes = append(seed.EventTypes, part.EventTypes...)
		seed.TeamMembers = append(seed.TeamMembers, part.TeamMembers...)
		seed.Patterns = append(seed.Patterns, part.Patterns...)
		found = true
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no YAML files found under %s", dataDir)
	}

	listingMap := make(map[string]*models.Listing)
	for _, data := range seed.Listings {
		listing, created, err := createListing(db, data)
		if err != nil {
			return fmt.Errorf("listing %q: %w", data.Name, err)
		}
		listingMap[data.Name] = listing
		logCreated("listing", data.Name, created)
	}

	eventTypeMap := make(map[string]*models.EventType)
	for _, data := range seed.EventTypes {
		et, created, err := createEventType(db, data, listingMap)
		if err != nil {
			return fmt.Errorf("event type %q: %w", data.Name, err)
		}
		eventTypeMap[data.ListingName+"/"+data.Name] = et
		logCreated("event type", data.Name, created)
	}

	for _, data := range seed.TeamMembers {
		_, created, err := createTeamMember(db, data, listingMap, eventTypeMap)
		if err != nil {
			return fmt.Errorf("team member %q: %w", data.DisplayName, err)
		}
		logCreated("team member", data.DisplayName, created)
	}

	for i, data := range seed.Patterns {
		created, err := createPattern(db, data, listingMap)
		if err != nil {
			return fmt.Errorf("pattern %d (%s): %w", i, data.ListingName, err)
		}
		logCreated("pattern", fmt.Sprintf("%s/%s", data.ListingName, data.Frequency), created)
	}

	return nil
}

func logCreated(kind, name string, created bool) {
	if created {
		log.Printf("Created %s %q", kind, name)
	} else {
		log.Printf("Skipped existing %s %q", kind, name)
	}
}

func createListing(db *gorm.DB, data ListingData) (*models.Listing, bool, error) {
	var existing models.Listing
	err := db.Where("tenant_id = ? AND name = ?", data.TenantID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	listing := &models.Listing{
		TenantID: data.TenantID,
		Name:     data.Name,
		Timezone: data.Timezone,
		IsActive: data.IsActive == nil || *data.IsActive,
	}
	if listing.Timezone == "" {
		listing.Timezone = "UTC"
	}
	if err := db.Create(listing).Error; err != nil {
		return nil, false, err
	}
	return listing, true, nil
}

func createEventType(db *gorm.DB, data EventTypeData, listingMap map[string]*models.Listing) (*models.EventType, bool, error) {
	listing, ok := listingMap[data.ListingName]
	if !ok {
		return nil, false, fmt.Errorf("unknown listing %q", data.ListingName)
	}

	var existing models.EventType
	err := db.Where("listing_id = ? AND name = ?", listing.ID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	et := &models.EventType{
		ListingID:           listing.ID,
		Name:                data.Name,
		Description:         data.Description,
		DurationMinutes:     data.DurationMinutes,
		Price:               data.Price,
		Currency:            data.Currency,
		BufferBeforeMinutes: data.BufferBefore,
		BufferAfterMinutes:  data.BufferAfter,
		IsActive:            true,
	}
	if et.Currency == "" {
		et.Currency = "USD"
	}
	if err := db.Create(et).Error; err != nil {
		return nil, false, err
	}
	return et, true, nil
}

func createTeamMember(db *gorm.DB, data TeamMemberData, listingMap map[string]*models.Listing, eventTypeMap map[string]*models.EventType) (*models.TeamMember, bool, error) {
	listing, ok := listingMap[data.ListingName]
	if !ok {
		return nil, false, fmt.Errorf("unknown listing %q", data.ListingName)
	}

	var existing models.TeamMember
	err := db.Where("listing_id = ? AND display_name = ?", listing.ID, data.DisplayName).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	var eventTypeIDs models.UUIDSlice
	for _, name := range data.EventTypeNames {
		et, ok := eventTypeMap[data.ListingName+"/"+name]
		if !ok {
			return nil, false, fmt.Errorf("unknown event type %q", name)
		}
		eventTypeIDs = append(eventTypeIDs, et.ID)
	}

	role := models.TeamMemberRole(data.Role)
	if role == "" {
		role = models.TeamMemberRoleMember
	}
	weight := data.RoundRobinWeight
	if weight == 0 {
		weight = 1
	}

	member := &models.TeamMember{
		UserID:            uuid.New(),
		ListingID:         listing.ID,
		DisplayName:       data.DisplayName,
		Role:              role,
		EventTypeIDs:      eventTypeIDs,
		RoundRobinEnabled: data.RoundRobinEnabled == nil || *data.RoundRobinEnabled,
		RoundRobinWeight:  weight,
		IsActive:          true,
	}
	if err := db.Create(member).Error; err != nil {
		return nil, false, err
	}
	return member, true, nil
}

func createPattern(db *gorm.DB, data PatternData, listingMap map[string]*models.Listing) (bool, error) {
	listing, ok := listingMap[data.ListingName]
	if !ok {
		return false, fmt.Errorf("unknown listing %q", data.ListingName)
	}

	startDate, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start_date %q: %w", data.StartDate, err)
	}
	var endDate *time.Time
	if data.EndDate != "" {
		d, err := time.Parse("2006-01-02", data.EndDate)
		if err != nil {
			return false, fmt.Errorf("invalid end_date %q: %w", data.EndDate, err)
		}
		endDate = &d
	}

	// Patterns have no natural key; match on listing, frequency and start
	var count int64
	err = db.Model(&models.RecurringPattern{}).
		Where("listing_id = ? AND frequency = ? AND start_date = ? AND start_time = ?",
			listing.ID, data.Frequency, startDate, data.StartTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	interval := data.Interval
	if interval == 0 {
		interval = 1
	}
	maxBookings := data.MaxBookings
	if maxBookings == 0 {
		maxBookings = 1
	}
	tz := data.Timezone
	if tz == "" {
		tz = listing.Timezone
	}

	pattern := &models.RecurringPattern{
		ListingID:      listing.ID,
		Frequency:      models.PatternFrequency(data.Frequency),
		Interval:       interval,
		DaysOfWeek:     models.IntSlice(data.DaysOfWeek),
		DaysOfMonth:    models.IntSlice(data.DaysOfMonth),
		StartTime:      data.StartTime,
		EndTime:        data.EndTime,
		StartDate:      startDate,
		EndDate:        endDate,
		Occurrences:    data.Occurrences,
		ExceptionDates: models.StringSlice(data.Exceptions),
		Timezone:       tz,
		MaxBookings:    maxBookings,
		Active:         true,
	}
	if err := db.Create(pattern).Error; err != nil {
		return false, err
	}
	return true, nil
}
