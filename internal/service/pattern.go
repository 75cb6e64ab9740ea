package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/recurrence"
	"booking-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatternService handles business logic for recurring availability patterns
type PatternService struct {
	repo      *repository.RecurringPatternRepository
	listings  *repository.ListingRepository
	engine    *recurrence.Engine
	validator *validator.Validate
}

// NewPatternService creates a new pattern service
func NewPatternService(repo *repository.RecurringPatternRepository, listings *repository.ListingRepository, engine *recurrence.Engine, validator *validator.Validate) *PatternService {
	return &PatternService{
		repo:      repo,
		listings:  listings,
		engine:    engine,
		validator: validator,
	}
}

// CreatePatternRequest represents the request to create a recurring pattern
type CreatePatternRequest struct {
	ListingID    uuid.UUID               `json:"listing_id" validate:"required"`
	TeamMemberID *uuid.UUID              `json:"team_member_id,omitempty"`
	Frequency    models.PatternFrequency `json:"frequency" validate:"required"`
	Interval     int                     `json:"interval" validate:"required,min=1"`
	DaysOfWeek   []int                   `json:"days_of_week,omitempty"`
	DaysOfMonth  []int                   `json:"days_of_month,omitempty"`
	WeekOfMonth  *int                    `json:"week_of_month,omitempty"`
	MonthOfYear  *int                    `json:"month_of_year,omitempty"`
	StartTime    string                  `json:"start_time,omitempty"`
	EndTime      string                  `json:"end_time,omitempty"`
	StartDate    time.Time               `json:"start_date" validate:"required"`
	EndDate      *time.Time              `json:"end_date,omitempty"`
	Occurrences  *int                    `json:"occurrences,omitempty"`
	Exceptions   []string                `json:"exception_dates,omitempty"`
	Timezone     string                  `json:"timezone" validate:"required"`
	MaxBookings  int                     `json:"max_bookings,omitempty"`
}

// UpdatePatternRequest represents the request to update a recurring pattern
type UpdatePatternRequest struct {
	Interval    *int       `json:"interval,omitempty"`
	DaysOfWeek  []int      `json:"days_of_week,omitempty"`
	DaysOfMonth []int      `json:"days_of_month,omitempty"`
	WeekOfMonth *int       `json:"week_of_month,omitempty"`
	MonthOfYear *int       `json:"month_of_year,omitempty"`
	StartTime   *string    `json:"start_time,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Occurrences *int       `json:"occurrences,omitempty"`
	Exceptions  []string   `json:"exception_dates,omitempty"`
	MaxBookings *int       `json:"max_bookings,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// Create validates and persists a new recurring pattern. Configuration
// errors fail here, before any expansion can run.
func (s *PatternService) Create(ctx context.Context, req *CreatePatternRequest) (*models.RecurringPattern, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.listings.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to verify listing: %w", err)
	}

	maxBookings := req.MaxBookings
	if maxBookings == 0 {
		maxBookings = 1
	}

	pattern := &models.RecurringPattern{
		ListingID:      req.ListingID,
		TeamMemberID:   req.TeamMemberID,
		Frequency:      req.Frequency,
		Interval:       req.Interval,
		DaysOfWeek:     models.IntSlice(req.DaysOfWeek),
		DaysOfMonth:    models.IntSlice(req.DaysOfMonth),
		WeekOfMonth:    req.WeekOfMonth,
		MonthOfYear:    req.MonthOfYear,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Occurrences:    req.Occurrences,
		ExceptionDates: models.StringSlice(req.Exceptions),
		Timezone:       req.Timezone,
		MaxBookings:    maxBookings,
		Active:         true,
	}

	if err := s.engine.Validate(pattern); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, pattern); err != nil {
		return nil, fmt.Errorf("failed to create pattern: %w", err)
	}
	return pattern, nil
}

// GetByID retrieves a pattern by ID
func (s *PatternService) GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringPattern, error) {
	pattern, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return pattern, nil
}

// Update applies a partial update, revalidating the result before it
// is persisted
func (s *PatternService) Update(ctx context.Context, id uuid.UUID, req *UpdatePatternRequest) (*models.RecurringPattern, error) {
	pattern, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Interval != nil {
		pattern.Interval = *req.Interval
	}
	if req.DaysOfWeek != nil {
		pattern.DaysOfWeek = models.IntSlice(req.DaysOfWeek)
	}
	if req.DaysOfMonth != nil {
		pattern.DaysOfMonth = models.IntSlice(req.DaysOfMonth)
	}
	if req.WeekOfMonth != nil {
		pattern.WeekOfMonth = req.WeekOfMonth
	}
	if req.MonthOfYear != nil {
		pattern.MonthOfYear = req.MonthOfYear
	}
	if req.StartTime != nil {
		pattern.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		pattern.EndTime = *req.EndTime
	}
	if req.EndDate != nil {
		pattern.EndDate = req.EndDate
	}
	if req.Occurrences != nil {
		pattern.Occurrences = req.Occurrences
	}
	if req.Exceptions != nil {
		pattern.ExceptionDates = models.StringSlice(req.Exceptions)
	}
	if req.MaxBookings != nil {
		pattern.MaxBookings = *req.MaxBookings
	}
	if req.Active != nil {
		pattern.Active = *req.Active
	}

	if err := s.engine.Validate(pattern); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, pattern); err != nil {
		return nil, fmt.Errorf("failed to update pattern: %w", err)
	}
	return pattern, nil
}

// Deactivate soft-terminates a pattern
func (s *PatternService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecurringPatternNotFound
		}
		return fmt.Errorf("failed to deactivate pattern: %w", err)
	}
	return nil
}

// Expand materializes a stored pattern into availability slot
// candidates within the window
func (s *PatternService) Expand(ctx context.Context, id uuid.UUID, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error) {
	pattern, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.Materialize(pattern, windowStart, windowEnd)
}

// ExpandListing materializes every active pattern of a listing within
// the window, in pattern creation order
func (s *PatternService) ExpandListing(ctx context.Context, listingID uuid.UUID, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error) {
	patterns, err := s.repo.GetActiveByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	var slots []models.AvailabilitySlot
	for i := range patterns {
		expanded, err := s.engine.Materialize(&patterns[i], windowStart, windowEnd)
		if err != nil {
			return nil, err
		}
		slots = append(slots, expanded...)
	}
	return slots, nil
}
