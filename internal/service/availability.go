package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booking-scheduler-backend/internal/calendar"
	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/timezone"
)

// AvailabilityService decides whether a team member is free for a
// candidate interval. The decision is side-effect-free and consults, in
// order: booking conflicts, the member's availability override, and the
// external calendar conflict oracle.
type AvailabilityService struct {
	bookings     BookingConflictSource
	integrations CalendarIntegrationSource
	oracle       calendar.ConflictChecker
	tz           *timezone.Converter
	timeout      time.Duration
	log          *logger.Logger
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	bookings BookingConflictSource,
	integrations CalendarIntegrationSource,
	oracle calendar.ConflictChecker,
	tz *timezone.Converter,
	timeout time.Duration,
) *AvailabilityService {
	if oracle == nil {
		oracle = calendar.NoopChecker{}
	}
	return &AvailabilityService{
		bookings:     bookings,
		integrations: integrations,
		oracle:       oracle,
		tz:           tz,
		timeout:      timeout,
		log:          logger.New(),
	}
}

// IsAvailable reports whether the member is free for [start, end).
//
// Booking-conflict lookups fail closed: a data-access error or timeout
// makes the member unavailable and surfaces the error, because a missed
// conflict means a double-booking. The calendar oracle is advisory; a
// degraded oracle is logged and skipped, never treated as a conflict.
func (s *AvailabilityService) IsAvailable(ctx context.Context, member *models.TeamMember, start, end time.Time, tz string) (bool, error) {
	if !end.After(start) {
		return false, apperrors.ErrInvalidTimeRange
	}
	if tz == "" {
		tz = "UTC"
	}
	if _, err := s.tz.Location(tz); err != nil {
		return false, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// 1. Booking conflicts (fail closed)
	conflicts, err := s.bookings.GetConflicting(ctx, member.ID, start, end)
	if err != nil {
		return false, &apperrors.DataAccessError{Op: "booking conflict check", Err: err}
	}
	if len(conflicts) > 0 {
		return false, nil
	}

	// 2. Override schedule
	ok, err := s.overrideAllows(member, start, end, tz)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	// 3. External calendar conflict oracle (advisory)
	conflict, err := s.oracleConflict(ctx, member, start, end)
	if err != nil {
		s.log.WithError(err).WithField("team_member_id", member.ID).
			Warn("calendar oracle degraded, skipping external conflict check")
	} else if conflict {
		return false, nil
	}

	return true, nil
}

// overrideAllows evaluates the member's availability override for the
// candidate interval. Days absent from the map are open; a closed day
// denies; an open day requires the interval to fall entirely within
// its window.
func (s *AvailabilityService) overrideAllows(member *models.TeamMember, start, end time.Time, tz string) (bool, error) {
	if member.AvailabilityOverride == nil {
		return true, nil
	}

	loc, err := s.tz.Location(tz)
	if err != nil {
		return false, err
	}
	localStart := start.In(loc)
	weekday := strings.ToLower(localStart.Weekday().String())

	window, ok := member.AvailabilityOverride[weekday]
	if !ok {
		return true, nil
	}
	if !window.Open {
		return false, nil
	}

	windowStart, err := s.tz.At(localStart, window.Start, tz)
	if err != nil {
		return false, fmt.Errorf("override window for %s: %w", weekday, err)
	}
	windowEnd, err := s.tz.At(localStart, window.End, tz)
	if err != nil {
		return false, fmt.Errorf("override window for %s: %w", weekday, err)
	}

	// Partial overlap is unavailable: the interval must fit the window
	return !start.Before(windowStart) && !end.After(windowEnd), nil
}

// oracleConflict asks the conflict oracle once per member when at
// least one enabled, sync-enabled integration exists
func (s *AvailabilityService) oracleConflict(ctx context.Context, member *models.TeamMember, start, end time.Time) (bool, error) {
	integrations, err := s.integrations.GetActiveByUserID(ctx, member.UserID)
	if err != nil {
		return false, fmt.Errorf("%w: listing calendar integrations: %v", apperrors.ErrOracleDegraded, err)
	}
	if len(integrations) == 0 {
		return false, nil
	}

	conflict, err := s.oracle.HasConflict(ctx, member.UserID, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrOracleDegraded) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", apperrors.ErrOracleDegraded, err)
	}
	return conflict, nil
}
