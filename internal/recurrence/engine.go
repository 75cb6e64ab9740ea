package recurrence

import (
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/timezone"
)

// Engine expands recurring patterns into concrete calendar dates and
// availability slots. Expansion is a pure function of its inputs: the
// same pattern and window always produce the same sequence.
type Engine struct {
	tz *timezone.Converter
}

// NewEngine constructs an Engine backed by the given timezone converter
func NewEngine(tz *timezone.Converter) *Engine {
	return &Engine{tz: tz}
}

// Validate fails fast on configuration errors before any expansion runs
func (e *Engine) Validate(pattern *models.RecurringPattern) error {
	if !pattern.Frequency.IsValid() {
		return &apperrors.ConfigurationError{Message: "unknown pattern frequency"}
	}
	if pattern.Interval < 1 {
		return apperrors.ErrInvalidInterval
	}
	if pattern.EndDate != nil && pattern.Occurrences != nil {
		return apperrors.ErrAmbiguousTermination
	}
	if pattern.Occurrences != nil && *pattern.Occurrences < 1 {
		return &apperrors.ConfigurationError{Message: "occurrences must be a positive integer"}
	}
	seen := make(map[int]bool, len(pattern.DaysOfWeek))
	for _, d := range pattern.DaysOfWeek {
		if d < 1 || d > 7 || seen[d] {
			return apperrors.ErrInvalidDayOfWeek
		}
		seen[d] = true
	}
	for _, d := range pattern.DaysOfMonth {
		if d < 1 || d > 31 {
			return &apperrors.ConfigurationError{Message: "days of month must be within 1-31"}
		}
	}
	if pattern.WeekOfMonth != nil && (*pattern.WeekOfMonth < 1 || *pattern.WeekOfMonth > 5) {
		return &apperrors.ConfigurationError{Message: "week of month must be within 1-5"}
	}
	if pattern.MonthOfYear != nil && (*pattern.MonthOfYear < 1 || *pattern.MonthOfYear > 12) {
		return &apperrors.ConfigurationError{Message: "month of year must be within 1-12"}
	}
	if !e.tz.IsValidZone(pattern.Timezone) {
		return apperrors.ErrInvalidTimezone
	}
	if pattern.StartTime != "" {
		if _, _, err := timezone.ParseWallClock(pattern.StartTime); err != nil {
			return err
		}
	}
	if pattern.EndTime != "" {
		if _, _, err := timezone.ParseWallClock(pattern.EndTime); err != nil {
			return err
		}
	}
	return nil
}

// Expand returns the concrete calendar dates (midnight in the pattern's
// timezone) the pattern matches within [windowStart, windowEnd], both
// bounds inclusive. Occurrence counting is anchored at the pattern's
// StartDate, so a window queried mid-series still respects the original
// occurrence budget. Exception dates suppress output but still consume
// their occurrence. An inactive pattern expands to nothing.
func (e *Engine) Expand(pattern *models.RecurringPattern, windowStart, windowEnd time.Time) ([]time.Time, error) {
	if !pattern.Active {
		return nil, nil
	}
	if err := e.Validate(pattern); err != nil {
		return nil, err
	}

	loc, err := e.tz.Location(pattern.Timezone)
	if err != nil {
		return nil, err
	}

	anchor := dayOf(pattern.StartDate, loc)

	// Upper bound: the earlier of the window end and the pattern end date.
	// A rule with neither terminator must be queried with a bounded window.
	var upper time.Time
	hasUpper := false
	if !windowEnd.IsZero() {
		upper = dayOf(windowEnd, loc)
		hasUpper = true
	}
	if pattern.EndDate != nil {
		end := dayOf(*pattern.EndDate, loc)
		if !hasUpper || end.Before(upper) {
			upper = end
		}
		hasUpper = true
	}
	if !hasUpper && pattern.Occurrences == nil {
		return nil, apperrors.ErrUnboundedWindow
	}
	if !windowEnd.IsZero() && !windowStart.IsZero() && windowEnd.Before(windowStart) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	lower := anchor
	if !windowStart.IsZero() {
		if ws := dayOf(windowStart, loc); ws.After(lower) {
			lower = ws
		}
	}

	budget := -1
	if pattern.Occurrences != nil {
		budget = *pattern.Occurrences
	}

	// Horizon for occurrence-bounded expansion with no window end: a rule
	// that can never produce its remaining occurrences must still terminate.
	horizon := anchor.AddDate(100, 0, 0)

	var dates []time.Time
	produced := 0
	for day := anchor; ; day = day.AddDate(0, 0, 1) {
		if hasUpper && day.After(upper) {
			break
		}
		if !hasUpper && day.After(horizon) {
			break
		}
		if budget >= 0 && produced >= budget {
			break
		}
		if !e.matches(pattern, anchor, day) {
			continue
		}
		produced++
		if day.Before(lower) {
			continue
		}
		if pattern.HasException(day) {
			continue
		}
		dates = append(dates, day)
	}

	return dates, nil
}

// Materialize expands the pattern and attaches its wall-clock window to
// each date, yielding availability slot candidates. A pattern without
// start/end times produces full-day slots.
func (e *Engine) Materialize(pattern *models.RecurringPattern, windowStart, windowEnd time.Time) ([]models.AvailabilitySlot, error) {
	dates, err := e.Expand(pattern, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]models.AvailabilitySlot, 0, len(dates))
	for _, date := range dates {
		start := date
		end := date.AddDate(0, 0, 1)
		if pattern.StartTime != "" {
			if start, err = e.tz.At(date, pattern.StartTime, pattern.Timezone); err != nil {
				return nil, err
			}
		}
		if pattern.EndTime != "" {
			if end, err = e.tz.At(date, pattern.EndTime, pattern.Timezone); err != nil {
				return nil, err
			}
		}
		patternID := pattern.ID
		slots = append(slots, models.AvailabilitySlot{
			ListingID:    pattern.ListingID,
			PatternID:    &patternID,
			TeamMemberID: pattern.TeamMemberID,
			Date:         date,
			StartTime:    start,
			EndTime:      end,
			Available:    true,
			MaxBookings:  pattern.MaxBookings,
		})
	}
	return slots, nil
}

// matches reports whether a calendar day belongs to the pattern's
// series, ignoring window bounds and exceptions
func (e *Engine) matches(pattern *models.RecurringPattern, anchor, day time.Time) bool {
	switch pattern.Frequency {
	case models.PatternFrequencyDaily:
		days := daysBetween(anchor, day)
		return days%pattern.Interval == 0

	case models.PatternFrequencyWeekly:
		weeks := daysBetween(weekStart(anchor), weekStart(day)) / 7
		if weeks%pattern.Interval != 0 {
			return false
		}
		if len(pattern.DaysOfWeek) == 0 {
			return isoWeekday(day) == isoWeekday(anchor)
		}
		return pattern.DaysOfWeek.Contains(isoWeekday(day))

	case models.PatternFrequencyMonthly:
		months := monthsBetween(anchor, day)
		if months%pattern.Interval != 0 {
			return false
		}
		// Day-of-month addressing takes precedence when both modes are set
		if len(pattern.DaysOfMonth) > 0 {
			return pattern.DaysOfMonth.Contains(day.Day())
		}
		if pattern.WeekOfMonth != nil {
			if !nthWeekdayOfMonth(day, *pattern.WeekOfMonth) {
				return false
			}
			if len(pattern.DaysOfWeek) == 0 {
				return isoWeekday(day) == isoWeekday(anchor)
			}
			return pattern.DaysOfWeek.Contains(isoWeekday(day))
		}
		return day.Day() == anchor.Day()

	case models.PatternFrequencyYearly:
		years := day.Year() - anchor.Year()
		if years%pattern.Interval != 0 {
			return false
		}
		month := anchor.Month()
		if pattern.MonthOfYear != nil {
			month = time.Month(*pattern.MonthOfYear)
		}
		return day.Month() == month && day.Day() == anchor.Day()
	}
	return false
}

// dayOf truncates an instant to midnight of its calendar day in loc
func dayOf(t time.Time, loc *time.Location) time.Time {
	d := t.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days from a to b. Computed from the
// date fields so DST transitions cannot skew the count.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// isoWeekday maps to ISO numbering: 1 (Monday) .. 7 (Sunday)
func isoWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// weekStart returns the Monday of the day's ISO week
func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, 1-isoWeekday(t))
}

// nthWeekdayOfMonth reports whether the day is in the nth weekday block
// of its month (1..5)
func nthWeekdayOfMonth(day time.Time, n int) bool {
	return (day.Day()-1)/7+1 == n
}
