package recurrence

import (
	"testing"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(timezone.NewConverter())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return out
}

func basePattern(freq models.PatternFrequency) *models.RecurringPattern {
	return &models.RecurringPattern{
		Frequency: freq,
		Interval:  1,
		StartDate: date(2025, 1, 1),
		Timezone:  "UTC",
		Active:    true,
	}
}

func TestExpand_DailyInterval(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Interval = 2

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 1, 8))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-01-03", "2025-01-05", "2025-01-07"}, formatDates(dates))
}

func TestExpand_WeeklyOnWeekdays(t *testing.T) {
	engine := newTestEngine()

	// Tuesdays and Thursdays, four occurrences, anchored on a Wednesday
	pattern := basePattern(models.PatternFrequencyWeekly)
	pattern.DaysOfWeek = models.IntSlice{2, 4}
	pattern.Occurrences = intPtr(4)

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-02", "2025-01-07", "2025-01-09", "2025-01-14"}, formatDates(dates))
}

func TestExpand_WeeklyEveryOtherWeek(t *testing.T) {
	engine := newTestEngine()

	// Anchored Monday 2025-01-06, every second week
	pattern := basePattern(models.PatternFrequencyWeekly)
	pattern.StartDate = date(2025, 1, 6)
	pattern.Interval = 2

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-06", "2025-01-20", "2025-02-03"}, formatDates(dates))
}

func TestExpand_ExceptionsConsumeOccurrences(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Occurrences = intPtr(3)
	pattern.ExceptionDates = models.StringSlice{"2025-01-02"}

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)

	// The excepted day is suppressed but still counts against the
	// occurrence budget, so the series does not extend to Jan 4
	assert.Equal(t, []string{"2025-01-01", "2025-01-03"}, formatDates(dates))
}

func TestExpand_OccurrenceBudgetAnchoredAtStartDate(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Occurrences = intPtr(5)

	// Querying a window that starts mid-series must not restart the count
	dates, err := engine.Expand(pattern, date(2025, 1, 3), date(2025, 1, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-03", "2025-01-04", "2025-01-05"}, formatDates(dates))
}

func TestExpand_MonthlyDayOfMonthPrecedence(t *testing.T) {
	engine := newTestEngine()

	// Both addressing modes populated: day-of-month wins
	pattern := basePattern(models.PatternFrequencyMonthly)
	pattern.DaysOfMonth = models.IntSlice{15}
	pattern.WeekOfMonth = intPtr(2)
	pattern.DaysOfWeek = models.IntSlice{1}

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-15", "2025-02-15", "2025-03-15"}, formatDates(dates))
}

func TestExpand_MonthlySkipsShortMonths(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyMonthly)
	pattern.StartDate = date(2025, 1, 31)

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 4, 30))
	require.NoError(t, err)

	// February has no 31st; the month is skipped, not coerced
	assert.Equal(t, []string{"2025-01-31", "2025-03-31"}, formatDates(dates))
}

func TestExpand_MonthlyNthWeekday(t *testing.T) {
	engine := newTestEngine()

	// Second Monday of each month
	pattern := basePattern(models.PatternFrequencyMonthly)
	pattern.StartDate = date(2025, 1, 13)
	pattern.WeekOfMonth = intPtr(2)
	pattern.DaysOfWeek = models.IntSlice{1}

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-13", "2025-02-10", "2025-03-10"}, formatDates(dates))
}

func TestExpand_YearlyEveryOtherYear(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyYearly)
	pattern.StartDate = date(2025, 3, 10)
	pattern.Interval = 2

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2030, 12, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10", "2027-03-10", "2029-03-10"}, formatDates(dates))
}

func TestExpand_EndDateBoundsSeries(t *testing.T) {
	engine := newTestEngine()

	end := date(2025, 1, 3)
	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.EndDate = &end

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03"}, formatDates(dates))
}

func TestExpand_InactivePatternProducesNothing(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Active = false

	dates, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpand_ConfigurationErrors(t *testing.T) {
	engine := newTestEngine()
	end := date(2025, 6, 1)

	tests := []struct {
		name    string
		mutate  func(*models.RecurringPattern)
		wantErr error
	}{
		{
			name:    "zero interval",
			mutate:  func(p *models.RecurringPattern) { p.Interval = 0 },
			wantErr: apperrors.ErrInvalidInterval,
		},
		{
			name: "both end date and occurrences",
			mutate: func(p *models.RecurringPattern) {
				p.EndDate = &end
				p.Occurrences = intPtr(3)
			},
			wantErr: apperrors.ErrAmbiguousTermination,
		},
		{
			name:    "day of week out of range",
			mutate:  func(p *models.RecurringPattern) { p.DaysOfWeek = models.IntSlice{0} },
			wantErr: apperrors.ErrInvalidDayOfWeek,
		},
		{
			name:    "duplicate day of week",
			mutate:  func(p *models.RecurringPattern) { p.DaysOfWeek = models.IntSlice{2, 2} },
			wantErr: apperrors.ErrInvalidDayOfWeek,
		},
		{
			name:    "unknown timezone",
			mutate:  func(p *models.RecurringPattern) { p.Timezone = "Mars/Olympus" },
			wantErr: apperrors.ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := basePattern(models.PatternFrequencyDaily)
			tt.mutate(pattern)

			_, err := engine.Expand(pattern, date(2025, 1, 1), date(2025, 1, 31))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpand_UnboundedWindowRejected(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)

	_, err := engine.Expand(pattern, date(2025, 1, 1), time.Time{})
	assert.ErrorIs(t, err, apperrors.ErrUnboundedWindow)
}

func TestExpand_OccurrenceBoundedWithoutWindowEnd(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Occurrences = intPtr(3)

	dates, err := engine.Expand(pattern, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03"}, formatDates(dates))
}

func TestMaterialize_AttachesWallClockTimes(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Timezone = "America/New_York"
	pattern.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pattern.StartTime = "09:00"
	pattern.EndTime = "10:30"
	pattern.MaxBookings = 2
	pattern.Occurrences = intPtr(1)

	slots, err := engine.Materialize(pattern, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, slots, 1)

	slot := slots[0]
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	assert.Equal(t, 9, slot.StartTime.In(loc).Hour())
	assert.Equal(t, 0, slot.StartTime.In(loc).Minute())
	assert.Equal(t, 10, slot.EndTime.In(loc).Hour())
	assert.Equal(t, 30, slot.EndTime.In(loc).Minute())
	assert.Equal(t, 2, slot.MaxBookings)
	assert.True(t, slot.Available)
	require.NotNil(t, slot.PatternID)
}

func TestMaterialize_FullDaySlotWithoutTimes(t *testing.T) {
	engine := newTestEngine()

	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Occurrences = intPtr(1)

	slots, err := engine.Materialize(pattern, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, 24*time.Hour, slots[0].EndTime.Sub(slots[0].StartTime))
}

func TestExpand_DSTTransitionKeepsDailyCadence(t *testing.T) {
	engine := newTestEngine()

	// US DST starts 2025-03-09; the series must not skip or double a day
	pattern := basePattern(models.PatternFrequencyDaily)
	pattern.Timezone = "America/New_York"
	pattern.StartDate = time.Date(2025, 3, 7, 5, 0, 0, 0, time.UTC)

	dates, err := engine.Expand(pattern,
		time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10", "2025-03-11"}, formatDates(dates))
}
