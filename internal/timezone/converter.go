package timezone

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "booking-scheduler-backend/internal/errors"
)

// Converter performs zone-database-backed date/time arithmetic. All
// wall-clock interpretation in the scheduling core routes through it.
// Construct with NewConverter and inject; the location cache is
// instance state, not package state.
type Converter struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

// NewConverter creates a converter with an empty location cache
func NewConverter() *Converter {
	return &Converter{
		cache: make(map[string]*time.Location),
	}
}

// Reset drops all cached locations. Intended for tests.
func (c *Converter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*time.Location)
}

// Location resolves an IANA zone name, caching the result. An unknown
// identifier is a configuration error, never a silent UTC fallback.
func (c *Converter) Location(zone string) (*time.Location, error) {
	if zone == "" {
		return nil, apperrors.ErrInvalidTimezone
	}

	c.mu.RLock()
	loc, ok := c.cache[zone]
	c.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, apperrors.ErrInvalidTimezone
	}

	c.mu.Lock()
	c.cache[zone] = loc
	c.mu.Unlock()
	return loc, nil
}

// IsValidZone reports whether the zone identifier resolves against the
// zone database
func (c *Converter) IsValidZone(zone string) bool {
	_, err := c.Location(zone)
	return err == nil
}

// Convert re-expresses an instant from one zone to another. Both zones
// are validated; the instant itself is unchanged.
func (c *Converter) Convert(t time.Time, fromZone, toZone string) (time.Time, error) {
	if _, err := c.Location(fromZone); err != nil {
		return time.Time{}, fmt.Errorf("source zone %q: %w", fromZone, err)
	}
	to, err := c.Location(toZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("target zone %q: %w", toZone, err)
	}
	return t.In(to), nil
}

// OffsetOf returns the UTC offset of the zone at the given instant,
// formatted as ±HH:MM
func (c *Converter) OffsetOf(zone string, at time.Time) (string, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return "", err
	}

	_, offsetSeconds := at.In(loc).Zone()
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	hours := offsetSeconds / 3600
	minutes := (offsetSeconds % 3600) / 60
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes), nil
}

// At anchors a wall-clock time "HH:MM" on the calendar day of the
// given date, interpreted in the zone
func (c *Converter) At(date time.Time, wallClock, zone string) (time.Time, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := ParseWallClock(wallClock)
	if err != nil {
		return time.Time{}, err
	}

	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc), nil
}

// StartOfDay returns midnight of the instant's calendar day in the zone
func (c *Converter) StartOfDay(t time.Time, zone string) (time.Time, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return time.Time{}, err
	}
	d := t.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), nil
}

// ParseWallClock parses an "HH:MM" wall-clock string
func ParseWallClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, &apperrors.ValidationError{Field: "wall_clock", Message: fmt.Sprintf("expected HH:MM, got %q", s)}
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, &apperrors.ValidationError{Field: "wall_clock", Message: fmt.Sprintf("invalid hour in %q", s)}
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, &apperrors.ValidationError{Field: "wall_clock", Message: fmt.Sprintf("invalid minute in %q", s)}
	}
	return hour, minute, nil
}
