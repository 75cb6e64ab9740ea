package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents a mis-configured pattern, member or
// integration. Configuration errors fail fast at definition time and
// are never coerced to a default.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ConflictError represents a retryable conflict caught at the
// persistence boundary, such as a lost double-booking race. Callers
// should re-run assignment and retry the write.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// DataAccessError wraps an infrastructure failure from the booking or
// history data source, distinct from expected empty business outcomes.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failure during %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrListingNotFound             = &NotFoundError{Entity: "listing"}
	ErrEventTypeNotFound           = &NotFoundError{Entity: "event type"}
	ErrTeamMemberNotFound          = &NotFoundError{Entity: "team member"}
	ErrRecurringPatternNotFound    = &NotFoundError{Entity: "recurring pattern"}
	ErrAvailabilitySlotNotFound    = &NotFoundError{Entity: "availability slot"}
	ErrBookingNotFound             = &NotFoundError{Entity: "booking"}
	ErrCalendarIntegrationNotFound = &NotFoundError{Entity: "calendar integration"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrSlotNotBookable         = errors.New("availability slot is full or unavailable")
	ErrBookingConflict         = &ConflictError{Message: "booking interval conflicts with an existing booking"}
	ErrProviderNotRegistered   = errors.New("booking provider backend is not registered")
)

// Configuration Errors
var (
	ErrInvalidInterval         = &ConfigurationError{Message: "pattern interval must be a positive integer"}
	ErrAmbiguousTermination    = &ConfigurationError{Message: "pattern may set end date or occurrences, not both"}
	ErrInvalidDayOfWeek        = &ConfigurationError{Message: "days of week must be within 1-7"}
	ErrInvalidTimezone         = &ConfigurationError{Message: "unknown IANA timezone identifier"}
	ErrUnboundedWindow         = &ConfigurationError{Message: "unbounded pattern requires a bounded expansion window"}
	ErrInvalidRoundRobinWeight = &ConfigurationError{Message: "round robin weight must be greater than zero"}
)

// Oracle Errors
var (
	// ErrOracleDegraded signals the external calendar oracle could not
	// answer in time. Advisory only: availability checks log and skip.
	ErrOracleDegraded = errors.New("calendar conflict oracle degraded or unavailable")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsConflict checks if an error is a retryable ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsDataAccess checks if an error is a DataAccessError
func IsDataAccess(err error) bool {
	var dataErr *DataAccessError
	return errors.As(err, &dataErr)
}
