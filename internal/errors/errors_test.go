package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorComparison(t *testing.T) {
	assert.True(t, errors.Is(ErrBookingNotFound, &NotFoundError{Entity: "booking"}))
	assert.False(t, errors.Is(ErrBookingNotFound, ErrListingNotFound))

	wrapped := fmt.Errorf("lookup failed: %w", ErrTeamMemberNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrTeamMemberNotFound))
}

func TestConflictErrorComparison(t *testing.T) {
	assert.True(t, IsConflict(ErrBookingConflict))

	wrapped := fmt.Errorf("create failed: %w", ErrBookingConflict)
	assert.True(t, IsConflict(wrapped))
	assert.True(t, errors.Is(wrapped, ErrBookingConflict))

	assert.False(t, IsConflict(ErrInvalidTimeRange))
	assert.False(t, IsConflict(nil))
}

func TestDataAccessErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := &DataAccessError{Op: "booking conflict check", Err: cause}

	assert.True(t, IsDataAccess(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "booking conflict check")
}

func TestConfigurationErrorCategory(t *testing.T) {
	assert.True(t, IsConfiguration(ErrInvalidInterval))
	assert.True(t, IsConfiguration(ErrInvalidTimezone))
	assert.True(t, IsConfiguration(fmt.Errorf("validate: %w", ErrUnboundedWindow)))
	assert.False(t, IsConfiguration(ErrInvalidTimeRange))
}

func TestValidationErrorMessage(t *testing.T) {
	withField := &ValidationError{Field: "timezone", Message: "is required"}
	assert.Contains(t, withField.Error(), "timezone")

	bare := &ValidationError{Message: "something is off"}
	assert.Contains(t, bare.Error(), "something is off")

	assert.True(t, IsValidation(withField))
	assert.False(t, IsValidation(ErrInvalidStatus))
}
