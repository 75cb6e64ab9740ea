package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "booking-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperrors.ErrBookingNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.ErrListingNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrBookingConflict, http.StatusConflict},
		{"validation", &apperrors.ValidationError{Field: "start_time", Message: "required"}, http.StatusBadRequest},
		{"configuration", apperrors.ErrInvalidInterval, http.StatusBadRequest},
		{"invalid time range", apperrors.ErrInvalidTimeRange, http.StatusBadRequest},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid transition", apperrors.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"unbounded window", apperrors.ErrUnboundedWindow, http.StatusBadRequest},
		{"full slot", apperrors.ErrSlotNotBookable, http.StatusBadRequest},
		{"unknown backend", apperrors.ErrProviderNotRegistered, http.StatusBadRequest},
		{"degraded oracle", apperrors.ErrOracleDegraded, http.StatusServiceUnavailable},
		{"field errors", validator.ValidationErrors{}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestParseWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/occurrences"+query, nil)
		return c
	}

	t.Run("valid window", func(t *testing.T) {
		c := newContext("?start=2025-06-01T00:00:00Z&end=2025-06-08T00:00:00Z")

		start, end, err := parseWindow(c)

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-01T00:00:00Z", start.Format("2006-01-02T15:04:05Z07:00"))
		assert.True(t, start.Before(end))
	})

	t.Run("missing start", func(t *testing.T) {
		c := newContext("?end=2025-06-08T00:00:00Z")

		_, _, err := parseWindow(c)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})

	t.Run("malformed end", func(t *testing.T) {
		c := newContext("?start=2025-06-01T00:00:00Z&end=tomorrow")

		_, _, err := parseWindow(c)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})

	t.Run("inverted window", func(t *testing.T) {
		c := newContext("?start=2025-06-08T00:00:00Z&end=2025-06-01T00:00:00Z")

		_, _, err := parseWindow(c)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
	})
}
