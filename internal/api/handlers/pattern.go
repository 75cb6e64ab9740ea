package handlers

import (
	"net/http"
	"time"

	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatternHandler handles HTTP requests for recurring pattern operations
type PatternHandler struct {
	patternService *service.PatternService
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(patternService *service.PatternService) *PatternHandler {
	return &PatternHandler{
		patternService: patternService,
	}
}

// CreatePattern handles POST /patterns
// @Summary Create a recurring pattern
// @Description Create a recurring availability pattern for a listing. A pattern may be bounded by end_date or occurrences, but not both.
// @Tags patterns
// @Accept json
// @Produce json
// @Param pattern body service.CreatePatternRequest true "Pattern definition"
// @Success 201 {object} models.RecurringPattern "Successfully created pattern"
// @Failure 400 {object} map[string]interface{} "Invalid pattern definition"
// @Failure 404 {object} map[string]interface{} "Listing not found"
// @Router /patterns [post]
func (h *PatternHandler) CreatePattern(c *gin.Context) {
	var req service.CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pattern, err := h.patternService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pattern)
}

// GetPattern handles GET /patterns/:id
// @Summary Get pattern by ID
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} models.RecurringPattern "Successfully retrieved pattern"
// @Failure 400 {object} map[string]interface{} "Invalid pattern ID"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Router /patterns/{id} [get]
func (h *PatternHandler) GetPattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	pattern, err := h.patternService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pattern)
}

// UpdatePattern handles PATCH /patterns/:id
// @Summary Update a recurring pattern
// @Description Apply a partial update; the merged pattern is revalidated as a whole.
// @Tags patterns
// @Accept json
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Param pattern body service.UpdatePatternRequest true "Fields to update"
// @Success 200 {object} models.RecurringPattern "Successfully updated pattern"
// @Failure 400 {object} map[string]interface{} "Invalid update"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Router /patterns/{id} [patch]
func (h *PatternHandler) UpdatePattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	var req service.UpdatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pattern, err := h.patternService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pattern)
}

// DeactivatePattern handles DELETE /patterns/:id
// @Summary Deactivate a recurring pattern
// @Description Deactivate a pattern so it stops producing occurrences. The row is kept.
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} map[string]interface{} "Pattern deactivated"
// @Failure 400 {object} map[string]interface{} "Invalid pattern ID"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Router /patterns/{id} [delete]
func (h *PatternHandler) DeactivatePattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	if err := h.patternService.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pattern deactivated"})
}

// ExpandPattern handles GET /patterns/:id/occurrences
// @Summary Expand a pattern into concrete slots
// @Description Expand the pattern over [start, end]; both window bounds are inclusive.
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {object} map[string]interface{} "Expanded slots"
// @Failure 400 {object} map[string]interface{} "Invalid window"
// @Failure 404 {object} map[string]interface{} "Pattern not found"
// @Router /patterns/{id}/occurrences [get]
func (h *PatternHandler) ExpandPattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pattern ID"})
		return
	}

	windowStart, windowEnd, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := h.patternService.Expand(c.Request.Context(), id, windowStart, windowEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// parseWindow reads the start/end query params as RFC 3339 timestamps
func parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidTimeRange
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidTimeRange
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidTimeRange
	}
	return start, end, nil
}
