package handlers

import (
	"net/http"
	"time"

	"booking-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for round-robin assignment
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// AssignRequest represents a dry-run assignment query
type AssignRequest struct {
	ListingID   uuid.UUID `json:"listing_id" binding:"required"`
	EventTypeID uuid.UUID `json:"event_type_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Timezone    string    `json:"timezone" binding:"required"`
}

// Assign handles POST /assignments/preview. It runs the full selection
// without creating a booking, answering "who would get this?".
// @Summary Preview a round-robin assignment
// @Description Run eligibility, availability and weighted fairness scoring for the interval and report which member would be assigned. No booking is created.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body AssignRequest true "Assignment query"
// @Success 200 {object} map[string]interface{} "Assignment verdict"
// @Failure 400 {object} map[string]interface{} "Invalid assignment query"
// @Router /assignments/preview [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.assignmentService.Assign(c.Request.Context(), req.EventTypeID, req.ListingID, req.StartTime, req.EndTime, req.Timezone)
	if err != nil {
		respondError(c, err)
		return
	}
	if member == nil {
		c.JSON(http.StatusOK, gin.H{"assigned": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assigned":       true,
		"team_member_id": member.ID,
		"user_id":        member.UserID,
	})
}
