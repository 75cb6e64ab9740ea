package handlers

import (
	"net/http"

	"booking-scheduler-backend/internal/database/models"
	"booking-scheduler-backend/internal/provider"
	"booking-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for availability queries
type AvailabilityHandler struct {
	availabilityService *service.AvailabilityService
	memberService       service.TeamMemberSource
	patternService      *service.PatternService
	registry            *provider.Registry
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(
	availabilityService *service.AvailabilityService,
	memberService service.TeamMemberSource,
	patternService *service.PatternService,
	registry *provider.Registry,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
		memberService:       memberService,
		patternService:      patternService,
		registry:            registry,
	}
}

// CheckMemberAvailability handles GET /team-members/:id/availability
// @Summary Check a team member's availability
// @Description Resolve whether the member is free for [start, end): booking conflicts, then availability overrides, then the external conflict oracle.
// @Tags availability
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param start query string true "Interval start (RFC 3339)"
// @Param end query string true "Interval end (RFC 3339)"
// @Param timezone query string false "IANA timezone" default(UTC)
// @Success 200 {object} map[string]interface{} "Availability verdict"
// @Failure 400 {object} map[string]interface{} "Invalid member ID or window"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Router /team-members/{id}/availability [get]
func (h *AvailabilityHandler) CheckMemberAvailability(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team member ID"})
		return
	}

	start, end, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tz := c.DefaultQuery("timezone", "UTC")

	member, err := h.memberService.GetByID(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	available, err := h.availabilityService.IsAvailable(c.Request.Context(), member, start, end, tz)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"team_member_id": memberID,
		"start":          start,
		"end":            end,
		"available":      available,
	})
}

// GetListingSlots handles GET /listings/:id/slots
// @Summary Get bookable slots for a listing
// @Tags availability
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Param backend query string false "Backend identifier" default(local)
// @Success 200 {object} map[string]interface{} "Bookable slots"
// @Failure 400 {object} map[string]interface{} "Invalid listing ID, window or backend"
// @Router /listings/{id}/slots [get]
func (h *AvailabilityHandler) GetListingSlots(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	start, end, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	backend := models.ProviderBackend(c.DefaultQuery("backend", string(models.ProviderBackendLocal)))
	prov, err := h.registry.Get(backend)
	if err != nil {
		respondError(c, err)
		return
	}

	slots, err := prov.GetAvailability(c.Request.Context(), listingID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// PreviewListingSlots handles GET /listings/:id/slots/preview, expanding
// the listing's active patterns without touching stored slots
// @Summary Preview slots from a listing's patterns
// @Description Expand every active pattern of the listing over the window without persisting anything.
// @Tags availability
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {object} map[string]interface{} "Previewed slots"
// @Failure 400 {object} map[string]interface{} "Invalid listing ID or window"
// @Router /listings/{id}/slots/preview [get]
func (h *AvailabilityHandler) PreviewListingSlots(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	start, end, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := h.patternService.ExpandListing(c.Request.Context(), listingID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}
