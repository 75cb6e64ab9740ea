package handlers

import (
	"net/http"

	"booking-scheduler-backend/internal/database/models"
	"booking-scheduler-backend/internal/provider"
	"booking-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingService *service.BookingService
	registry       *provider.Registry
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService, registry *provider.Registry) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		registry:       registry,
	}
}

// CreateBooking handles POST /bookings
// @Summary Create a booking
// @Description Create a booking, running round-robin assignment and routing the write through the requested backend (defaults to local). A lost conflict race is retried once with the losing candidate excluded.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body service.CreateBookingRequest true "Booking request"
// @Success 201 {object} models.Booking "Successfully created booking"
// @Failure 400 {object} map[string]interface{} "Invalid booking request"
// @Failure 404 {object} map[string]interface{} "Listing or event type not found"
// @Failure 409 {object} map[string]interface{} "Booking conflict"
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBooking handles GET /bookings/:id
// @Summary Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} models.Booking "Successfully retrieved booking"
// @Failure 400 {object} map[string]interface{} "Invalid booking ID"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingByCode handles GET /bookings/code/:code
// @Summary Get booking by confirmation code
// @Tags bookings
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} models.Booking "Successfully retrieved booking"
// @Failure 400 {object} map[string]interface{} "Missing confirmation code"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /bookings/code/{code} [get]
func (h *BookingHandler) GetBookingByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing confirmation code"})
		return
	}

	booking, err := h.bookingService.GetByConfirmationCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings handles GET /listings/:id/bookings
// @Summary List bookings for a listing
// @Tags bookings
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {object} map[string]interface{} "Bookings in the window"
// @Failure 400 {object} map[string]interface{} "Invalid listing ID or window"
// @Router /listings/{id}/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
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

	bookings, err := h.bookingService.ListByWindow(c.Request.Context(), listingID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// UpdateStatusRequest represents a booking status transition
type UpdateStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus handles PATCH /bookings/:id/status
// @Summary Transition a booking's status
// @Description Move the booking to a new lifecycle status. Transitions out of terminal states are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} models.Booking "Successfully updated booking"
// @Failure 400 {object} map[string]interface{} "Invalid status transition"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingRequest carries an optional cancellation reason
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking handles POST /bookings/:id/cancel
// @Summary Cancel a booking
// @Description Cancel a booking, recording when and why. Cancellation is a status transition; the row is never deleted.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Param reason body CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} models.Booking "Successfully cancelled booking"
// @Failure 400 {object} map[string]interface{} "Invalid transition"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// SyncBookings handles POST /listings/:id/sync
// @Summary Reconcile bookings with a backend
// @Description Pull the listing's bookings from the named backend and upsert the local mirrors.
// @Tags bookings
// @Produce json
// @Param id path string true "Listing ID (UUID)"
// @Param backend query string false "Backend identifier" default(remote)
// @Success 200 {object} provider.SyncResult "Reconciliation outcome"
// @Failure 400 {object} map[string]interface{} "Invalid listing ID or unregistered backend"
// @Router /listings/{id}/sync [post]
func (h *BookingHandler) SyncBookings(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	backend := models.ProviderBackend(c.DefaultQuery("backend", string(models.ProviderBackendRemote)))
	prov, err := h.registry.Get(backend)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := prov.SyncBookings(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
