package handlers

import (
	"errors"
	"net/http"

	"felka-transportes-backend/internal/auth"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchedulingHandler handles HTTP requests for cargo scheduling operations
type SchedulingHandler struct {
	schedulingService service.SchedulingServiceInterface
}

// NewSchedulingHandler creates a new scheduling handler
func NewSchedulingHandler(schedulingService service.SchedulingServiceInterface) *SchedulingHandler {
	return &SchedulingHandler{
		schedulingService: schedulingService,
	}
}

// schedulingError maps the scheduling policy errors to HTTP statuses.
// Terminal-state and capacity violations are conflicts; the cancellation
// window is a forbidden action on a valid resource.
func schedulingError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidDateFormat),
		errors.Is(err, apperrors.ErrInvalidTimeSlot),
		errors.Is(err, apperrors.ErrInvalidManagerAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCancellationWindow):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsPolicyViolation(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// GetSlots handles GET /cargo-scheduling/slots
// @Summary List schedule slots
// @Description Get schedule slots for an exact date, or all slots with all=true
// @Tags scheduling
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param all query string false "Set to true to list every slot"
// @Success 200 {array} service.SlotResponse "Successfully retrieved slots"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Router /cargo-scheduling/slots [get]
func (h *SchedulingHandler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")

	var slots []service.SlotResponse
	var err error
	if dateStr != "" {
		slots, err = h.schedulingService.GetSlots(dateStr)
	} else {
		slots, err = h.schedulingService.GetAllSlots()
	}
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateWeekSlots handles POST /cargo-scheduling/create-week
// @Summary Generate a week of schedule slots
// @Description Create slots for 7 consecutive days on the configured hour grid; existing date/time pairs are skipped
// @Tags scheduling
// @Accept json
// @Produce json
// @Param request body service.CreateWeekRequest true "Week generation request"
// @Success 201 {object} service.CreateWeekResponse "Slots created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /cargo-scheduling/create-week [post]
func (h *SchedulingHandler) CreateWeekSlots(c *gin.Context) {
	var req service.CreateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.schedulingService.CreateWeekSlots(&req)
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// BlockSlots handles POST /cargo-scheduling/block-slots
// @Summary Block schedule slots
// @Description Mark the given slots unavailable for booking
// @Tags scheduling
// @Accept json
// @Produce json
// @Param request body service.BlockSlotsRequest true "Slot IDs to block"
// @Success 200 {object} service.BlockSlotsResponse "Slots blocked"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /cargo-scheduling/block-slots [post]
func (h *SchedulingHandler) BlockSlots(c *gin.Context) {
	var req service.BlockSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.schedulingService.BlockSlots(&req)
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /cargo-scheduling/book
// @Summary Create a cargo booking
// @Description Book one unit of capacity on a schedule slot
// @Tags scheduling
// @Accept json
// @Produce json
// @Param request body service.CreateBookingRequest true "Booking request"
// @Success 201 {object} service.BookingResponse "Booking created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Slot not found"
// @Failure 409 {object} map[string]interface{} "Slot blocked or fully booked"
// @Router /cargo-scheduling/book [post]
func (h *SchedulingHandler) CreateBooking(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// An authenticated actor overrides whatever client id the body claims
	if claims := auth.ActorFromContext(c); claims != nil {
		req.ClientID = claims.ActorID
	}

	resp, err := h.schedulingService.CreateBooking(&req)
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// MyBookings handles GET /cargo-scheduling/my-bookings
// @Summary List a client's cargo bookings
// @Description Get all bookings made by a client
// @Tags scheduling
// @Produce json
// @Param clientId query string true "Client ID"
// @Success 200 {array} service.BookingResponse "Successfully retrieved bookings"
// @Failure 400 {object} map[string]interface{} "Missing client ID"
// @Router /cargo-scheduling/my-bookings [get]
func (h *SchedulingHandler) MyBookings(c *gin.Context) {
	clientID := c.Query("clientId")

	// An authenticated actor lists their own bookings
	if claims := auth.ActorFromContext(c); claims != nil {
		clientID = claims.ActorID
	}

	bookings, err := h.schedulingService.GetBookingsByClient(clientID)
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// AllBookings handles GET /cargo-scheduling/all-bookings
// @Summary List all cargo bookings
// @Description Get every booking in the system
// @Tags scheduling
// @Produce json
// @Success 200 {array} service.BookingResponse "Successfully retrieved bookings"
// @Security BearerAuth
// @Router /cargo-scheduling/all-bookings [get]
func (h *SchedulingHandler) AllBookings(c *gin.Context) {
	bookings, err := h.schedulingService.GetAllBookings()
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBookingRequest carries the mandatory cancellation reason
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking handles DELETE /cargo-scheduling/cancel/:id
// @Summary Cancel a cargo booking
// @Description Cancel a scheduled booking at least 3 hours before the slot starts, releasing its capacity
// @Tags scheduling
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} map[string]interface{} "Booking cancelled"
// @Failure 400 {object} map[string]interface{} "Missing reason or invalid ID"
// @Failure 403 {object} map[string]interface{} "Cancellation window has passed"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Failure 409 {object} map[string]interface{} "Booking already completed or cancelled"
// @Router /cargo-scheduling/cancel/{id} [delete]
func (h *SchedulingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.schedulingService.CancelBooking(id, req.Reason)
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "booking cancelled",
		"booking": resp,
	})
}

// ManagerActionRequest carries a manager decision over a booking
type ManagerActionRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes,omitempty"`
}

// ManagerAction handles PATCH /cargo-scheduling/manager-action/:id
// @Summary Apply a manager decision to a booking
// @Description Complete a booking (capacity stays consumed) or cancel it (capacity is released)
// @Tags scheduling
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body ManagerActionRequest true "Manager decision"
// @Success 200 {object} service.BookingResponse "Decision applied"
// @Failure 400 {object} map[string]interface{} "Invalid action or ID"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Failure 409 {object} map[string]interface{} "Booking already completed or cancelled"
// @Security BearerAuth
// @Router /cargo-scheduling/manager-action/{id} [patch]
func (h *SchedulingHandler) ManagerAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var req ManagerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.schedulingService.ManagerAction(id, req.Action, req.Notes)
	if err != nil {
		schedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
