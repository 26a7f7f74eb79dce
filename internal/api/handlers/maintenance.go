package handlers

import (
	"net/http"

	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaintenanceHandler handles HTTP requests for maintenance tickets
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService service.MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// CreateRequest handles POST /maintenance-requests
// @Summary Open a maintenance ticket
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body service.CreateMaintenanceRequest true "Ticket data"
// @Success 201 {object} models.MaintenanceRequest "Ticket created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /maintenance-requests [post]
func (h *MaintenanceHandler) CreateRequest(c *gin.Context) {
	var req service.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	request, err := h.maintenanceService.CreateRequest(&req)
	if err != nil {
		if err == apperrors.ErrInvalidPriority {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		registryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetRequest handles GET /maintenance-requests/:id
// @Summary Get a maintenance ticket
// @Tags maintenance
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.MaintenanceRequest "Ticket"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Router /maintenance-requests/{id} [get]
func (h *MaintenanceHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	request, err := h.maintenanceService.GetRequest(id)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListRequests handles GET /maintenance-requests
// @Summary List maintenance tickets
// @Tags maintenance
// @Produce json
// @Param vehicle_id query string false "Filter by vehicle"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.MaintenanceListResponse "Tickets"
// @Router /maintenance-requests [get]
func (h *MaintenanceHandler) ListRequests(c *gin.Context) {
	limit, offset := paginationParams(c)

	var vehicleID *uuid.UUID
	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
			return
		}
		vehicleID = &id
	}

	resp, err := h.maintenanceService.ListRequests(vehicleID, c.Query("status"), limit, offset)
	if err != nil {
		if err == apperrors.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /maintenance-requests/:id/status
// @Summary Update a ticket's status
// @Description Move a ticket through its lifecycle; resolved and cancelled are terminal
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body service.UpdateMaintenanceStatusRequest true "New status"
// @Success 200 {object} models.MaintenanceRequest "Updated ticket"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 409 {object} map[string]interface{} "Ticket already resolved or cancelled"
// @Security BearerAuth
// @Router /maintenance-requests/{id}/status [patch]
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	var req service.UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	request, err := h.maintenanceService.UpdateStatus(id, &req)
	if err != nil {
		if err == apperrors.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
