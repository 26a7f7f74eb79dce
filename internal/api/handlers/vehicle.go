package handlers

import (
	"net/http"
	"strconv"

	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler handles HTTP requests for fleet vehicle operations
type VehicleHandler struct {
	vehicleService service.VehicleServiceInterface
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService service.VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// registryError maps registry CRUD errors to HTTP statuses
func registryError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsPolicyViolation(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// CreateVehicle handles POST /vehicles
// @Summary Register a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body service.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} models.Vehicle "Vehicle created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Plate already registered"
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(&req)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicle handles GET /vehicles/:id
// @Summary Get a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.Vehicle "Vehicle"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(id)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// ListVehicles handles GET /vehicles
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.VehicleListResponse "Vehicles"
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	limit, offset := paginationParams(c)

	resp, err := h.vehicleService.ListVehicles(limit, offset)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateVehicle handles PUT /vehicles/:id
// @Summary Update a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body service.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} models.Vehicle "Updated vehicle"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	var req service.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(id, &req)
	if err != nil {
		if err == apperrors.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /vehicles/:id
// @Summary Delete a vehicle
// @Tags vehicles
// @Param id path string true "Vehicle ID"
// @Success 204 "Vehicle deleted"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	if err := h.vehicleService.DeleteVehicle(id); err != nil {
		registryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
