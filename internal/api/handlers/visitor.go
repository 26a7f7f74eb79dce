package handlers

import (
	"net/http"

	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorHandler handles HTTP requests for visitor registry operations
type VisitorHandler struct {
	visitorService service.VisitorServiceInterface
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(visitorService service.VisitorServiceInterface) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitorService,
	}
}

// CreateVisitor handles POST /visitors
// @Summary Register a visitor
// @Tags visitors
// @Accept json
// @Produce json
// @Param request body service.CreateVisitorRequest true "Visitor data"
// @Success 201 {object} models.Visitor "Visitor created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "CPF already registered"
// @Router /visitors [post]
func (h *VisitorHandler) CreateVisitor(c *gin.Context) {
	var req service.CreateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	visitor, err := h.visitorService.CreateVisitor(&req)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, visitor)
}

// GetVisitor handles GET /visitors/:id
// @Summary Get a visitor
// @Tags visitors
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} models.Visitor "Visitor"
// @Failure 404 {object} map[string]interface{} "Visitor not found"
// @Router /visitors/{id} [get]
func (h *VisitorHandler) GetVisitor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visitor ID"})
		return
	}

	visitor, err := h.visitorService.GetVisitor(id)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, visitor)
}

// ListVisitors handles GET /visitors
// @Summary List visitors
// @Description List visitors, or look a single one up by CPF
// @Tags visitors
// @Produce json
// @Param cpf query string false "Look up by CPF"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.VisitorListResponse "Visitors"
// @Failure 404 {object} map[string]interface{} "Visitor not found"
// @Router /visitors [get]
func (h *VisitorHandler) ListVisitors(c *gin.Context) {
	if cpf := c.Query("cpf"); cpf != "" {
		visitor, err := h.visitorService.GetVisitorByCPF(cpf)
		if err != nil {
			registryError(c, err)
			return
		}
		c.JSON(http.StatusOK, visitor)
		return
	}

	limit, offset := paginationParams(c)

	resp, err := h.visitorService.ListVisitors(limit, offset)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateVisitor handles PUT /visitors/:id
// @Summary Update a visitor
// @Tags visitors
// @Accept json
// @Produce json
// @Param id path string true "Visitor ID"
// @Param request body service.UpdateVisitorRequest true "Fields to update"
// @Success 200 {object} models.Visitor "Updated visitor"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Visitor not found"
// @Router /visitors/{id} [put]
func (h *VisitorHandler) UpdateVisitor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visitor ID"})
		return
	}

	var req service.UpdateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	visitor, err := h.visitorService.UpdateVisitor(id, &req)
	if err != nil {
		if err == apperrors.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, visitor)
}

// CheckIn handles POST /visitors/:id/check-in
// @Summary Check a visitor in at the gate
// @Description Register a site visit; blocked or inactive visitors are refused
// @Tags visitors
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} models.Visitor "Visit registered"
// @Failure 404 {object} map[string]interface{} "Visitor not found"
// @Failure 409 {object} map[string]interface{} "Visitor is not active"
// @Router /visitors/{id}/check-in [post]
func (h *VisitorHandler) CheckIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visitor ID"})
		return
	}

	visitor, err := h.visitorService.CheckIn(id)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, visitor)
}
