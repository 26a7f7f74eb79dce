package handlers

import (
	"net/http"

	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for HR registry operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// CreateEmployee handles POST /employees
// @Summary Register an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee "Employee created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "CPF already registered"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(&req)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee "Employee"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Tags employees
// @Produce json
// @Param department query string false "Filter by department"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.EmployeeListResponse "Employees"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	limit, offset := paginationParams(c)

	resp, err := h.employeeService.ListEmployees(c.Query("department"), limit, offset)
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body service.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} models.Employee "Updated employee"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(id, &req)
	if err != nil {
		if err == apperrors.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Delete an employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "Employee deleted"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	if err := h.employeeService.DeleteEmployee(id); err != nil {
		registryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
