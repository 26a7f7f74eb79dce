package service

import (
	"errors"
	"fmt"
	"time"

	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceService handles vehicle maintenance requests
type MaintenanceService struct {
	repo        repository.MaintenanceRequestRepositoryInterface
	vehicleRepo repository.VehicleRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	repo repository.MaintenanceRequestRepositoryInterface,
	vehicleRepo repository.VehicleRepositoryInterface,
	validator *validator.Validate,
) *MaintenanceService {
	return &MaintenanceService{repo: repo, vehicleRepo: vehicleRepo, validator: validator, now: time.Now}
}

// CreateMaintenanceRequest represents the request to open a maintenance ticket
type CreateMaintenanceRequest struct {
	VehicleID   uuid.UUID `json:"vehicle_id" validate:"required"`
	RequestedBy string    `json:"requested_by" validate:"required,max=120"`
	Description string    `json:"description" validate:"required"`
	Priority    string    `json:"priority" validate:"omitempty"`
}

// UpdateMaintenanceStatusRequest represents a status change on a ticket
type UpdateMaintenanceStatusRequest struct {
	Status       string `json:"status" validate:"required"`
	ManagerNotes string `json:"manager_notes"`
}

// MaintenanceListResponse represents a paginated maintenance listing
type MaintenanceListResponse struct {
	Requests []models.MaintenanceRequest `json:"requests"`
	Total    int64                       `json:"total"`
	Limit    int                         `json:"limit"`
	Offset   int                         `json:"offset"`
}

// CreateRequest opens a maintenance ticket against an existing vehicle
func (s *MaintenanceService) CreateRequest(req *CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	priority := models.MaintenancePriorityMedium
	if req.Priority != "" {
		priority = models.MaintenancePriority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	if _, err := s.vehicleRepo.GetByID(req.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to check vehicle: %w", err)
	}

	request := &models.MaintenanceRequest{
		VehicleID:   req.VehicleID,
		RequestedBy: req.RequestedBy,
		Description: req.Description,
		Priority:    priority,
		Status:      models.MaintenanceStatusOpen,
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}
	return request, nil
}

// GetRequest returns a maintenance request by ID
func (s *MaintenanceService) GetRequest(id uuid.UUID) (*models.MaintenanceRequest, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenanceRequestNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	return request, nil
}

// ListRequests returns maintenance requests, optionally filtered by vehicle
// and status
func (s *MaintenanceService) ListRequests(vehicleID *uuid.UUID, status string, limit, offset int) (*MaintenanceListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var statusFilter models.MaintenanceStatus
	if status != "" {
		statusFilter = models.MaintenanceStatus(status)
		if !statusFilter.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	requests, total, err := s.repo.GetAll(vehicleID, statusFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	return &MaintenanceListResponse{
		Requests: requests,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// UpdateStatus moves a ticket through its lifecycle. Resolved and cancelled
// are terminal; resolving stamps ResolvedAt.
func (s *MaintenanceService) UpdateStatus(id uuid.UUID, req *UpdateMaintenanceStatusRequest) (*models.MaintenanceRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	to := models.MaintenanceStatus(req.Status)
	if !to.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	request, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}

	if request.Status.IsTerminal() {
		return nil, apperrors.ErrMaintenanceAlreadyFinal
	}

	request.Status = to
	if req.ManagerNotes != "" {
		request.ManagerNotes = req.ManagerNotes
	}
	if to == models.MaintenanceStatusResolved {
		resolvedAt := s.now()
		request.ResolvedAt = &resolvedAt
	}

	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}
	return request, nil
}
