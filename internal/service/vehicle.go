package service

import (
	"errors"
	"fmt"

	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleService handles fleet registry operations
type VehicleService struct {
	repo      repository.VehicleRepositoryInterface
	validator *validator.Validate
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo repository.VehicleRepositoryInterface, validator *validator.Validate) *VehicleService {
	return &VehicleService{repo: repo, validator: validator}
}

// CreateVehicleRequest represents the request to register a vehicle
type CreateVehicleRequest struct {
	Plate    string `json:"plate" validate:"required,max=10"`
	Brand    string `json:"brand" validate:"required,max=50"`
	Model    string `json:"model" validate:"required,max=50"`
	Year     int    `json:"year" validate:"required,min=1980,max=2100"`
	Category string `json:"category" validate:"max=30"`
	Odometer int    `json:"odometer" validate:"min=0"`
	Notes    string `json:"notes"`
}

// UpdateVehicleRequest represents the request to update a vehicle
type UpdateVehicleRequest struct {
	Brand    string `json:"brand" validate:"omitempty,max=50"`
	Model    string `json:"model" validate:"omitempty,max=50"`
	Category string `json:"category" validate:"omitempty,max=30"`
	Status   string `json:"status" validate:"omitempty"`
	Odometer *int   `json:"odometer" validate:"omitempty,min=0"`
	Notes    *string `json:"notes"`
}

// VehicleListResponse represents a paginated vehicle listing
type VehicleListResponse struct {
	Vehicles []models.Vehicle `json:"vehicles"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// CreateVehicle registers a vehicle; plates are unique across the fleet
func (s *VehicleService) CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	vehicle := &models.Vehicle{
		Plate:    req.Plate,
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		Category: req.Category,
		Status:   models.VehicleStatusActive,
		Odometer: req.Odometer,
		Notes:    req.Notes,
	}

	if err := s.repo.Create(vehicle); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrVehicleExists
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// GetVehicle returns a vehicle by ID
func (s *VehicleService) GetVehicle(id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles returns vehicles with pagination
func (s *VehicleService) ListVehicles(limit, offset int) (*VehicleListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	vehicles, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return &VehicleListResponse{
		Vehicles: vehicles,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// UpdateVehicle applies a partial update to a vehicle
func (s *VehicleService) UpdateVehicle(id uuid.UUID, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	vehicle, err := s.GetVehicle(id)
	if err != nil {
		return nil, err
	}

	if req.Brand != "" {
		vehicle.Brand = req.Brand
	}
	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.Category != "" {
		vehicle.Category = req.Category
	}
	if req.Status != "" {
		status := models.VehicleStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		vehicle.Status = status
	}
	if req.Odometer != nil {
		// Odometers only move forward
		if *req.Odometer < vehicle.Odometer {
			return nil, apperrors.NewValidationError("odometer", "cannot decrease")
		}
		vehicle.Odometer = *req.Odometer
	}
	if req.Notes != nil {
		vehicle.Notes = *req.Notes
	}

	if err := s.repo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle from the registry
func (s *VehicleService) DeleteVehicle(id uuid.UUID) error {
	if _, err := s.GetVehicle(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
