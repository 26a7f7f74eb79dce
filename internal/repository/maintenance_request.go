package repository

import (
	"felka-transportes-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceRequestRepository handles database operations for maintenance requests
type MaintenanceRequestRepository struct {
	db *gorm.DB
}

// NewMaintenanceRequestRepository creates a new maintenance request repository
func NewMaintenanceRequestRepository(db *gorm.DB) *MaintenanceRequestRepository {
	return &MaintenanceRequestRepository{db: db}
}

// Create creates a new maintenance request
func (r *MaintenanceRequestRepository) Create(request *models.MaintenanceRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a maintenance request by ID
func (r *MaintenanceRequestRepository) GetByID(id uuid.UUID) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetAll retrieves maintenance requests with pagination, optionally filtered
// by vehicle and status
func (r *MaintenanceRequestRepository) GetAll(vehicleID *uuid.UUID, status models.MaintenanceStatus, limit, offset int) ([]models.MaintenanceRequest, int64, error) {
	var requests []models.MaintenanceRequest
	var total int64

	query := r.db.Model(&models.MaintenanceRequest{})
	if vehicleID != nil {
		query = query.Where("vehicle_id = ?", *vehicleID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	return requests, total, err
}

// Update updates a maintenance request
func (r *MaintenanceRequestRepository) Update(request *models.MaintenanceRequest) error {
	return r.db.Save(request).Error
}
