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

// EmployeeService handles HR registry operations
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator}
}

// CreateEmployeeRequest represents the request to register an employee
type CreateEmployeeRequest struct {
	FullName        string `json:"full_name" validate:"required,max=120"`
	CPF             string `json:"cpf" validate:"required,max=14"`
	Role            string `json:"role" validate:"required,max=50"`
	Department      string `json:"department" validate:"max=50"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"max=30"`
	LicenseNumber   string `json:"license_number" validate:"max=20"`
	LicenseCategory string `json:"license_category" validate:"max=5"`
	LicenseExpires  string `json:"license_expires_at" validate:"omitempty"`
	HiredAt         string `json:"hired_at" validate:"omitempty"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FullName        string `json:"full_name" validate:"omitempty,max=120"`
	Role            string `json:"role" validate:"omitempty,max=50"`
	Department      *string `json:"department" validate:"omitempty"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
	Status          string `json:"status" validate:"omitempty"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=20"`
	LicenseCategory string `json:"license_category" validate:"omitempty,max=5"`
	LicenseExpires  string `json:"license_expires_at" validate:"omitempty"`
}

// EmployeeListResponse represents a paginated employee listing
type EmployeeListResponse struct {
	Employees []models.Employee `json:"employees"`
	Total     int64             `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// CreateEmployee registers an employee; CPF is unique
func (s *EmployeeService) CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	employee := &models.Employee{
		FullName:        req.FullName,
		CPF:             req.CPF,
		Role:            req.Role,
		Department:      req.Department,
		Email:           req.Email,
		Phone:           req.Phone,
		Status:          models.EmployeeStatusActive,
		LicenseNumber:   req.LicenseNumber,
		LicenseCategory: req.LicenseCategory,
	}

	if req.LicenseExpires != "" {
		expires, err := time.ParseInLocation(models.DateFormat, req.LicenseExpires, time.Local)
		if err != nil {
			return nil, apperrors.NewValidationError("license_expires_at", "must be YYYY-MM-DD")
		}
		employee.LicenseExpiresAt = &expires
	}
	if req.HiredAt != "" {
		hired, err := time.ParseInLocation(models.DateFormat, req.HiredAt, time.Local)
		if err != nil {
			return nil, apperrors.NewValidationError("hired_at", "must be YYYY-MM-DD")
		}
		employee.HiredAt = &hired
	}

	if err := s.repo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// GetEmployee returns an employee by ID
func (s *EmployeeService) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// ListEmployees returns employees, optionally filtered by department
func (s *EmployeeService) ListEmployees(department string, limit, offset int) (*EmployeeListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	employees, total, err := s.repo.GetAll(department, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return &EmployeeListResponse{
		Employees: employees,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// UpdateEmployee applies a partial update to an employee
func (s *EmployeeService) UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	employee, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		employee.FullName = req.FullName
	}
	if req.Role != "" {
		employee.Role = req.Role
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Status != "" {
		status := models.EmployeeStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		employee.Status = status
	}
	if req.LicenseNumber != "" {
		employee.LicenseNumber = req.LicenseNumber
	}
	if req.LicenseCategory != "" {
		employee.LicenseCategory = req.LicenseCategory
	}
	if req.LicenseExpires != "" {
		expires, err := time.ParseInLocation(models.DateFormat, req.LicenseExpires, time.Local)
		if err != nil {
			return nil, apperrors.NewValidationError("license_expires_at", "must be YYYY-MM-DD")
		}
		employee.LicenseExpiresAt = &expires
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// DeleteEmployee removes an employee from the registry
func (s *EmployeeService) DeleteEmployee(id uuid.UUID) error {
	if _, err := s.GetEmployee(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
