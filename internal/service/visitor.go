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

// VisitorService handles visitor registration and badge check-in
type VisitorService struct {
	repo      repository.VisitorRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewVisitorService creates a new visitor service
func NewVisitorService(repo repository.VisitorRepositoryInterface, validator *validator.Validate) *VisitorService {
	return &VisitorService{repo: repo, validator: validator, now: time.Now}
}

// CreateVisitorRequest represents the request to register a visitor
type CreateVisitorRequest struct {
	FullName  string `json:"full_name" validate:"required,max=120"`
	CPF       string `json:"cpf" validate:"required,max=14"`
	Company   string `json:"company" validate:"max=120"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"max=30"`
	BadgeCode string `json:"badge_code" validate:"max=40"`
}

// UpdateVisitorRequest represents the request to update a visitor
type UpdateVisitorRequest struct {
	FullName  string `json:"full_name" validate:"omitempty,max=120"`
	Company   *string `json:"company" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Status    string `json:"status" validate:"omitempty"`
	BadgeCode string `json:"badge_code" validate:"omitempty,max=40"`
}

// VisitorListResponse represents a paginated visitor listing
type VisitorListResponse struct {
	Visitors []models.Visitor `json:"visitors"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// CreateVisitor registers a visitor; CPF is unique
func (s *VisitorService) CreateVisitor(req *CreateVisitorRequest) (*models.Visitor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	visitor := &models.Visitor{
		FullName:  req.FullName,
		CPF:       req.CPF,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    models.VisitorStatusActive,
		BadgeCode: req.BadgeCode,
	}

	if err := s.repo.Create(visitor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrVisitorExists
		}
		return nil, fmt.Errorf("failed to create visitor: %w", err)
	}
	return visitor, nil
}

// GetVisitor returns a visitor by ID
func (s *VisitorService) GetVisitor(id uuid.UUID) (*models.Visitor, error) {
	visitor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("failed to get visitor: %w", err)
	}
	return visitor, nil
}

// GetVisitorByCPF returns a visitor by CPF, for gate lookups
func (s *VisitorService) GetVisitorByCPF(cpf string) (*models.Visitor, error) {
	if cpf == "" {
		return nil, apperrors.NewValidationError("cpf", "is required")
	}
	visitor, err := s.repo.GetByCPF(cpf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("failed to get visitor: %w", err)
	}
	return visitor, nil
}

// ListVisitors returns visitors with pagination
func (s *VisitorService) ListVisitors(limit, offset int) (*VisitorListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	visitors, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors: %w", err)
	}

	return &VisitorListResponse{
		Visitors: visitors,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// UpdateVisitor applies a partial update to a visitor
func (s *VisitorService) UpdateVisitor(id uuid.UUID, req *UpdateVisitorRequest) (*models.Visitor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	visitor, err := s.GetVisitor(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		visitor.FullName = req.FullName
	}
	if req.Company != nil {
		visitor.Company = *req.Company
	}
	if req.Email != "" {
		visitor.Email = req.Email
	}
	if req.Phone != "" {
		visitor.Phone = req.Phone
	}
	if req.Status != "" {
		status := models.VisitorStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		visitor.Status = status
	}
	if req.BadgeCode != "" {
		visitor.BadgeCode = req.BadgeCode
	}

	if err := s.repo.Update(visitor); err != nil {
		return nil, fmt.Errorf("failed to update visitor: %w", err)
	}
	return visitor, nil
}

// CheckIn registers a site visit for an active visitor. Blocked visitors are
// refused at the gate; inactive ones are treated the same.
func (s *VisitorService) CheckIn(id uuid.UUID) (*models.Visitor, error) {
	visitor, err := s.GetVisitor(id)
	if err != nil {
		return nil, err
	}

	if visitor.Status != models.VisitorStatusActive {
		return nil, apperrors.ErrVisitorBlocked
	}

	at := s.now()
	if err := s.repo.RegisterVisit(id, at); err != nil {
		return nil, fmt.Errorf("failed to register visit: %w", err)
	}

	visitor.VisitCount++
	visitor.LastVisitAt = &at
	return visitor, nil
}
