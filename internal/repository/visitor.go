package repository

import (
	"time"

	"felka-transportes-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorRepository handles database operations for external visitors
type VisitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository creates a new visitor repository
func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// Create creates a new visitor
func (r *VisitorRepository) Create(visitor *models.Visitor) error {
	return r.db.Create(visitor).Error
}

// GetByID retrieves a visitor by ID
func (r *VisitorRepository) GetByID(id uuid.UUID) (*models.Visitor, error) {
	var visitor models.Visitor
	err := r.db.First(&visitor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// GetByCPF retrieves a visitor by CPF
func (r *VisitorRepository) GetByCPF(cpf string) (*models.Visitor, error) {
	var visitor models.Visitor
	err := r.db.First(&visitor, "cpf = ?", cpf).Error
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// GetAll retrieves visitors with pagination
func (r *VisitorRepository) GetAll(limit, offset int) ([]models.Visitor, int64, error) {
	var visitors []models.Visitor
	var total int64

	if err := r.db.Model(&models.Visitor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&visitors).Error
	return visitors, total, err
}

// Update updates a visitor
func (r *VisitorRepository) Update(visitor *models.Visitor) error {
	return r.db.Save(visitor).Error
}

// RegisterVisit increments the visit counter and stamps the visit time in a
// single update.
func (r *VisitorRepository) RegisterVisit(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Visitor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"visit_count":   gorm.Expr("visit_count + 1"),
			"last_visit_at": at,
		}).Error
}
