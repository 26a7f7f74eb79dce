package repository

import (
	"time"

	"felka-transportes-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleSlotRepository handles database operations for schedule slots
type ScheduleSlotRepository struct {
	db *gorm.DB
}

// NewScheduleSlotRepository creates a new schedule slot repository
func NewScheduleSlotRepository(db *gorm.DB) *ScheduleSlotRepository {
	return &ScheduleSlotRepository{db: db}
}

// Create inserts a single slot. The (date, time_slot) unique index rejects
// overlapping slots with gorm.ErrDuplicatedKey.
func (r *ScheduleSlotRepository) Create(slot *models.ScheduleSlot) error {
	return r.db.Create(slot).Error
}

// CreateBatch inserts a batch of slots, silently skipping (date, time_slot)
// pairs that already exist. Returns the number of rows actually inserted.
func (r *ScheduleSlotRepository) CreateBatch(slots []models.ScheduleSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "time_slot"}},
		DoNothing: true,
	}).Create(&slots)
	return res.RowsAffected, res.Error
}

// GetByID retrieves a slot by ID
func (r *ScheduleSlotRepository) GetByID(id uuid.UUID) (*models.ScheduleSlot, error) {
	var slot models.ScheduleSlot
	err := r.db.First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetByDate retrieves all slots for an exact date, ordered by hour label.
// An empty result is not an error.
func (r *ScheduleSlotRepository) GetByDate(date time.Time) ([]models.ScheduleSlot, error) {
	var slots []models.ScheduleSlot
	err := r.db.Where("date = ?", date.Format(models.DateFormat)).
		Order("time_slot ASC").Find(&slots).Error
	return slots, err
}

// GetByDateAndTime retrieves the single slot for a (date, time_slot) pair
func (r *ScheduleSlotRepository) GetByDateAndTime(date time.Time, timeSlot string) (*models.ScheduleSlot, error) {
	var slot models.ScheduleSlot
	err := r.db.Where("date = ? AND time_slot = ?", date.Format(models.DateFormat), timeSlot).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetByDateRange retrieves all slots with start <= date <= end
func (r *ScheduleSlotRepository) GetByDateRange(start, end time.Time) ([]models.ScheduleSlot, error) {
	var slots []models.ScheduleSlot
	err := r.db.Where("date >= ? AND date <= ?",
		start.Format(models.DateFormat), end.Format(models.DateFormat)).
		Order("date ASC, time_slot ASC").Find(&slots).Error
	return slots, err
}

// GetAll retrieves every slot ordered by date and hour label
func (r *ScheduleSlotRepository) GetAll() ([]models.ScheduleSlot, error) {
	var slots []models.ScheduleSlot
	err := r.db.Order("date ASC, time_slot ASC").Find(&slots).Error
	return slots, err
}

// Block marks the given slots unavailable. IDs not present in the store are
// silently ignored; the slots that were actually blocked are returned.
func (r *ScheduleSlotRepository) Block(ids []uuid.UUID, reason string) ([]models.ScheduleSlot, error) {
	if len(ids) == 0 {
		return []models.ScheduleSlot{}, nil
	}
	err := r.db.Model(&models.ScheduleSlot{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"is_available": false, "block_reason": reason}).Error
	if err != nil {
		return nil, err
	}

	var blocked []models.ScheduleSlot
	err = r.db.Where("id IN ?", ids).Order("date ASC, time_slot ASC").Find(&blocked).Error
	return blocked, err
}
