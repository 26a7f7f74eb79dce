package repository

import (
	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CargoBookingRepository handles database operations for cargo bookings.
// Capacity bookkeeping is done here so that "check and reserve" and
// "transition and release" are each a single transaction.
type CargoBookingRepository struct {
	db *gorm.DB
}

// NewCargoBookingRepository creates a new cargo booking repository
func NewCargoBookingRepository(db *gorm.DB) *CargoBookingRepository {
	return &CargoBookingRepository{db: db}
}

// CreateScheduled inserts a booking and reserves one unit of the referenced
// slot's capacity in one transaction. The reservation is a conditional
// update; zero affected rows means the slot is blocked, full, or missing,
// and the whole transaction rolls back with ErrSlotNotBookable.
func (r *CargoBookingRepository) CreateScheduled(booking *models.CargoBooking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ScheduleSlot{}).
			Where("id = ? AND is_available = ? AND current_bookings < max_capacity", booking.SlotID, true).
			UpdateColumn("current_bookings", gorm.Expr("current_bookings + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrSlotNotBookable
		}

		booking.Status = models.BookingStatusScheduled
		return tx.Create(booking).Error
	})
}

// Transition moves a scheduled booking into a terminal status, applying the
// given column updates, and optionally releases the reserved capacity unit.
// The status guard and the occupancy decrement happen in one transaction;
// the decrement floors at zero.
func (r *CargoBookingRepository) Transition(id uuid.UUID, to models.BookingStatus, updates map[string]interface{}, releaseCapacity bool) (*models.CargoBooking, error) {
	var booking models.CargoBooking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", id).Error; err != nil {
			return err
		}
		if booking.Status != models.BookingStatusScheduled {
			return apperrors.ErrBookingAlreadyFinal
		}

		if updates == nil {
			updates = map[string]interface{}{}
		}
		updates["status"] = to
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}

		if releaseCapacity {
			if err := tx.Model(&models.ScheduleSlot{}).
				Where("id = ? AND current_bookings > 0", booking.SlotID).
				UpdateColumn("current_bookings", gorm.Expr("current_bookings - 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByID retrieves a booking by ID
func (r *CargoBookingRepository) GetByID(id uuid.UUID) (*models.CargoBooking, error) {
	var booking models.CargoBooking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByClientID retrieves all bookings made by a client, newest first
func (r *CargoBookingRepository) GetByClientID(clientID string) ([]models.CargoBooking, error) {
	var bookings []models.CargoBooking
	err := r.db.Where("client_id = ?", clientID).
		Order("date DESC, time_slot DESC").Find(&bookings).Error
	return bookings, err
}

// GetAll retrieves every booking ordered by schedule
func (r *CargoBookingRepository) GetAll() ([]models.CargoBooking, error) {
	var bookings []models.CargoBooking
	err := r.db.Order("date DESC, time_slot DESC").Find(&bookings).Error
	return bookings, err
}

// CountActiveForSlot counts scheduled bookings referencing a slot
func (r *CargoBookingRepository) CountActiveForSlot(slotID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CargoBooking{}).
		Where("slot_id = ? AND status = ?", slotID, models.BookingStatusScheduled).
		Count(&count).Error
	return count, err
}
