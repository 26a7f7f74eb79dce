package repository

import (
	"time"

	"felka-transportes-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ScheduleSlotRepositoryInterface defines the interface for schedule slot repository operations
type ScheduleSlotRepositoryInterface interface {
	Create(slot *models.ScheduleSlot) error
	CreateBatch(slots []models.ScheduleSlot) (int64, error)
	GetByID(id uuid.UUID) (*models.ScheduleSlot, error)
	GetByDate(date time.Time) ([]models.ScheduleSlot, error)
	GetByDateAndTime(date time.Time, timeSlot string) (*models.ScheduleSlot, error)
	GetByDateRange(start, end time.Time) ([]models.ScheduleSlot, error)
	GetAll() ([]models.ScheduleSlot, error)
	Block(ids []uuid.UUID, reason string) ([]models.ScheduleSlot, error)
}

// CargoBookingRepositoryInterface defines the interface for cargo booking repository operations
type CargoBookingRepositoryInterface interface {
	CreateScheduled(booking *models.CargoBooking) error
	Transition(id uuid.UUID, to models.BookingStatus, updates map[string]interface{}, releaseCapacity bool) (*models.CargoBooking, error)
	GetByID(id uuid.UUID) (*models.CargoBooking, error)
	GetByClientID(clientID string) ([]models.CargoBooking, error)
	GetAll() ([]models.CargoBooking, error)
	CountActiveForSlot(slotID uuid.UUID) (int64, error)
}

// VehicleRepositoryInterface defines the interface for vehicle repository operations
type VehicleRepositoryInterface interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id uuid.UUID) (*models.Vehicle, error)
	GetByPlate(plate string) (*models.Vehicle, error)
	GetAll(limit, offset int) ([]models.Vehicle, int64, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByCPF(cpf string) (*models.Employee, error)
	GetAll(department string, limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// VisitorRepositoryInterface defines the interface for visitor repository operations
type VisitorRepositoryInterface interface {
	Create(visitor *models.Visitor) error
	GetByID(id uuid.UUID) (*models.Visitor, error)
	GetByCPF(cpf string) (*models.Visitor, error)
	GetAll(limit, offset int) ([]models.Visitor, int64, error)
	Update(visitor *models.Visitor) error
	RegisterVisit(id uuid.UUID, at time.Time) error
}

// MaintenanceRequestRepositoryInterface defines the interface for maintenance request repository operations
type MaintenanceRequestRepositoryInterface interface {
	Create(request *models.MaintenanceRequest) error
	GetByID(id uuid.UUID) (*models.MaintenanceRequest, error)
	GetAll(vehicleID *uuid.UUID, status models.MaintenanceStatus, limit, offset int) ([]models.MaintenanceRequest, int64, error)
	Update(request *models.MaintenanceRequest) error
}
