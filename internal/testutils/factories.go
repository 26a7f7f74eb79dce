package testutils

import (
	"fmt"
	"time"

	"felka-transportes-backend/internal/database/models"

	"github.com/google/uuid"
)

// SlotFactory provides methods to create test ScheduleSlot data
type SlotFactory struct{}

// NewSlotFactory creates a new SlotFactory
func NewSlotFactory() *SlotFactory {
	return &SlotFactory{}
}

// Create creates a test ScheduleSlot with default values
func (f *SlotFactory) Create() *models.ScheduleSlot {
	return &models.ScheduleSlot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:            time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour),
		TimeSlot:        "09:00",
		ServiceType:     "cargo-loading",
		IsAvailable:     true,
		MaxCapacity:     5,
		CurrentBookings: 0,
	}
}

// OnDate sets a custom date for the slot
func (f *SlotFactory) OnDate(date time.Time, timeSlot string) *models.ScheduleSlot {
	slot := f.Create()
	slot.Date = date
	slot.TimeSlot = timeSlot
	return slot
}

// Blocked creates a slot that cannot be booked
func (f *SlotFactory) Blocked(reason string) *models.ScheduleSlot {
	slot := f.Create()
	slot.IsAvailable = false
	slot.BlockReason = reason
	return slot
}

// Full creates a slot at maximum occupancy
func (f *SlotFactory) Full() *models.ScheduleSlot {
	slot := f.Create()
	slot.CurrentBookings = slot.MaxCapacity
	return slot
}

// BookingFactory provides methods to create test CargoBooking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a scheduled test CargoBooking tied to the given slot
func (f *BookingFactory) Create(slot *models.ScheduleSlot) *models.CargoBooking {
	return &models.CargoBooking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SlotID:        slot.ID,
		ClientID:      "client-test",
		CompanyName:   "Transportadora Teste Ltda",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          slot.Date,
		TimeSlot:      slot.TimeSlot,
		Status:        models.BookingStatusScheduled,
	}
}

// WithStatus sets a custom status on the booking
func (f *BookingFactory) WithStatus(slot *models.ScheduleSlot, status models.BookingStatus) *models.CargoBooking {
	booking := f.Create(slot)
	booking.Status = status
	return booking
}

// VehicleFactory provides methods to create test Vehicle data
type VehicleFactory struct{}

// NewVehicleFactory creates a new VehicleFactory
func NewVehicleFactory() *VehicleFactory {
	return &VehicleFactory{}
}

// Create creates a test Vehicle with default values
func (f *VehicleFactory) Create() *models.Vehicle {
	return &models.Vehicle{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Plate:    fmt.Sprintf("ABC%04d", time.Now().UnixNano()%10000),
		Brand:    "Volvo",
		Model:    "FH 540",
		Year:     2022,
		Category: "truck",
		Status:   models.VehicleStatusActive,
		Odometer: 120000,
	}
}

// WithPlate sets a custom plate
func (f *VehicleFactory) WithPlate(plate string) *models.Vehicle {
	vehicle := f.Create()
	vehicle.Plate = plate
	return vehicle
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:   "Carlos Pereira",
		CPF:        fmt.Sprintf("%011d", time.Now().UnixNano()%100000000000),
		Role:       "driver",
		Department: "operations",
		Email:      "carlos@felka.com.br",
		Status:     models.EmployeeStatusActive,
	}
}

// VisitorFactory provides methods to create test Visitor data
type VisitorFactory struct{}

// NewVisitorFactory creates a new VisitorFactory
func NewVisitorFactory() *VisitorFactory {
	return &VisitorFactory{}
}

// Create creates a test Visitor with default values
func (f *VisitorFactory) Create() *models.Visitor {
	return &models.Visitor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Maria Lima",
		CPF:      fmt.Sprintf("%011d", time.Now().UnixNano()%100000000000),
		Company:  "Fornecedora XYZ",
		Status:   models.VisitorStatusActive,
	}
}

// Blocked creates a visitor who is refused at the gate
func (f *VisitorFactory) Blocked() *models.Visitor {
	visitor := f.Create()
	visitor.Status = models.VisitorStatusBlocked
	return visitor
}

// MaintenanceFactory provides methods to create test MaintenanceRequest data
type MaintenanceFactory struct{}

// NewMaintenanceFactory creates a new MaintenanceFactory
func NewMaintenanceFactory() *MaintenanceFactory {
	return &MaintenanceFactory{}
}

// Create creates an open test MaintenanceRequest for the given vehicle
func (f *MaintenanceFactory) Create(vehicleID uuid.UUID) *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VehicleID:   vehicleID,
		RequestedBy: "Carlos Pereira",
		Description: "Brake pads worn, grinding noise when braking",
		Priority:    models.MaintenancePriorityHigh,
		Status:      models.MaintenanceStatusOpen,
	}
}
