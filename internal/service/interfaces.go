package service

import (
	"felka-transportes-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchedulingServiceInterface defines the interface for scheduling operations
type SchedulingServiceInterface interface {
	GetSlots(dateStr string) ([]SlotResponse, error)
	GetAllSlots() ([]SlotResponse, error)
	CreateWeekSlots(req *CreateWeekRequest) (*CreateWeekResponse, error)
	BlockSlots(req *BlockSlotsRequest) (*BlockSlotsResponse, error)
	CreateBooking(req *CreateBookingRequest) (*BookingResponse, error)
	GetBookingsByClient(clientID string) ([]BookingResponse, error)
	GetAllBookings() ([]BookingResponse, error)
	CancelBooking(id uuid.UUID, reason string) (*BookingResponse, error)
	ManagerAction(id uuid.UUID, action, notes string) (*BookingResponse, error)
}

// VehicleServiceInterface defines the interface for vehicle operations
type VehicleServiceInterface interface {
	CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error)
	GetVehicle(id uuid.UUID) (*models.Vehicle, error)
	ListVehicles(limit, offset int) (*VehicleListResponse, error)
	UpdateVehicle(id uuid.UUID, req *UpdateVehicleRequest) (*models.Vehicle, error)
	DeleteVehicle(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee operations
type EmployeeServiceInterface interface {
	CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error)
	GetEmployee(id uuid.UUID) (*models.Employee, error)
	ListEmployees(department string, limit, offset int) (*EmployeeListResponse, error)
	UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(id uuid.UUID) error
}

// VisitorServiceInterface defines the interface for visitor operations
type VisitorServiceInterface interface {
	CreateVisitor(req *CreateVisitorRequest) (*models.Visitor, error)
	GetVisitor(id uuid.UUID) (*models.Visitor, error)
	GetVisitorByCPF(cpf string) (*models.Visitor, error)
	ListVisitors(limit, offset int) (*VisitorListResponse, error)
	UpdateVisitor(id uuid.UUID, req *UpdateVisitorRequest) (*models.Visitor, error)
	CheckIn(id uuid.UUID) (*models.Visitor, error)
}

// MaintenanceServiceInterface defines the interface for maintenance operations
type MaintenanceServiceInterface interface {
	CreateRequest(req *CreateMaintenanceRequest) (*models.MaintenanceRequest, error)
	GetRequest(id uuid.UUID) (*models.MaintenanceRequest, error)
	ListRequests(vehicleID *uuid.UUID, status string, limit, offset int) (*MaintenanceListResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateMaintenanceStatusRequest) (*models.MaintenanceRequest, error)
}
