package models

// VehicleStatus represents the operational state of a fleet vehicle
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusInactive    VehicleStatus = "inactive"
)

// IsValid checks whether the status is one of the known values
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusInactive:
		return true
	}
	return false
}

// Vehicle represents a vehicle in the fleet registry
type Vehicle struct {
	BaseModel
	Plate    string        `json:"plate" gorm:"size:10;not null;uniqueIndex" validate:"required,max=10"`
	Brand    string        `json:"brand" gorm:"size:50;not null" validate:"required,max=50"`
	Model    string        `json:"model" gorm:"size:50;not null" validate:"required,max=50"`
	Year     int           `json:"year" gorm:"not null" validate:"required,min=1980,max=2100"`
	Category string        `json:"category" gorm:"size:30"`
	Status   VehicleStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Odometer int           `json:"odometer" gorm:"default:0" validate:"min=0"`
	Notes    string        `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Vehicle
func (Vehicle) TableName() string {
	return "vehicles"
}
