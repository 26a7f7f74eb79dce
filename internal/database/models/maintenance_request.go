package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenancePriority represents the urgency of a maintenance request
type MaintenancePriority string

const (
	MaintenancePriorityLow      MaintenancePriority = "low"
	MaintenancePriorityMedium   MaintenancePriority = "medium"
	MaintenancePriorityHigh     MaintenancePriority = "high"
	MaintenancePriorityCritical MaintenancePriority = "critical"
)

// IsValid checks whether the priority is one of the known values
func (p MaintenancePriority) IsValid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh, MaintenancePriorityCritical:
		return true
	}
	return false
}

// MaintenanceStatus represents the lifecycle state of a maintenance request
type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// IsValid checks whether the status is one of the known values
func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusResolved, MaintenanceStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s MaintenanceStatus) IsTerminal() bool {
	return s == MaintenanceStatusResolved || s == MaintenanceStatusCancelled
}

// MaintenanceRequest represents a driver-reported vehicle maintenance request
type MaintenanceRequest struct {
	BaseModel
	VehicleID    uuid.UUID           `json:"vehicle_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequestedBy  string              `json:"requested_by" gorm:"size:120;not null" validate:"required,max=120"`
	Description  string              `json:"description" gorm:"type:text;not null" validate:"required"`
	Priority     MaintenancePriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Status       MaintenanceStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	ManagerNotes string              `json:"manager_notes" gorm:"type:text"`
	ResolvedAt   *time.Time          `json:"resolved_at,omitempty"`

	// Relationships
	Vehicle Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MaintenanceRequest
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
