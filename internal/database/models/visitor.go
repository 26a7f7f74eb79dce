package models

import "time"

// VisitorStatus represents the access-control state of an external person
type VisitorStatus string

const (
	VisitorStatusActive   VisitorStatus = "active"
	VisitorStatusInactive VisitorStatus = "inactive"
	VisitorStatusBlocked  VisitorStatus = "blocked"
)

// IsValid checks whether the status is one of the known values
func (s VisitorStatus) IsValid() bool {
	switch s {
	case VisitorStatusActive, VisitorStatusInactive, VisitorStatusBlocked:
		return true
	}
	return false
}

// Visitor represents an external person registered for badge-based site
// access. VisitCount and LastVisitAt are maintained by the check-in flow.
type Visitor struct {
	BaseModel
	FullName    string        `json:"full_name" gorm:"size:120;not null" validate:"required,max=120"`
	CPF         string        `json:"cpf" gorm:"size:14;not null;uniqueIndex" validate:"required,max=14"`
	Company     string        `json:"company" gorm:"size:120"`
	Email       string        `json:"email" gorm:"size:120" validate:"omitempty,email"`
	Phone       string        `json:"phone" gorm:"size:30"`
	Status      VisitorStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	BadgeCode   string        `json:"badge_code" gorm:"size:40;index"`
	VisitCount  int           `json:"visit_count" gorm:"not null;default:0"`
	LastVisitAt *time.Time    `json:"last_visit_at,omitempty"`
}

// TableName returns the table name for Visitor
func (Visitor) TableName() string {
	return "visitors"
}
