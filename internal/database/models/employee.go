package models

import "time"

// EmployeeStatus represents the employment state of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// IsValid checks whether the status is one of the known values
func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusInactive
}

// Employee represents an HR record, including driver license data for
// employees who operate fleet vehicles.
type Employee struct {
	BaseModel
	FullName         string         `json:"full_name" gorm:"size:120;not null" validate:"required,max=120"`
	CPF              string         `json:"cpf" gorm:"size:14;not null;uniqueIndex" validate:"required,max=14"`
	Role             string         `json:"role" gorm:"size:50;not null" validate:"required,max=50"`
	Department       string         `json:"department" gorm:"size:50"`
	Email            string         `json:"email" gorm:"size:120" validate:"omitempty,email"`
	Phone            string         `json:"phone" gorm:"size:30"`
	Status           EmployeeStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	LicenseNumber    string         `json:"license_number" gorm:"size:20"`
	LicenseCategory  string         `json:"license_category" gorm:"size:5"`
	LicenseExpiresAt *time.Time     `json:"license_expires_at,omitempty" gorm:"type:date"`
	HiredAt          *time.Time     `json:"hired_at,omitempty" gorm:"type:date"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
