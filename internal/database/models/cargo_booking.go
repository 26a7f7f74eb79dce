package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a cargo booking
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks whether the status is one of the known values
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusScheduled, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CargoBooking consumes one unit of a slot's capacity. The slot reference is
// an explicit foreign key; date and time_slot are denormalized copies kept
// for listing without a join.
type CargoBooking struct {
	BaseModel
	SlotID             uuid.UUID     `json:"slot_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClientID           string        `json:"client_id" gorm:"size:64;index"`
	CompanyName        string        `json:"company_name" gorm:"size:120;not null" validate:"required,max=120"`
	ContactPerson      string        `json:"contact_person" gorm:"size:120;not null" validate:"required,max=120"`
	ContactEmail       string        `json:"contact_email" gorm:"size:120;not null" validate:"required,email"`
	ContactPhone       string        `json:"contact_phone" gorm:"size:30;not null" validate:"required,max=30"`
	Date               time.Time     `json:"date" gorm:"type:date;not null;index"`
	TimeSlot           string        `json:"time_slot" gorm:"size:5;not null"`
	Status             BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	Notes              string        `json:"notes" gorm:"type:text"`
	ManagerNotes       string        `json:"manager_notes" gorm:"type:text"`
	CancellationReason string        `json:"cancellation_reason" gorm:"type:text"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`

	// Relationships
	Slot ScheduleSlot `json:"slot,omitempty" gorm:"foreignKey:SlotID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for CargoBooking
func (CargoBooking) TableName() string {
	return "cargo_bookings"
}

// StartTime combines the denormalized date and hour label into the booked
// slot's start instant.
func (b *CargoBooking) StartTime() time.Time {
	hour, _ := time.Parse(TimeSlotFormat, b.TimeSlot)
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(),
		hour.Hour(), hour.Minute(), 0, 0, time.Local)
}
