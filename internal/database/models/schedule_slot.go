package models

import (
	"time"
)

// DateFormat is the canonical calendar-date layout used across the API.
const DateFormat = "2006-01-02"

// TimeSlotFormat is the canonical hour-label layout, e.g. "08:00".
const TimeSlotFormat = "15:04"

// ScheduleSlot is a bookable (date, time) unit with finite capacity.
// The (date, time_slot) pair is unique so repeated week generation cannot
// produce overlapping slots.
type ScheduleSlot struct {
	BaseModel
	Date            time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_slot_date_time" validate:"required"`
	TimeSlot        string    `json:"time_slot" gorm:"size:5;not null;uniqueIndex:idx_slot_date_time" validate:"required"`
	ServiceType     string    `json:"service_type" gorm:"size:50"`
	IsAvailable     bool      `json:"is_available" gorm:"not null;default:true"`
	BlockReason     string    `json:"block_reason,omitempty" gorm:"size:200"`
	MaxCapacity     int       `json:"max_capacity" gorm:"not null;default:5" validate:"min=1"`
	CurrentBookings int       `json:"current_bookings" gorm:"not null;default:0" validate:"min=0"`
}

// TableName returns the table name for ScheduleSlot
func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}

// StartTime combines date and hour label into the slot's start instant.
func (s *ScheduleSlot) StartTime() time.Time {
	hour, _ := time.Parse(TimeSlotFormat, s.TimeSlot)
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(),
		hour.Hour(), hour.Minute(), 0, 0, time.Local)
}

// Bookable reports whether the slot can accept one more booking.
func (s *ScheduleSlot) Bookable() bool {
	return s.IsAvailable && s.CurrentBookings < s.MaxCapacity
}
