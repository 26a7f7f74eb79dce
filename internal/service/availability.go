package service

import (
	"time"

	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
)

// Availability rules are pure predicates over slot and booking state; all
// mutation goes through the repositories.

// ParseSlotStart combines a calendar date and an hour label into the slot's
// start instant in local time.
func ParseSlotStart(dateStr, timeSlot string) (time.Time, error) {
	date, err := time.ParseInLocation(models.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateFormat
	}
	hour, err := time.Parse(models.TimeSlotFormat, timeSlot)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidTimeSlot
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		hour.Hour(), hour.Minute(), 0, 0, time.Local), nil
}

// IsBookable reports whether a slot can accept one more booking:
// it is not blocked and has spare capacity.
func IsBookable(slot *models.ScheduleSlot) bool {
	return slot.IsAvailable && slot.CurrentBookings < slot.MaxCapacity
}

// IsCancellable reports whether a booking starting at start may still be
// self-cancelled at now, given the cancellation window. The boundary is
// inclusive: exactly window before start is still cancellable. Starts in
// the past are never cancellable.
func IsCancellable(start, now time.Time, window time.Duration) bool {
	return start.Sub(now) >= window
}
