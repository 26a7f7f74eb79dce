package service

import (
	"felka-transportes-backend/internal/database/models"
	"felka-transportes-backend/internal/logger"
)

// Notifier is the delivery sink for booking lifecycle notices. The default
// implementation only logs; real delivery is out of scope for this service.
type Notifier interface {
	BookingConfirmed(booking *models.CargoBooking)
	BookingCancelled(booking *models.CargoBooking, reason string)
	ManagerDecision(booking *models.CargoBooking, action string)
}

// LogNotifier writes notification events to the structured log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a new log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.New()}
}

func (n *LogNotifier) BookingConfirmed(booking *models.CargoBooking) {
	n.log.WithFields(map[string]interface{}{
		"booking_id": booking.ID,
		"recipient":  booking.ContactEmail,
		"date":       booking.Date.Format(models.DateFormat),
		"time_slot":  booking.TimeSlot,
	}).Info("booking confirmation email sent")
}

func (n *LogNotifier) BookingCancelled(booking *models.CargoBooking, reason string) {
	n.log.WithFields(map[string]interface{}{
		"booking_id": booking.ID,
		"recipient":  booking.ContactEmail,
		"reason":     reason,
	}).Info("booking cancellation email sent")
}

func (n *LogNotifier) ManagerDecision(booking *models.CargoBooking, action string) {
	n.log.WithFields(map[string]interface{}{
		"booking_id": booking.ID,
		"recipient":  booking.ContactEmail,
		"action":     action,
	}).Info("manager decision email sent")
}
