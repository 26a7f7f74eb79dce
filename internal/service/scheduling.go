package service

import (
	"errors"
	"fmt"
	"time"

	"felka-transportes-backend/internal/config"
	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/metrics"
	"felka-transportes-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchedulingService owns the cargo-scheduling lifecycle: slot generation and
// blocking, booking creation, requester cancellation and manager decisions.
// It is the only component that mutates booking status and slot occupancy,
// and it does both through single-transaction repository operations.
type SchedulingService struct {
	slotRepo    repository.ScheduleSlotRepositoryInterface
	bookingRepo repository.CargoBookingRepositoryInterface
	policy      *config.SchedulePolicy
	notifier    Notifier
	validator   *validator.Validate
	now         func() time.Time
}

// NewSchedulingService creates a new scheduling service
func NewSchedulingService(
	slotRepo repository.ScheduleSlotRepositoryInterface,
	bookingRepo repository.CargoBookingRepositoryInterface,
	policy *config.SchedulePolicy,
	notifier Notifier,
	validator *validator.Validate,
) *SchedulingService {
	return &SchedulingService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		policy:      policy,
		notifier:    notifier,
		validator:   validator,
		now:         time.Now,
	}
}

// ManagerActionComplete and ManagerActionCancel are the two decisions a
// manager can take over a scheduled booking.
const (
	ManagerActionComplete = "complete"
	ManagerActionCancel   = "cancel"
)

// SlotResponse represents a schedule slot on the wire
type SlotResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	ServiceType     string    `json:"serviceType,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	BlockReason     string    `json:"blockReason,omitempty"`
	MaxCapacity     int       `json:"maxCapacity"`
	CurrentBookings int       `json:"currentBookings"`
	Bookable        bool      `json:"bookable"`
}

// BookingResponse represents a cargo booking on the wire
type BookingResponse struct {
	ID                 uuid.UUID            `json:"id"`
	SlotID             uuid.UUID            `json:"slotId"`
	ClientID           string               `json:"clientId,omitempty"`
	CompanyName        string               `json:"companyName"`
	ContactPerson      string               `json:"contactPerson"`
	ContactEmail       string               `json:"contactEmail"`
	ContactPhone       string               `json:"contactPhone"`
	Date               string               `json:"date"`
	TimeSlot           string               `json:"timeSlot"`
	Status             models.BookingStatus `json:"status"`
	Notes              string               `json:"notes,omitempty"`
	ManagerNotes       string               `json:"managerNotes,omitempty"`
	CancellationReason string               `json:"cancellationReason,omitempty"`
	CreatedAt          string               `json:"createdAt"`
}

// CreateWeekRequest asks for a full week of slots starting at StartDate
type CreateWeekRequest struct {
	StartDate   string `json:"startDate" validate:"required"`
	ServiceType string `json:"serviceType" validate:"required,max=50"`
}

// CreateWeekResponse reports the generation outcome
type CreateWeekResponse struct {
	SlotsCreated int            `json:"slotsCreated"`
	Slots        []SlotResponse `json:"slots"`
}

// BlockSlotsRequest asks for a set of slots to be blocked
type BlockSlotsRequest struct {
	SlotIDs []uuid.UUID `json:"slotIds" validate:"required,min=1"`
	Reason  string      `json:"reason,omitempty"`
}

// BlockSlotsResponse reports which slots were blocked
type BlockSlotsResponse struct {
	SlotsBlocked int            `json:"slotsBlocked"`
	BlockedSlots []SlotResponse `json:"blockedSlots"`
}

// CreateBookingRequest carries requester identity and the target slot
type CreateBookingRequest struct {
	ClientID      string `json:"clientId"`
	CompanyName   string `json:"companyName" validate:"required,max=120"`
	ContactPerson string `json:"contactPerson" validate:"required,max=120"`
	ContactEmail  string `json:"contactEmail" validate:"required,email"`
	ContactPhone  string `json:"contactPhone" validate:"required,max=30"`
	Date          string `json:"date" validate:"required"`
	TimeSlot      string `json:"timeSlot" validate:"required"`
	Notes         string `json:"notes,omitempty"`
}

// GetSlots returns all slots for an exact date; an empty result is not an error
func (s *SchedulingService) GetSlots(dateStr string) ([]SlotResponse, error) {
	date, err := time.ParseInLocation(models.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}

	slots, err := s.slotRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	return s.toSlotResponses(slots), nil
}

// GetAllSlots returns every slot
func (s *SchedulingService) GetAllSlots() ([]SlotResponse, error) {
	slots, err := s.slotRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	return s.toSlotResponses(slots), nil
}

// CreateWeekSlots expands a start date into 7 consecutive days of slots on
// the configured hour grid. Pairs that already exist are skipped, so
// repeating the call for the same week is a no-op rather than a duplicate.
func (s *SchedulingService) CreateWeekSlots(req *CreateWeekRequest) (*CreateWeekResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	start, err := time.ParseInLocation(models.DateFormat, req.StartDate, time.Local)
	if err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}

	slots := make([]models.ScheduleSlot, 0, 7*len(s.policy.HourLabels))
	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		for _, label := range s.policy.HourLabels {
			slots = append(slots, models.ScheduleSlot{
				Date:            date,
				TimeSlot:        label,
				ServiceType:     req.ServiceType,
				IsAvailable:     true,
				MaxCapacity:     s.policy.DefaultCapacity,
				CurrentBookings: 0,
			})
		}
	}

	created, err := s.slotRepo.CreateBatch(slots)
	if err != nil {
		return nil, fmt.Errorf("failed to create week slots: %w", err)
	}
	metrics.AddSlotsGenerated(int(created))

	weekSlots, err := s.slotRepo.GetByDateRange(start, start.AddDate(0, 0, 6))
	if err != nil {
		return nil, fmt.Errorf("failed to load created slots: %w", err)
	}

	return &CreateWeekResponse{
		SlotsCreated: int(created),
		Slots:        s.toSlotResponses(weekSlots),
	}, nil
}

// BlockSlots marks the given slots unavailable; unknown ids are silently ignored
func (s *SchedulingService) BlockSlots(req *BlockSlotsRequest) (*BlockSlotsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("slotIds", err.Error())
	}

	reason := req.Reason
	if reason == "" {
		reason = "blocked by administrator"
	}

	blocked, err := s.slotRepo.Block(req.SlotIDs, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to block slots: %w", err)
	}

	return &BlockSlotsResponse{
		SlotsBlocked: len(blocked),
		BlockedSlots: s.toSlotResponses(blocked),
	}, nil
}

// CreateBooking creates a scheduled booking against a bookable slot and
// reserves one unit of its capacity. The capacity check and the reservation
// are one atomic repository operation; the pre-check here only produces a
// friendlier error for the common case.
func (s *SchedulingService) CreateBooking(req *CreateBookingRequest) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	date, err := time.ParseInLocation(models.DateFormat, req.Date, time.Local)
	if err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}
	if _, err := time.Parse(models.TimeSlotFormat, req.TimeSlot); err != nil {
		return nil, apperrors.ErrInvalidTimeSlot
	}

	slot, err := s.slotRepo.GetByDateAndTime(date, req.TimeSlot)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to find slot: %w", err)
	}

	if !IsBookable(slot) {
		metrics.IncBookingRejected("slot-capacity")
		return nil, apperrors.ErrSlotNotBookable
	}

	booking := &models.CargoBooking{
		SlotID:        slot.ID,
		ClientID:      req.ClientID,
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Date:          slot.Date,
		TimeSlot:      slot.TimeSlot,
		Notes:         req.Notes,
	}

	if err := s.bookingRepo.CreateScheduled(booking); err != nil {
		if errors.Is(err, apperrors.ErrSlotNotBookable) {
			metrics.IncBookingRejected("slot-capacity")
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.notifier.BookingConfirmed(booking)
	return s.toBookingResponse(booking), nil
}

// GetBookingsByClient returns all bookings made by a client
func (s *SchedulingService) GetBookingsByClient(clientID string) ([]BookingResponse, error) {
	if clientID == "" {
		return nil, apperrors.NewValidationError("clientId", "is required")
	}
	bookings, err := s.bookingRepo.GetByClientID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return s.toBookingResponses(bookings), nil
}

// GetAllBookings returns every booking
func (s *SchedulingService) GetAllBookings() ([]BookingResponse, error) {
	bookings, err := s.bookingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return s.toBookingResponses(bookings), nil
}

// CancelBooking is the requester-initiated cancellation. It requires a
// reason, a still-scheduled booking, and a start time at least the
// cancellation window away; it releases the reserved capacity unit.
func (s *SchedulingService) CancelBooking(id uuid.UUID, reason string) (*BookingResponse, error) {
	if reason == "" {
		return nil, apperrors.NewValidationError("reason", "is required")
	}

	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.Status.IsTerminal() {
		metrics.IncBookingRejected("booking-lifecycle")
		return nil, apperrors.ErrBookingAlreadyFinal
	}

	if !IsCancellable(booking.StartTime(), s.now(), s.policy.CancellationWindow()) {
		metrics.IncBookingRejected("cancellation-window")
		return nil, apperrors.ErrCancellationWindow
	}

	now := s.now()
	cancelled, err := s.bookingRepo.Transition(id, models.BookingStatusCancelled, map[string]interface{}{
		"cancellation_reason": reason,
		"cancelled_at":        now,
	}, true)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingAlreadyFinal) {
			metrics.IncBookingRejected("booking-lifecycle")
		}
		return nil, err
	}

	metrics.IncBookingCancelled()
	s.notifier.BookingCancelled(cancelled, reason)
	return s.toBookingResponse(cancelled), nil
}

// ManagerAction applies a manager decision to a scheduled booking.
// Completing keeps the capacity unit consumed; cancelling releases it so the
// slot can be re-booked.
func (s *SchedulingService) ManagerAction(id uuid.UUID, action, notes string) (*BookingResponse, error) {
	now := s.now()

	var to models.BookingStatus
	var updates map[string]interface{}
	var release bool

	switch action {
	case ManagerActionComplete:
		to = models.BookingStatusCompleted
		updates = map[string]interface{}{"manager_notes": notes, "completed_at": now}
		release = false
	case ManagerActionCancel:
		to = models.BookingStatusCancelled
		updates = map[string]interface{}{"manager_notes": notes, "cancelled_at": now}
		release = true
	default:
		return nil, apperrors.ErrInvalidManagerAction
	}

	booking, err := s.bookingRepo.Transition(id, to, updates, release)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		if errors.Is(err, apperrors.ErrBookingAlreadyFinal) {
			metrics.IncBookingRejected("booking-lifecycle")
			return nil, err
		}
		return nil, fmt.Errorf("failed to apply manager action: %w", err)
	}

	metrics.IncManagerDecision(action)
	s.notifier.ManagerDecision(booking, action)
	return s.toBookingResponse(booking), nil
}

func (s *SchedulingService) toSlotResponses(slots []models.ScheduleSlot) []SlotResponse {
	responses := make([]SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *s.toSlotResponse(&slots[i])
	}
	return responses
}

func (s *SchedulingService) toSlotResponse(slot *models.ScheduleSlot) *SlotResponse {
	return &SlotResponse{
		ID:              slot.ID,
		Date:            slot.Date.Format(models.DateFormat),
		TimeSlot:        slot.TimeSlot,
		ServiceType:     slot.ServiceType,
		IsAvailable:     slot.IsAvailable,
		BlockReason:     slot.BlockReason,
		MaxCapacity:     slot.MaxCapacity,
		CurrentBookings: slot.CurrentBookings,
		Bookable:        IsBookable(slot),
	}
}

func (s *SchedulingService) toBookingResponses(bookings []models.CargoBooking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *s.toBookingResponse(&bookings[i])
	}
	return responses
}

func (s *SchedulingService) toBookingResponse(booking *models.CargoBooking) *BookingResponse {
	return &BookingResponse{
		ID:                 booking.ID,
		SlotID:             booking.SlotID,
		ClientID:           booking.ClientID,
		CompanyName:        booking.CompanyName,
		ContactPerson:      booking.ContactPerson,
		ContactEmail:       booking.ContactEmail,
		ContactPhone:       booking.ContactPhone,
		Date:               booking.Date.Format(models.DateFormat),
		TimeSlot:           booking.TimeSlot,
		Status:             booking.Status,
		Notes:              booking.Notes,
		ManagerNotes:       booking.ManagerNotes,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt.Format(time.RFC3339),
	}
}
