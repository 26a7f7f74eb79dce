package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"felka-transportes-backend/internal/config"
	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/mocks"
	"felka-transportes-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SchedulingServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockSlotRepo      *mocks.MockScheduleSlotRepositoryInterface
	mockBookingRepo   *mocks.MockCargoBookingRepositoryInterface
	schedulingService *service.SchedulingService
	validator         *validator.Validate
	policy            *config.SchedulePolicy
}

func (suite *SchedulingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSlotRepo = mocks.NewMockScheduleSlotRepositoryInterface(suite.ctrl)
	suite.mockBookingRepo = mocks.NewMockCargoBookingRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.policy = config.DefaultSchedulePolicy()
	suite.schedulingService = service.NewSchedulingService(
		suite.mockSlotRepo,
		suite.mockBookingRepo,
		suite.policy,
		service.NewLogNotifier(),
		suite.validator,
	)
}

func (suite *SchedulingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// slotAt returns a bookable slot whose date and hour label are derived from
// the given instant.
func slotAt(at time.Time) *models.ScheduleSlot {
	return &models.ScheduleSlot{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Date:            time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.Local),
		TimeSlot:        fmt.Sprintf("%02d:00", at.Hour()),
		ServiceType:     "cargo-loading",
		IsAvailable:     true,
		MaxCapacity:     5,
		CurrentBookings: 1,
	}
}

// scheduledBookingAt returns a scheduled booking whose slot starts at the
// given instant.
func scheduledBookingAt(at time.Time) *models.CargoBooking {
	return &models.CargoBooking{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		SlotID:        uuid.New(),
		ClientID:      "client-1",
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.Local),
		TimeSlot:      fmt.Sprintf("%02d:%02d", at.Hour(), at.Minute()),
		Status:        models.BookingStatusScheduled,
	}
}

func (suite *SchedulingServiceTestSuite) TestGetSlots_InvalidDate() {
	_, err := suite.schedulingService.GetSlots("not-a-date")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateFormat)
}

func (suite *SchedulingServiceTestSuite) TestGetSlots_EmptyResultIsNotAnError() {
	suite.mockSlotRepo.EXPECT().GetByDate(gomock.Any()).Return([]models.ScheduleSlot{}, nil)

	slots, err := suite.schedulingService.GetSlots("2026-09-14")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), slots)
}

func (suite *SchedulingServiceTestSuite) TestCreateWeekSlots_BuildsFullGrid() {
	var captured []models.ScheduleSlot
	suite.mockSlotRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(
		func(slots []models.ScheduleSlot) (int64, error) {
			captured = slots
			return int64(len(slots)), nil
		})
	suite.mockSlotRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return([]models.ScheduleSlot{}, nil)

	resp, err := suite.schedulingService.CreateWeekSlots(&service.CreateWeekRequest{
		StartDate:   "2026-09-14",
		ServiceType: "cargo-loading",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 70, resp.SlotsCreated)
	assert.Len(suite.T(), captured, 70)
	// first day, first label; last day, last label
	assert.Equal(suite.T(), "08:00", captured[0].TimeSlot)
	assert.Equal(suite.T(), 14, captured[0].Date.Day())
	assert.Equal(suite.T(), "17:00", captured[69].TimeSlot)
	assert.Equal(suite.T(), 20, captured[69].Date.Day())
	for _, s := range captured {
		assert.True(suite.T(), s.IsAvailable)
		assert.Equal(suite.T(), 5, s.MaxCapacity)
		assert.Equal(suite.T(), 0, s.CurrentBookings)
	}
}

func (suite *SchedulingServiceTestSuite) TestCreateWeekSlots_RepeatReportsZeroCreated() {
	// Existing date/time pairs are skipped by the insert, so a second run for
	// the same week reports zero slots created.
	suite.mockSlotRepo.EXPECT().CreateBatch(gomock.Any()).Return(int64(0), nil)
	suite.mockSlotRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return([]models.ScheduleSlot{}, nil)

	resp, err := suite.schedulingService.CreateWeekSlots(&service.CreateWeekRequest{
		StartDate:   "2026-09-14",
		ServiceType: "cargo-loading",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.SlotsCreated)
}

func (suite *SchedulingServiceTestSuite) TestCreateWeekSlots_InvalidStartDate() {
	_, err := suite.schedulingService.CreateWeekSlots(&service.CreateWeekRequest{
		StartDate:   "14-09-2026",
		ServiceType: "cargo-loading",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateFormat)
}

func (suite *SchedulingServiceTestSuite) TestBlockSlots_UnknownIDsIgnored() {
	known := slotAt(time.Now().Add(48 * time.Hour))
	known.IsAvailable = false
	known.BlockReason = "yard maintenance"
	unknown := uuid.New()

	suite.mockSlotRepo.EXPECT().
		Block([]uuid.UUID{known.ID, unknown}, "yard maintenance").
		Return([]models.ScheduleSlot{*known}, nil)

	resp, err := suite.schedulingService.BlockSlots(&service.BlockSlotsRequest{
		SlotIDs: []uuid.UUID{known.ID, unknown},
		Reason:  "yard maintenance",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.SlotsBlocked)
	assert.Len(suite.T(), resp.BlockedSlots, 1)
	assert.False(suite.T(), resp.BlockedSlots[0].IsAvailable)
	assert.Equal(suite.T(), "yard maintenance", resp.BlockedSlots[0].BlockReason)
}

func (suite *SchedulingServiceTestSuite) TestCreateBooking_Success() {
	slot := slotAt(time.Now().Add(72 * time.Hour))
	suite.mockSlotRepo.EXPECT().GetByDateAndTime(gomock.Any(), slot.TimeSlot).Return(slot, nil)
	suite.mockBookingRepo.EXPECT().CreateScheduled(gomock.Any()).DoAndReturn(
		func(b *models.CargoBooking) error {
			assert.Equal(suite.T(), slot.ID, b.SlotID)
			return nil
		})

	resp, err := suite.schedulingService.CreateBooking(&service.CreateBookingRequest{
		ClientID:      "client-1",
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          slot.Date.Format(models.DateFormat),
		TimeSlot:      slot.TimeSlot,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), slot.ID, resp.SlotID)
	assert.Equal(suite.T(), slot.TimeSlot, resp.TimeSlot)
}

func (suite *SchedulingServiceTestSuite) TestCreateBooking_ValidationFailure() {
	_, err := suite.schedulingService.CreateBooking(&service.CreateBookingRequest{
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "not-an-email",
		ContactPhone:  "+55 11 99999-0000",
		Date:          "2026-09-14",
		TimeSlot:      "09:00",
	})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestCreateBooking_SlotNotFound() {
	suite.mockSlotRepo.EXPECT().GetByDateAndTime(gomock.Any(), "09:00").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.schedulingService.CreateBooking(&service.CreateBookingRequest{
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          "2026-09-14",
		TimeSlot:      "09:00",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSlotNotFound)
}

func (suite *SchedulingServiceTestSuite) TestCreateBooking_FullSlotRejected() {
	slot := slotAt(time.Now().Add(72 * time.Hour))
	slot.CurrentBookings = slot.MaxCapacity
	suite.mockSlotRepo.EXPECT().GetByDateAndTime(gomock.Any(), slot.TimeSlot).Return(slot, nil)

	_, err := suite.schedulingService.CreateBooking(&service.CreateBookingRequest{
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          slot.Date.Format(models.DateFormat),
		TimeSlot:      slot.TimeSlot,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSlotNotBookable)
}

func (suite *SchedulingServiceTestSuite) TestCreateBooking_BlockedSlotRejected() {
	slot := slotAt(time.Now().Add(72 * time.Hour))
	slot.IsAvailable = false
	slot.BlockReason = "yard maintenance"
	suite.mockSlotRepo.EXPECT().GetByDateAndTime(gomock.Any(), slot.TimeSlot).Return(slot, nil)

	_, err := suite.schedulingService.CreateBooking(&service.CreateBookingRequest{
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          slot.Date.Format(models.DateFormat),
		TimeSlot:      slot.TimeSlot,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSlotNotBookable)
}

func (suite *SchedulingServiceTestSuite) TestCreateBooking_LostRaceSurfacesCapacityError() {
	// The pre-check passes but another booking takes the last unit before the
	// transactional insert runs.
	slot := slotAt(time.Now().Add(72 * time.Hour))
	slot.CurrentBookings = slot.MaxCapacity - 1
	suite.mockSlotRepo.EXPECT().GetByDateAndTime(gomock.Any(), slot.TimeSlot).Return(slot, nil)
	suite.mockBookingRepo.EXPECT().CreateScheduled(gomock.Any()).Return(apperrors.ErrSlotNotBookable)

	_, err := suite.schedulingService.CreateBooking(&service.CreateBookingRequest{
		CompanyName:   "Transportadora Teste",
		ContactPerson: "Ana Souza",
		ContactEmail:  "ana@teste.com.br",
		ContactPhone:  "+55 11 99999-0000",
		Date:          slot.Date.Format(models.DateFormat),
		TimeSlot:      slot.TimeSlot,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSlotNotBookable)
}

func (suite *SchedulingServiceTestSuite) TestCancelBooking_ReasonRequired() {
	_, err := suite.schedulingService.CancelBooking(uuid.New(), "")
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestCancelBooking_NotFound() {
	id := uuid.New()
	suite.mockBookingRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.schedulingService.CancelBooking(id, "no longer needed")
	assert.ErrorIs(suite.T(), err, apperrors.ErrBookingNotFound)
}

func (suite *SchedulingServiceTestSuite) TestCancelBooking_AlreadyFinal() {
	booking := scheduledBookingAt(time.Now().Add(72 * time.Hour))
	booking.Status = models.BookingStatusCompleted
	suite.mockBookingRepo.EXPECT().GetByID(booking.ID).Return(booking, nil)

	_, err := suite.schedulingService.CancelBooking(booking.ID, "no longer needed")
	assert.ErrorIs(suite.T(), err, apperrors.ErrBookingAlreadyFinal)
}

func (suite *SchedulingServiceTestSuite) TestCancelBooking_InsideWindowRejected() {
	booking := scheduledBookingAt(time.Now().Add(2 * time.Hour))
	suite.mockBookingRepo.EXPECT().GetByID(booking.ID).Return(booking, nil)

	_, err := suite.schedulingService.CancelBooking(booking.ID, "no longer needed")
	assert.ErrorIs(suite.T(), err, apperrors.ErrCancellationWindow)
}

func (suite *SchedulingServiceTestSuite) TestCancelBooking_PastSlotRejected() {
	booking := scheduledBookingAt(time.Now().Add(-24 * time.Hour))
	suite.mockBookingRepo.EXPECT().GetByID(booking.ID).Return(booking, nil)

	_, err := suite.schedulingService.CancelBooking(booking.ID, "no longer needed")
	assert.ErrorIs(suite.T(), err, apperrors.ErrCancellationWindow)
}

func (suite *SchedulingServiceTestSuite) TestCancelBooking_ReleasesCapacity() {
	booking := scheduledBookingAt(time.Now().Add(72 * time.Hour))
	cancelled := *booking
	cancelled.Status = models.BookingStatusCancelled
	cancelled.CancellationReason = "no longer needed"

	suite.mockBookingRepo.EXPECT().GetByID(booking.ID).Return(booking, nil)
	suite.mockBookingRepo.EXPECT().
		Transition(booking.ID, models.BookingStatusCancelled, gomock.Any(), true).
		Return(&cancelled, nil)

	resp, err := suite.schedulingService.CancelBooking(booking.ID, "no longer needed")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingStatusCancelled, resp.Status)
	assert.Equal(suite.T(), "no longer needed", resp.CancellationReason)
}

func (suite *SchedulingServiceTestSuite) TestManagerAction_CompleteKeepsCapacity() {
	booking := scheduledBookingAt(time.Now().Add(-1 * time.Hour))
	completed := *booking
	completed.Status = models.BookingStatusCompleted
	completed.ManagerNotes = "delivered in full"

	suite.mockBookingRepo.EXPECT().
		Transition(booking.ID, models.BookingStatusCompleted, gomock.Any(), false).
		Return(&completed, nil)

	resp, err := suite.schedulingService.ManagerAction(booking.ID, service.ManagerActionComplete, "delivered in full")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingStatusCompleted, resp.Status)
	assert.Equal(suite.T(), "delivered in full", resp.ManagerNotes)
}

func (suite *SchedulingServiceTestSuite) TestManagerAction_CancelReleasesCapacity() {
	booking := scheduledBookingAt(time.Now().Add(2 * time.Hour))
	cancelled := *booking
	cancelled.Status = models.BookingStatusCancelled

	suite.mockBookingRepo.EXPECT().
		Transition(booking.ID, models.BookingStatusCancelled, gomock.Any(), true).
		Return(&cancelled, nil)

	resp, err := suite.schedulingService.ManagerAction(booking.ID, service.ManagerActionCancel, "client no-show")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingStatusCancelled, resp.Status)
}

func (suite *SchedulingServiceTestSuite) TestManagerAction_InvalidAction() {
	_, err := suite.schedulingService.ManagerAction(uuid.New(), "postpone", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidManagerAction)
}

func (suite *SchedulingServiceTestSuite) TestManagerAction_AlreadyFinal() {
	id := uuid.New()
	suite.mockBookingRepo.EXPECT().
		Transition(id, models.BookingStatusCompleted, gomock.Any(), false).
		Return(nil, apperrors.ErrBookingAlreadyFinal)

	_, err := suite.schedulingService.ManagerAction(id, service.ManagerActionComplete, "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrBookingAlreadyFinal)
}

func (suite *SchedulingServiceTestSuite) TestManagerAction_NotFound() {
	id := uuid.New()
	suite.mockBookingRepo.EXPECT().
		Transition(id, models.BookingStatusCancelled, gomock.Any(), true).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.schedulingService.ManagerAction(id, service.ManagerActionCancel, "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrBookingNotFound)
}

func (suite *SchedulingServiceTestSuite) TestGetBookingsByClient_RequiresClientID() {
	_, err := suite.schedulingService.GetBookingsByClient("")
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestGetBookingsByClient_Success() {
	booking := scheduledBookingAt(time.Now().Add(72 * time.Hour))
	suite.mockBookingRepo.EXPECT().GetByClientID("client-1").Return([]models.CargoBooking{*booking}, nil)

	resp, err := suite.schedulingService.GetBookingsByClient("client-1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "client-1", resp[0].ClientID)
}

func (suite *SchedulingServiceTestSuite) TestRepositoryErrorIsWrapped() {
	suite.mockSlotRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	_, err := suite.schedulingService.GetAllSlots()
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection refused")
}

func TestSchedulingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulingServiceTestSuite))
}
