package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"felka-transportes-backend/internal/api/handlers"
	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/mocks"
	"felka-transportes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SchedulingHandlerTestSuite defines the test suite for SchedulingHandler
type SchedulingHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSchedulingSv *mocks.MockSchedulingServiceInterface
	handler          *handlers.SchedulingHandler
	router           *gin.Engine
}

func (suite *SchedulingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSchedulingSv = mocks.NewMockSchedulingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSchedulingHandler(suite.mockSchedulingSv)

	suite.router = gin.New()
	suite.router.GET("/cargo-scheduling/slots", suite.handler.GetSlots)
	suite.router.POST("/cargo-scheduling/create-week", suite.handler.CreateWeekSlots)
	suite.router.POST("/cargo-scheduling/block-slots", suite.handler.BlockSlots)
	suite.router.POST("/cargo-scheduling/book", suite.handler.CreateBooking)
	suite.router.GET("/cargo-scheduling/my-bookings", suite.handler.MyBookings)
	suite.router.GET("/cargo-scheduling/all-bookings", suite.handler.AllBookings)
	suite.router.DELETE("/cargo-scheduling/cancel/:id", suite.handler.CancelBooking)
	suite.router.PATCH("/cargo-scheduling/manager-action/:id", suite.handler.ManagerAction)
}

func (suite *SchedulingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SchedulingHandlerTestSuite) requestJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(suite.T(), err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SchedulingHandlerTestSuite) TestGetSlots_ByDate_Success() {
	slots := []service.SlotResponse{
		{
			ID:          uuid.New(),
			Date:        "2026-09-14",
			TimeSlot:    "09:00",
			ServiceType: "cargo-loading",
			IsAvailable: true,
			MaxCapacity: 5,
			Bookable:    true,
		},
	}
	suite.mockSchedulingSv.EXPECT().GetSlots("2026-09-14").Return(slots, nil)

	req := httptest.NewRequest(http.MethodGet, "/cargo-scheduling/slots?date=2026-09-14", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.SlotResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "09:00", got[0].TimeSlot)
	assert.True(suite.T(), got[0].Bookable)
}

func (suite *SchedulingHandlerTestSuite) TestGetSlots_NoDate_ListsAll() {
	suite.mockSchedulingSv.EXPECT().GetAllSlots().Return([]service.SlotResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cargo-scheduling/slots", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestGetSlots_InvalidDate_BadRequest() {
	suite.mockSchedulingSv.EXPECT().GetSlots("bad").Return(nil, apperrors.ErrInvalidDateFormat)

	req := httptest.NewRequest(http.MethodGet, "/cargo-scheduling/slots?date=bad", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCreateWeekSlots_Success() {
	resp := &service.CreateWeekResponse{SlotsCreated: 70, Slots: []service.SlotResponse{}}
	suite.mockSchedulingSv.EXPECT().
		CreateWeekSlots(&service.CreateWeekRequest{StartDate: "2026-09-14", ServiceType: "cargo-loading"}).
		Return(resp, nil)

	w := suite.requestJSON(http.MethodPost, "/cargo-scheduling/create-week", gin.H{
		"startDate":   "2026-09-14",
		"serviceType": "cargo-loading",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.CreateWeekResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 70, got.SlotsCreated)
}

func (suite *SchedulingHandlerTestSuite) TestBlockSlots_Success() {
	id := uuid.New()
	resp := &service.BlockSlotsResponse{SlotsBlocked: 1, BlockedSlots: []service.SlotResponse{{ID: id}}}
	suite.mockSchedulingSv.EXPECT().BlockSlots(gomock.Any()).Return(resp, nil)

	w := suite.requestJSON(http.MethodPost, "/cargo-scheduling/block-slots", gin.H{
		"slotIds": []string{id.String()},
		"reason":  "yard maintenance",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCreateBooking_Success() {
	resp := &service.BookingResponse{ID: uuid.New(), Status: "scheduled", TimeSlot: "09:00"}
	suite.mockSchedulingSv.EXPECT().CreateBooking(gomock.Any()).Return(resp, nil)

	w := suite.requestJSON(http.MethodPost, "/cargo-scheduling/book", gin.H{
		"companyName":   "Transportadora Teste",
		"contactPerson": "Ana Souza",
		"contactEmail":  "ana@teste.com.br",
		"contactPhone":  "+55 11 99999-0000",
		"date":          "2026-09-14",
		"timeSlot":      "09:00",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCreateBooking_SlotNotFound() {
	suite.mockSchedulingSv.EXPECT().CreateBooking(gomock.Any()).Return(nil, apperrors.ErrSlotNotFound)

	w := suite.requestJSON(http.MethodPost, "/cargo-scheduling/book", gin.H{
		"companyName":   "Transportadora Teste",
		"contactPerson": "Ana Souza",
		"contactEmail":  "ana@teste.com.br",
		"contactPhone":  "+55 11 99999-0000",
		"date":          "2026-09-14",
		"timeSlot":      "09:00",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCreateBooking_FullSlot_Conflict() {
	suite.mockSchedulingSv.EXPECT().CreateBooking(gomock.Any()).Return(nil, apperrors.ErrSlotNotBookable)

	w := suite.requestJSON(http.MethodPost, "/cargo-scheduling/book", gin.H{
		"companyName":   "Transportadora Teste",
		"contactPerson": "Ana Souza",
		"contactEmail":  "ana@teste.com.br",
		"contactPhone":  "+55 11 99999-0000",
		"date":          "2026-09-14",
		"timeSlot":      "09:00",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestMyBookings_Success() {
	suite.mockSchedulingSv.EXPECT().
		GetBookingsByClient("client-1").
		Return([]service.BookingResponse{{ID: uuid.New(), ClientID: "client-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cargo-scheduling/my-bookings?clientId=client-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.BookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "client-1", got[0].ClientID)
}

func (suite *SchedulingHandlerTestSuite) TestMyBookings_MissingClientID() {
	suite.mockSchedulingSv.EXPECT().
		GetBookingsByClient("").
		Return(nil, apperrors.NewValidationError("clientId", "is required"))

	req := httptest.NewRequest(http.MethodGet, "/cargo-scheduling/my-bookings", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestAllBookings_Success() {
	suite.mockSchedulingSv.EXPECT().
		GetAllBookings().
		Return([]service.BookingResponse{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cargo-scheduling/all-bookings", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.BookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func (suite *SchedulingHandlerTestSuite) TestCancelBooking_Success() {
	id := uuid.New()
	resp := &service.BookingResponse{ID: id, Status: "cancelled", CancellationReason: "no longer needed"}
	suite.mockSchedulingSv.EXPECT().CancelBooking(id, "no longer needed").Return(resp, nil)

	w := suite.requestJSON(http.MethodDelete, "/cargo-scheduling/cancel/"+id.String(), gin.H{"reason": "no longer needed"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Message string                  `json:"message"`
		Booking service.BookingResponse `json:"booking"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "booking cancelled", got.Message)
	assert.Equal(suite.T(), id, got.Booking.ID)
}

func (suite *SchedulingHandlerTestSuite) TestCancelBooking_InvalidID() {
	w := suite.requestJSON(http.MethodDelete, "/cargo-scheduling/cancel/not-a-uuid", gin.H{"reason": "no longer needed"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCancelBooking_WindowPassed_Forbidden() {
	id := uuid.New()
	suite.mockSchedulingSv.EXPECT().CancelBooking(id, "too late").Return(nil, apperrors.ErrCancellationWindow)

	w := suite.requestJSON(http.MethodDelete, "/cargo-scheduling/cancel/"+id.String(), gin.H{"reason": "too late"})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCancelBooking_AlreadyFinal_Conflict() {
	id := uuid.New()
	suite.mockSchedulingSv.EXPECT().CancelBooking(id, "again").Return(nil, apperrors.ErrBookingAlreadyFinal)

	w := suite.requestJSON(http.MethodDelete, "/cargo-scheduling/cancel/"+id.String(), gin.H{"reason": "again"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestCancelBooking_NotFound() {
	id := uuid.New()
	suite.mockSchedulingSv.EXPECT().CancelBooking(id, "gone").Return(nil, apperrors.ErrBookingNotFound)

	w := suite.requestJSON(http.MethodDelete, "/cargo-scheduling/cancel/"+id.String(), gin.H{"reason": "gone"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SchedulingHandlerTestSuite) TestManagerAction_Complete_Success() {
	id := uuid.New()
	resp := &service.BookingResponse{ID: id, Status: "completed"}
	suite.mockSchedulingSv.EXPECT().ManagerAction(id, "complete", "delivered").Return(resp, nil)

	w := suite.requestJSON(http.MethodPatch, "/cargo-scheduling/manager-action/"+id.String(), gin.H{
		"action": "complete",
		"notes":  "delivered",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.BookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.BookingStatusCompleted, got.Status)
}

func (suite *SchedulingHandlerTestSuite) TestManagerAction_InvalidAction_BadRequest() {
	id := uuid.New()
	suite.mockSchedulingSv.EXPECT().ManagerAction(id, "postpone", "").Return(nil, apperrors.ErrInvalidManagerAction)

	w := suite.requestJSON(http.MethodPatch, "/cargo-scheduling/manager-action/"+id.String(), gin.H{"action": "postpone"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestSchedulingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulingHandlerTestSuite))
}
