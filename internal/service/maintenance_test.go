package service_test

import (
	"testing"

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

type MaintenanceServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockMaintenanceRequestRepositoryInterface
	mockVehicleRepo    *mocks.MockVehicleRepositoryInterface
	maintenanceService *service.MaintenanceService
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMaintenanceRequestRepositoryInterface(suite.ctrl)
	suite.mockVehicleRepo = mocks.NewMockVehicleRepositoryInterface(suite.ctrl)
	suite.maintenanceService = service.NewMaintenanceService(suite.mockRepo, suite.mockVehicleRepo, validator.New())
}

func (suite *MaintenanceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func openRequest() *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		VehicleID:   uuid.New(),
		RequestedBy: "Carlos Lima",
		Description: "brake pads worn",
		Priority:    models.MaintenancePriorityHigh,
		Status:      models.MaintenanceStatusOpen,
	}
}

func (suite *MaintenanceServiceTestSuite) TestCreateRequest_DefaultsToMediumPriority() {
	vehicleID := uuid.New()
	suite.mockVehicleRepo.EXPECT().GetByID(vehicleID).Return(&models.Vehicle{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	request, err := suite.maintenanceService.CreateRequest(&service.CreateMaintenanceRequest{
		VehicleID:   vehicleID,
		RequestedBy: "Carlos Lima",
		Description: "brake pads worn",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MaintenancePriorityMedium, request.Priority)
	assert.Equal(suite.T(), models.MaintenanceStatusOpen, request.Status)
}

func (suite *MaintenanceServiceTestSuite) TestCreateRequest_InvalidPriority() {
	_, err := suite.maintenanceService.CreateRequest(&service.CreateMaintenanceRequest{
		VehicleID:   uuid.New(),
		RequestedBy: "Carlos Lima",
		Description: "brake pads worn",
		Priority:    "urgent",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPriority)
}

func (suite *MaintenanceServiceTestSuite) TestCreateRequest_UnknownVehicle() {
	vehicleID := uuid.New()
	suite.mockVehicleRepo.EXPECT().GetByID(vehicleID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.maintenanceService.CreateRequest(&service.CreateMaintenanceRequest{
		VehicleID:   vehicleID,
		RequestedBy: "Carlos Lima",
		Description: "brake pads worn",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrVehicleNotFound)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateStatus_ResolveStampsResolvedAt() {
	request := openRequest()
	suite.mockRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	result, err := suite.maintenanceService.UpdateStatus(request.ID, &service.UpdateMaintenanceStatusRequest{
		Status:       "resolved",
		ManagerNotes: "pads replaced",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MaintenanceStatusResolved, result.Status)
	assert.Equal(suite.T(), "pads replaced", result.ManagerNotes)
	assert.NotNil(suite.T(), result.ResolvedAt)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateStatus_InProgressDoesNotStamp() {
	request := openRequest()
	suite.mockRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	result, err := suite.maintenanceService.UpdateStatus(request.ID, &service.UpdateMaintenanceStatusRequest{
		Status: "in_progress",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MaintenanceStatusInProgress, result.Status)
	assert.Nil(suite.T(), result.ResolvedAt)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateStatus_TerminalTicketRejected() {
	request := openRequest()
	request.Status = models.MaintenanceStatusResolved
	suite.mockRepo.EXPECT().GetByID(request.ID).Return(request, nil)

	_, err := suite.maintenanceService.UpdateStatus(request.ID, &service.UpdateMaintenanceStatusRequest{
		Status: "cancelled",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMaintenanceAlreadyFinal)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	_, err := suite.maintenanceService.UpdateStatus(uuid.New(), &service.UpdateMaintenanceStatusRequest{
		Status: "done",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *MaintenanceServiceTestSuite) TestListRequests_InvalidStatusFilter() {
	_, err := suite.maintenanceService.ListRequests(nil, "done", 50, 0)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *MaintenanceServiceTestSuite) TestListRequests_FiltersByVehicle() {
	vehicleID := uuid.New()
	suite.mockRepo.EXPECT().
		GetAll(&vehicleID, models.MaintenanceStatus(""), 50, 0).
		Return([]models.MaintenanceRequest{*openRequest()}, int64(1), nil)

	resp, err := suite.maintenanceService.ListRequests(&vehicleID, "", 50, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Requests, 1)
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
