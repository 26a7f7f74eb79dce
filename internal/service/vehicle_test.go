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

type VehicleServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockVehicleRepositoryInterface
	vehicleService *service.VehicleService
}

func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockVehicleRepositoryInterface(suite.ctrl)
	suite.vehicleService = service.NewVehicleService(suite.mockRepo, validator.New())
}

func (suite *VehicleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func activeVehicle() *models.Vehicle {
	return &models.Vehicle{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Plate:     "FKA1A23",
		Brand:     "Volvo",
		Model:     "FH 540",
		Year:      2021,
		Category:  "truck",
		Status:    models.VehicleStatusActive,
		Odometer:  120000,
	}
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_Success() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	vehicle, err := suite.vehicleService.CreateVehicle(&service.CreateVehicleRequest{
		Plate: "FKA1A23",
		Brand: "Volvo",
		Model: "FH 540",
		Year:  2021,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.VehicleStatusActive, vehicle.Status)
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_DuplicatePlate() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.vehicleService.CreateVehicle(&service.CreateVehicleRequest{
		Plate: "FKA1A23",
		Brand: "Volvo",
		Model: "FH 540",
		Year:  2021,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrVehicleExists)
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_YearOutOfRange() {
	_, err := suite.vehicleService.CreateVehicle(&service.CreateVehicleRequest{
		Plate: "FKA1A23",
		Brand: "Volvo",
		Model: "FH 540",
		Year:  1950,
	})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicle_OdometerCannotDecrease() {
	vehicle := activeVehicle()
	suite.mockRepo.EXPECT().GetByID(vehicle.ID).Return(vehicle, nil)

	lower := 100000
	_, err := suite.vehicleService.UpdateVehicle(vehicle.ID, &service.UpdateVehicleRequest{
		Odometer: &lower,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicle_OdometerAdvances() {
	vehicle := activeVehicle()
	suite.mockRepo.EXPECT().GetByID(vehicle.ID).Return(vehicle, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	higher := 125000
	result, err := suite.vehicleService.UpdateVehicle(vehicle.ID, &service.UpdateVehicleRequest{
		Odometer: &higher,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 125000, result.Odometer)
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicle_InvalidStatus() {
	vehicle := activeVehicle()
	suite.mockRepo.EXPECT().GetByID(vehicle.ID).Return(vehicle, nil)

	_, err := suite.vehicleService.UpdateVehicle(vehicle.ID, &service.UpdateVehicleRequest{
		Status: "scrapped",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicle_SendToMaintenance() {
	vehicle := activeVehicle()
	suite.mockRepo.EXPECT().GetByID(vehicle.ID).Return(vehicle, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	result, err := suite.vehicleService.UpdateVehicle(vehicle.ID, &service.UpdateVehicleRequest{
		Status: "maintenance",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.VehicleStatusMaintenance, result.Status)
}

func (suite *VehicleServiceTestSuite) TestGetVehicle_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.vehicleService.GetVehicle(id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVehicleNotFound)
}

func (suite *VehicleServiceTestSuite) TestDeleteVehicle_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.vehicleService.DeleteVehicle(id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVehicleNotFound)
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
