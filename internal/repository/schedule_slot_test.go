//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"felka-transportes-backend/internal/database/models"
	"felka-transportes-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScheduleSlotRepositoryTestSuite tests the ScheduleSlotRepository
type ScheduleSlotRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScheduleSlotRepository
	factory       *testutils.SlotFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ScheduleSlotRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScheduleSlotRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewSlotFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScheduleSlotRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScheduleSlotRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScheduleSlotRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ScheduleSlotRepositoryTestSuite) weekOf(start time.Time, labels ...string) []models.ScheduleSlot {
	var slots []models.ScheduleSlot
	for day := 0; day < 7; day++ {
		for _, label := range labels {
			slots = append(slots, *suite.factory.OnDate(start.AddDate(0, 0, day), label))
		}
	}
	return slots
}

func (suite *ScheduleSlotRepositoryTestSuite) TestCreateBatch() {
	start := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	slots := suite.weekOf(start, "08:00", "09:00")

	created, err := suite.repo.CreateBatch(slots)

	suite.NoError(err)
	suite.Equal(int64(14), created)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestCreateBatchSkipsExistingPairs() {
	start := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)

	created, err := suite.repo.CreateBatch(suite.weekOf(start, "08:00"))
	suite.NoError(err)
	suite.Equal(int64(7), created)

	// Second run over the same week inserts nothing
	created, err = suite.repo.CreateBatch(suite.weekOf(start, "08:00"))
	suite.NoError(err)
	suite.Equal(int64(0), created)

	// A run with one new label only inserts the new pairs
	created, err = suite.repo.CreateBatch(suite.weekOf(start, "08:00", "09:00"))
	suite.NoError(err)
	suite.Equal(int64(7), created)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestGetByDateOrdersByTimeSlot() {
	date := time.Now().AddDate(0, 0, 2).Truncate(24 * time.Hour)
	for _, label := range []string{"14:00", "08:00", "10:00"} {
		suite.NoError(suite.baseTestSuite.DB.Create(suite.factory.OnDate(date, label)).Error)
	}

	slots, err := suite.repo.GetByDate(date)

	suite.NoError(err)
	suite.Len(slots, 3)
	suite.Equal("08:00", slots[0].TimeSlot)
	suite.Equal("10:00", slots[1].TimeSlot)
	suite.Equal("14:00", slots[2].TimeSlot)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestGetByDateEmptyResult() {
	slots, err := suite.repo.GetByDate(time.Now().AddDate(0, 0, 30))

	suite.NoError(err)
	suite.Empty(slots)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestGetByDateAndTime() {
	slot := suite.factory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(slot).Error)

	found, err := suite.repo.GetByDateAndTime(slot.Date, slot.TimeSlot)

	suite.NoError(err)
	suite.Equal(slot.ID, found.ID)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestGetByDateAndTimeNotFound() {
	_, err := suite.repo.GetByDateAndTime(time.Now().AddDate(0, 0, 30), "09:00")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestGetByDateRangeIsInclusive() {
	start := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	_, err := suite.repo.CreateBatch(suite.weekOf(start, "08:00"))
	suite.NoError(err)

	slots, err := suite.repo.GetByDateRange(start, start.AddDate(0, 0, 6))

	suite.NoError(err)
	suite.Len(slots, 7)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestBlock() {
	first := suite.factory.OnDate(time.Now().AddDate(0, 0, 3), "08:00")
	second := suite.factory.OnDate(time.Now().AddDate(0, 0, 3), "09:00")
	untouched := suite.factory.OnDate(time.Now().AddDate(0, 0, 3), "10:00")
	for _, s := range []*models.ScheduleSlot{first, second, untouched} {
		suite.NoError(suite.baseTestSuite.DB.Create(s).Error)
	}

	blocked, err := suite.repo.Block([]uuid.UUID{first.ID, second.ID}, "yard maintenance")

	suite.NoError(err)
	suite.Len(blocked, 2)
	for _, s := range blocked {
		suite.False(s.IsAvailable)
		suite.Equal("yard maintenance", s.BlockReason)
	}

	remaining, err := suite.repo.GetByID(untouched.ID)
	suite.NoError(err)
	suite.True(remaining.IsAvailable)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestBlockIgnoresUnknownIDs() {
	slot := suite.factory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(slot).Error)

	blocked, err := suite.repo.Block([]uuid.UUID{slot.ID, uuid.New()}, "yard maintenance")

	suite.NoError(err)
	suite.Len(blocked, 1)
	suite.Equal(slot.ID, blocked[0].ID)
}

func (suite *ScheduleSlotRepositoryTestSuite) TestCreateRejectsDuplicatePair() {
	slot := suite.factory.Create()
	suite.NoError(suite.repo.Create(slot))

	dup := suite.factory.OnDate(slot.Date, slot.TimeSlot)
	err := suite.repo.Create(dup)

	suite.Error(err)
}

func TestScheduleSlotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleSlotRepositoryTestSuite))
}
