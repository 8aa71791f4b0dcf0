//go:build integration
// +build integration

package repository

import (
	"testing"

	"crestora-backend/internal/database/models"
	"crestora-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RoundWeightRepositoryTestSuite tests the RoundWeightRepository
type RoundWeightRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RoundWeightRepository
	eventFactory  *testutils.EventFactory
	roundFactory  *testutils.RoundFactory
}

// SetupSuite runs before all tests in the suite
func (suite *RoundWeightRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRoundWeightRepository(suite.baseTestSuite.DB)
	suite.eventFactory = testutils.NewEventFactory()
	suite.roundFactory = testutils.NewRoundFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *RoundWeightRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RoundWeightRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RoundWeightRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func TestRoundWeightRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RoundWeightRepositoryTestSuite))
}

// helper to insert a round
func (suite *RoundWeightRepositoryTestSuite) createRound() *models.Round {
	event := suite.eventFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(event).Error)
	round := suite.roundFactory.Create(event.EventID, 1)
	suite.NoError(suite.baseTestSuite.DB.Create(round).Error)
	return round
}

func (suite *RoundWeightRepositoryTestSuite) TestUpsertInsertsThenUpdates() {
	round := suite.createRound()

	weight, err := suite.repo.Upsert(round.ID, 100)
	suite.NoError(err)
	suite.Equal(100.0, weight.WeightPercentage)

	weight, err = suite.repo.Upsert(round.ID, 150)
	suite.NoError(err)
	suite.Equal(150.0, weight.WeightPercentage)

	// Still one row per round
	weights, err := suite.repo.GetByRoundIDs([]uuid.UUID{round.ID})
	suite.NoError(err)
	suite.Len(weights, 1)
}

func (suite *RoundWeightRepositoryTestSuite) TestGetByRoundIDNotFound() {
	weight, err := suite.repo.GetByRoundID(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(weight)
}

func (suite *RoundWeightRepositoryTestSuite) TestGetByRoundIDsEmptyInput() {
	weights, err := suite.repo.GetByRoundIDs(nil)

	suite.NoError(err)
	suite.Nil(weights)
}

func (suite *RoundWeightRepositoryTestSuite) TestDeleteByRound() {
	round := suite.createRound()
	_, err := suite.repo.Upsert(round.ID, 100)
	suite.NoError(err)

	suite.NoError(suite.repo.DeleteByRound(round.ID))

	_, err = suite.repo.GetByRoundID(round.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}
