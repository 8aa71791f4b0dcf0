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

// TeamScoreRepositoryTestSuite tests the TeamScoreRepository
type TeamScoreRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamScoreRepository
	eventFactory  *testutils.EventFactory
	roundFactory  *testutils.RoundFactory
	teamFactory   *testutils.TeamFactory
	scoreFactory  *testutils.TeamScoreFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TeamScoreRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamScoreRepository(suite.baseTestSuite.DB)
	suite.eventFactory = testutils.NewEventFactory()
	suite.roundFactory = testutils.NewRoundFactory()
	suite.teamFactory = testutils.NewTeamFactory()
	suite.scoreFactory = testutils.NewTeamScoreFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamScoreRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamScoreRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamScoreRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func TestTeamScoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamScoreRepositoryTestSuite))
}

// helper to insert an event with one open round
func (suite *TeamScoreRepositoryTestSuite) createRound(number int) *models.Round {
	event := suite.eventFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(event).Error)
	round := suite.roundFactory.Create(event.EventID, number)
	suite.NoError(suite.baseTestSuite.DB.Create(round).Error)
	return round
}

// helper to insert a team
func (suite *TeamScoreRepositoryTestSuite) createTeam(teamID string) *models.Team {
	team := suite.teamFactory.WithTeamID(teamID)
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

func (suite *TeamScoreRepositoryTestSuite) TestUpsertInsertsThenUpdates() {
	round := suite.createRound(1)
	suite.createTeam("CRES-A")

	score := suite.scoreFactory.Create(round, "CRES-A")
	suite.NoError(suite.repo.Upsert(score))

	// Same (round, team) pair updates in place instead of inserting
	evaluated := suite.scoreFactory.Evaluated(round, "CRES-A", models.ScoreMap{"Innovation": 40, "Execution": 35})
	evaluated.NormalizedScore = 75
	evaluated.IsNormalized = true
	suite.NoError(suite.repo.Upsert(evaluated))

	rows, err := suite.repo.GetByRound(round.ID)
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(75.0, rows[0].RawTotalScore)
	suite.Equal(75.0, rows[0].NormalizedScore)
	suite.True(rows[0].IsNormalized)
}

func (suite *TeamScoreRepositoryTestSuite) TestCreateBatchSkipsExistingPairs() {
	round := suite.createRound(1)
	suite.createTeam("CRES-A")
	suite.createTeam("CRES-B")

	evaluated := suite.scoreFactory.Evaluated(round, "CRES-A", models.ScoreMap{"Innovation": 30})
	suite.NoError(suite.repo.Upsert(evaluated))

	err := suite.repo.CreateBatch([]models.TeamScore{
		*suite.scoreFactory.Create(round, "CRES-A"),
		*suite.scoreFactory.Create(round, "CRES-B"),
	})
	suite.NoError(err)

	rows, err := suite.repo.GetByRound(round.ID)
	suite.NoError(err)
	suite.Len(rows, 2)

	// The existing evaluation must survive the batch seed
	existing, err := suite.repo.GetByRoundAndTeam(round.ID, "CRES-A")
	suite.NoError(err)
	suite.Equal(30.0, existing.RawTotalScore)
}

func (suite *TeamScoreRepositoryTestSuite) TestGetByRoundOrdersByTeamID() {
	round := suite.createRound(1)
	suite.createTeam("CRES-B")
	suite.createTeam("CRES-A")
	suite.NoError(suite.repo.Upsert(suite.scoreFactory.Create(round, "CRES-B")))
	suite.NoError(suite.repo.Upsert(suite.scoreFactory.Create(round, "CRES-A")))

	rows, err := suite.repo.GetByRound(round.ID)
	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal("CRES-A", rows[0].TeamID)
	suite.Equal("CRES-B", rows[1].TeamID)
}

func (suite *TeamScoreRepositoryTestSuite) TestGetByRoundAndTeamNotFound() {
	round := suite.createRound(1)

	score, err := suite.repo.GetByRoundAndTeam(round.ID, "CRES-NONE")
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(score)
}

func (suite *TeamScoreRepositoryTestSuite) TestGetByTeamAndRounds() {
	first := suite.createRound(1)
	second := suite.createRound(1)
	suite.createTeam("CRES-A")
	suite.NoError(suite.repo.Upsert(suite.scoreFactory.Create(first, "CRES-A")))
	suite.NoError(suite.repo.Upsert(suite.scoreFactory.Create(second, "CRES-A")))

	rows, err := suite.repo.GetByTeamAndRounds("CRES-A", []uuid.UUID{first.ID})
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(first.ID, rows[0].RoundID)

	rows, err = suite.repo.GetByTeamAndRounds("CRES-A", nil)
	suite.NoError(err)
	suite.Nil(rows)
}

func (suite *TeamScoreRepositoryTestSuite) TestDeleteByRound() {
	round := suite.createRound(1)
	suite.createTeam("CRES-A")
	suite.NoError(suite.repo.Upsert(suite.scoreFactory.Create(round, "CRES-A")))

	suite.NoError(suite.repo.DeleteByRound(round.ID))

	rows, err := suite.repo.GetByRound(round.ID)
	suite.NoError(err)
	suite.Len(rows, 0)
}
