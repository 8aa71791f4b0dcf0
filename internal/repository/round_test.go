//go:build integration
// +build integration

package repository

import (
	"testing"

	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RoundRepositoryTestSuite tests the RoundRepository
type RoundRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RoundRepository
	eventFactory  *testutils.EventFactory
	roundFactory  *testutils.RoundFactory
	teamFactory   *testutils.TeamFactory
	scoreFactory  *testutils.TeamScoreFactory
}

// SetupSuite runs before all tests in the suite
func (suite *RoundRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRoundRepository(suite.baseTestSuite.DB)
	suite.eventFactory = testutils.NewEventFactory()
	suite.roundFactory = testutils.NewRoundFactory()
	suite.teamFactory = testutils.NewTeamFactory()
	suite.scoreFactory = testutils.NewTeamScoreFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *RoundRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RoundRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RoundRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func TestRoundRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RoundRepositoryTestSuite))
}

// helper to insert an event directly via gorm
func (suite *RoundRepositoryTestSuite) createEvent() *models.Event {
	event := suite.eventFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(event).Error)
	return event
}

// helper to insert a round in the given state
func (suite *RoundRepositoryTestSuite) createRound(eventID string, number int, state models.RoundState) *models.Round {
	round := suite.roundFactory.WithState(eventID, number, state)
	suite.NoError(suite.baseTestSuite.DB.Create(round).Error)
	return round
}

// helper to insert a team with the given status
func (suite *RoundRepositoryTestSuite) createTeam(teamID string, status models.TeamStatus) *models.Team {
	team := suite.teamFactory.WithTeamID(teamID)
	team.Status = status
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

func (suite *RoundRepositoryTestSuite) TestCreateAndGetByID() {
	event := suite.createEvent()
	round := suite.roundFactory.Create(event.EventID, 1)

	suite.NoError(suite.repo.Create(round))

	retrieved, err := suite.repo.GetByID(round.ID)
	suite.NoError(err)
	suite.Equal(round.ID, retrieved.ID)
	suite.Equal(1, retrieved.RoundNumber)
	suite.Equal(models.RoundStateOpen, retrieved.State)
	suite.Len(retrieved.Criteria, 2)
}

func (suite *RoundRepositoryTestSuite) TestGetByIDNotFound() {
	round, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(round)
}

func (suite *RoundRepositoryTestSuite) TestGetByEventAndNumber() {
	event := suite.createEvent()
	suite.createRound(event.EventID, 1, models.RoundStateOpen)
	second := suite.createRound(event.EventID, 2, models.RoundStateOpen)

	retrieved, err := suite.repo.GetByEventAndNumber(event.EventID, 2)
	suite.NoError(err)
	suite.Equal(second.ID, retrieved.ID)

	_, err = suite.repo.GetByEventAndNumber(event.EventID, 9)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *RoundRepositoryTestSuite) TestGetByEventIDOrdersByNumber() {
	event := suite.createEvent()
	suite.createRound(event.EventID, 3, models.RoundStateOpen)
	suite.createRound(event.EventID, 1, models.RoundStateOpen)
	suite.createRound(event.EventID, 2, models.RoundStateOpen)

	rounds, err := suite.repo.GetByEventID(event.EventID)
	suite.NoError(err)
	suite.Len(rounds, 3)
	suite.Equal(1, rounds[0].RoundNumber)
	suite.Equal(2, rounds[1].RoundNumber)
	suite.Equal(3, rounds[2].RoundNumber)
}

func (suite *RoundRepositoryTestSuite) TestGetByState() {
	event := suite.createEvent()
	suite.createRound(event.EventID, 1, models.RoundStateEvaluated)
	suite.createRound(event.EventID, 2, models.RoundStateFrozen)
	suite.createRound(event.EventID, 3, models.RoundStateOpen)

	evaluated, err := suite.repo.GetByState(models.RoundStateEvaluated)
	suite.NoError(err)
	suite.Len(evaluated, 1)

	locked, err := suite.repo.GetByState(models.RoundStateEvaluated, models.RoundStateFrozen)
	suite.NoError(err)
	suite.Len(locked, 2)
	suite.Equal(1, locked[0].RoundNumber)
	suite.Equal(2, locked[1].RoundNumber)
}

func (suite *RoundRepositoryTestSuite) TestReorderRounds() {
	event := suite.createEvent()
	first := suite.createRound(event.EventID, 1, models.RoundStateOpen)
	second := suite.createRound(event.EventID, 2, models.RoundStateOpen)

	// Swapping numbers collides on the unique index unless staged
	err := suite.repo.ReorderRounds(event.EventID, map[uuid.UUID]int{
		first.ID:  2,
		second.ID: 1,
	})
	suite.NoError(err)

	rounds, err := suite.repo.GetByEventID(event.EventID)
	suite.NoError(err)
	suite.Equal(second.ID, rounds[0].ID)
	suite.Equal(first.ID, rounds[1].ID)
}

func (suite *RoundRepositoryTestSuite) TestReorderRoundsRejectsForeignRound() {
	event := suite.createEvent()
	other := suite.createEvent()
	mine := suite.createRound(event.EventID, 1, models.RoundStateOpen)
	foreign := suite.createRound(other.EventID, 1, models.RoundStateOpen)

	err := suite.repo.ReorderRounds(event.EventID, map[uuid.UUID]int{
		mine.ID:    2,
		foreign.ID: 3,
	})
	suite.Error(err)

	// The transaction must roll back the staged renumbering
	retrieved, err := suite.repo.GetByID(mine.ID)
	suite.NoError(err)
	suite.Equal(1, retrieved.RoundNumber)
}

func (suite *RoundRepositoryTestSuite) TestCommitShortlist() {
	event := suite.createEvent()
	round := suite.createRound(event.EventID, 1, models.RoundStateFrozen)
	suite.createTeam("CRES-A", models.TeamStatusActive)
	suite.createTeam("CRES-B", models.TeamStatusActive)

	err := suite.repo.CommitShortlist(&ShortlistCommit{
		ShortlistedTeamIDs: []string{"CRES-A"},
		EliminatedTeamIDs:  []string{"CRES-B"},
		EvaluateRoundIDs:   []uuid.UUID{round.ID},
		NextRoundNumber:    2,
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(round.ID)
	suite.NoError(err)
	suite.Equal(models.RoundStateEvaluated, retrieved.State)
	suite.Equal(models.StringList{"CRES-A"}, retrieved.ShortlistedTeams)

	var kept, dropped models.Team
	suite.NoError(suite.baseTestSuite.DB.First(&kept, "team_id = ?", "CRES-A").Error)
	suite.NoError(suite.baseTestSuite.DB.First(&dropped, "team_id = ?", "CRES-B").Error)
	suite.Equal(models.TeamStatusActive, kept.Status)
	suite.Equal(2, kept.CurrentRound)
	suite.Equal(models.TeamStatusEliminated, dropped.Status)
	suite.Equal(1, dropped.CurrentRound)
}

func (suite *RoundRepositoryTestSuite) TestCommitShortlistRollsBackOnStateDrift() {
	event := suite.createEvent()
	frozen := suite.createRound(event.EventID, 1, models.RoundStateFrozen)
	open := suite.createRound(event.EventID, 2, models.RoundStateOpen)
	suite.createTeam("CRES-A", models.TeamStatusActive)
	suite.createTeam("CRES-B", models.TeamStatusActive)

	err := suite.repo.CommitShortlist(&ShortlistCommit{
		ShortlistedTeamIDs: []string{"CRES-A"},
		EliminatedTeamIDs:  []string{"CRES-B"},
		EvaluateRoundIDs:   []uuid.UUID{frozen.ID, open.ID},
		NextRoundNumber:    3,
	})
	suite.Error(err)
	suite.True(apperrors.IsConsistency(err))

	// Nothing may have been applied
	retrieved, err := suite.repo.GetByID(frozen.ID)
	suite.NoError(err)
	suite.Equal(models.RoundStateFrozen, retrieved.State)

	var team models.Team
	suite.NoError(suite.baseTestSuite.DB.First(&team, "team_id = ?", "CRES-B").Error)
	suite.Equal(models.TeamStatusActive, team.Status)
}

func (suite *RoundRepositoryTestSuite) TestCommitShortlistRollsBackOnTeamDrift() {
	event := suite.createEvent()
	round := suite.createRound(event.EventID, 1, models.RoundStateFrozen)
	suite.createTeam("CRES-A", models.TeamStatusActive)
	suite.createTeam("CRES-B", models.TeamStatusEliminated)

	err := suite.repo.CommitShortlist(&ShortlistCommit{
		ShortlistedTeamIDs: []string{"CRES-A"},
		EliminatedTeamIDs:  []string{"CRES-B"},
		EvaluateRoundIDs:   []uuid.UUID{round.ID},
		NextRoundNumber:    2,
	})
	suite.Error(err)
	suite.True(apperrors.IsConsistency(err))

	retrieved, err := suite.repo.GetByID(round.ID)
	suite.NoError(err)
	suite.Equal(models.RoundStateFrozen, retrieved.State)
}

func (suite *RoundRepositoryTestSuite) TestDeleteCascades() {
	event := suite.createEvent()
	round := suite.createRound(event.EventID, 1, models.RoundStateOpen)
	team := suite.createTeam("CRES-A", models.TeamStatusActive)
	score := suite.scoreFactory.Create(round, team.TeamID)
	suite.NoError(suite.baseTestSuite.DB.Create(score).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(&models.RoundWeight{RoundID: round.ID, WeightPercentage: 100}).Error)

	suite.NoError(suite.repo.Delete(round.ID))

	_, err := suite.repo.GetByID(round.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var scores int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TeamScore{}).Where("round_id = ?", round.ID).Count(&scores).Error)
	suite.Equal(int64(0), scores)

	var weights int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.RoundWeight{}).Where("round_id = ?", round.ID).Count(&weights).Error)
	suite.Equal(int64(0), weights)
}

func (suite *RoundRepositoryTestSuite) TestCounts() {
	event := suite.createEvent()
	suite.createRound(event.EventID, 1, models.RoundStateEvaluated)
	suite.createRound(event.EventID, 2, models.RoundStateFrozen)
	suite.createRound(event.EventID, 3, models.RoundStateOpen)

	frozen, err := suite.repo.CountByState(models.RoundStateFrozen)
	suite.NoError(err)
	suite.Equal(int64(1), frozen)

	total, err := suite.repo.CountAll()
	suite.NoError(err)
	suite.Equal(int64(3), total)
}
