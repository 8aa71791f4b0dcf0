//go:build integration
// +build integration

package repository

import (
	"testing"

	"crestora-backend/internal/database/models"
	"crestora-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factory       *testutils.TeamFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewTeamFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}

// helper to insert a team with the given ID and status
func (suite *TeamRepositoryTestSuite) createTeam(teamID string, status models.TeamStatus) *models.Team {
	team := suite.factory.WithTeamID(teamID)
	team.Status = status
	suite.NoError(suite.repo.Create(team))
	return team
}

func (suite *TeamRepositoryTestSuite) TestCreateWithMembers() {
	team := suite.factory.WithTeamID("CRES-A")
	team.Members = []models.TeamMember{
		{TeamID: "CRES-A", MemberName: team.LeaderName, RegisterNumber: team.LeaderRegisterNumber, MemberPosition: "leader"},
		{TeamID: "CRES-A", MemberName: "Second Member", RegisterNumber: "RA221100102", MemberPosition: "member2"},
	}

	suite.NoError(suite.repo.Create(team))

	retrieved, err := suite.repo.GetWithMembers("CRES-A")
	suite.NoError(err)
	suite.Len(retrieved.Members, 2)
}

func (suite *TeamRepositoryTestSuite) TestCreateDuplicateTeamID() {
	suite.createTeam("CRES-A", models.TeamStatusActive)

	err := suite.repo.Create(suite.factory.WithTeamID("CRES-A"))
	suite.Error(err)
}

func (suite *TeamRepositoryTestSuite) TestGetByTeamIDNotFound() {
	team, err := suite.repo.GetByTeamID("CRES-NONE")

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

func (suite *TeamRepositoryTestSuite) TestGetAllWithStatusFilter() {
	suite.createTeam("CRES-A", models.TeamStatusActive)
	suite.createTeam("CRES-B", models.TeamStatusEliminated)
	suite.createTeam("CRES-C", models.TeamStatusActive)

	active := models.TeamStatusActive
	teams, total, err := suite.repo.GetAll(&active, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(teams, 2)
	suite.Equal("CRES-A", teams[0].TeamID)
	suite.Equal("CRES-C", teams[1].TeamID)
}

func (suite *TeamRepositoryTestSuite) TestGetAllPagination() {
	suite.createTeam("CRES-A", models.TeamStatusActive)
	suite.createTeam("CRES-B", models.TeamStatusActive)
	suite.createTeam("CRES-C", models.TeamStatusActive)

	teams, total, err := suite.repo.GetAll(nil, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(teams, 2)

	teams, _, err = suite.repo.GetAll(nil, 2, 2)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal("CRES-C", teams[0].TeamID)
}

func (suite *TeamRepositoryTestSuite) TestSetStatusBatch() {
	suite.createTeam("CRES-A", models.TeamStatusActive)
	suite.createTeam("CRES-B", models.TeamStatusActive)
	suite.createTeam("CRES-C", models.TeamStatusActive)

	err := suite.repo.SetStatusBatch([]string{"CRES-A", "CRES-C"}, models.TeamStatusEliminated)
	suite.NoError(err)

	eliminated, err := suite.repo.GetByStatus(models.TeamStatusEliminated)
	suite.NoError(err)
	suite.Len(eliminated, 2)

	active, err := suite.repo.GetByStatus(models.TeamStatusActive)
	suite.NoError(err)
	suite.Len(active, 1)
	suite.Equal("CRES-B", active[0].TeamID)
}

func (suite *TeamRepositoryTestSuite) TestSetStatusBatchEmptyIsNoop() {
	suite.createTeam("CRES-A", models.TeamStatusActive)

	suite.NoError(suite.repo.SetStatusBatch(nil, models.TeamStatusEliminated))

	count, err := suite.repo.CountByStatus(models.TeamStatusActive)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *TeamRepositoryTestSuite) TestDeleteRemovesMembersAndScores() {
	team := suite.factory.WithTeamID("CRES-A")
	team.Members = []models.TeamMember{
		{TeamID: "CRES-A", MemberName: team.LeaderName, RegisterNumber: team.LeaderRegisterNumber, MemberPosition: "leader"},
	}
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Delete("CRES-A"))

	_, err := suite.repo.GetByTeamID("CRES-A")
	suite.Equal(gorm.ErrRecordNotFound, err)

	var members int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TeamMember{}).Where("team_id = ?", "CRES-A").Count(&members).Error)
	suite.Equal(int64(0), members)
}

func (suite *TeamRepositoryTestSuite) TestCountByCurrentRound() {
	suite.createTeam("CRES-A", models.TeamStatusActive)
	advanced := suite.factory.WithCurrentRound(2)
	suite.NoError(suite.repo.Create(advanced))

	count, err := suite.repo.CountByCurrentRound(2)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repo.CountByCurrentRound(5)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}
