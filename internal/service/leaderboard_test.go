package service_test

import (
	"testing"

	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/mocks"
	"crestora-backend/internal/repository"
	"crestora-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRounds  *mocks.MockRoundRepositoryInterface
	mockTeams   *mocks.MockTeamRepositoryInterface
	mockScores  *mocks.MockTeamScoreRepositoryInterface
	mockWeights *mocks.MockRoundWeightRepositoryInterface
	service     *service.LeaderboardService
	admin       service.Actor
	club        service.Actor
}

func (suite *LeaderboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRounds = mocks.NewMockRoundRepositoryInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockScores = mocks.NewMockTeamScoreRepositoryInterface(suite.ctrl)
	suite.mockWeights = mocks.NewMockRoundWeightRepositoryInterface(suite.ctrl)
	suite.service = service.NewLeaderboardService(
		suite.mockRounds,
		suite.mockTeams,
		suite.mockScores,
		suite.mockWeights,
		validator.New(),
	)
	suite.admin = service.Actor{Username: "admin", Role: models.UserRoleAdmin}
	suite.club = service.Actor{Username: "techclub", Role: models.UserRoleClubs, Club: "Tech Club"}
}

func (suite *LeaderboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func activeTeam(teamID, name string) models.Team {
	return models.Team{TeamID: teamID, TeamName: name, Status: models.TeamStatusActive, CurrentRound: 1}
}

func (suite *LeaderboardServiceTestSuite) TestComputeStandings() {
	round1 := models.Round{BaseModel: models.BaseModel{ID: uuid.New()}, RoundNumber: 1}
	round2 := models.Round{BaseModel: models.BaseModel{ID: uuid.New()}, RoundNumber: 2}

	suite.Run("weighted average skips rounds a team never entered", func() {
		teams := []models.Team{activeTeam("CRES-A", "Alpha"), activeTeam("CRES-B", "Beta")}
		weights := map[uuid.UUID]float64{round1.ID: 100, round2.ID: 200}
		scores := []models.TeamScore{
			{RoundID: round1.ID, TeamID: "CRES-A", NormalizedScore: 80},
			{RoundID: round2.ID, TeamID: "CRES-A", NormalizedScore: 50},
			{RoundID: round1.ID, TeamID: "CRES-B", NormalizedScore: 90},
		}

		entries := service.ComputeStandings(teams, []models.Round{round1, round2}, weights, scores)

		suite.Require().Len(entries, 2)
		// B missed round 2, so its average runs over round 1 alone
		suite.Equal("CRES-B", entries[0].TeamID)
		suite.Equal(90.0, entries[0].WeightedAverage)
		suite.Equal(1, entries[0].RoundsCompleted)
		// A: (80*100 + 50*200) / 300 = 60
		suite.Equal("CRES-A", entries[1].TeamID)
		suite.Equal(60.0, entries[1].WeightedAverage)
		suite.Equal(2, entries[1].RoundsCompleted)
	})

	suite.Run("final score rescales best team to hundred", func() {
		teams := []models.Team{activeTeam("CRES-A", "Alpha"), activeTeam("CRES-B", "Beta")}
		scores := []models.TeamScore{
			{RoundID: round1.ID, TeamID: "CRES-A", NormalizedScore: 80},
			{RoundID: round1.ID, TeamID: "CRES-B", NormalizedScore: 40},
		}

		entries := service.ComputeStandings(teams, []models.Round{round1}, map[uuid.UUID]float64{}, scores)

		suite.Equal(100.0, entries[0].FinalScore)
		suite.Equal(50.0, entries[1].FinalScore)
	})

	suite.Run("ties break by ascending team id with distinct ranks", func() {
		teams := []models.Team{activeTeam("CRES-B", "Beta"), activeTeam("CRES-A", "Alpha")}
		scores := []models.TeamScore{
			{RoundID: round1.ID, TeamID: "CRES-A", NormalizedScore: 75},
			{RoundID: round1.ID, TeamID: "CRES-B", NormalizedScore: 75},
		}

		entries := service.ComputeStandings(teams, []models.Round{round1}, map[uuid.UUID]float64{}, scores)

		suite.Equal("CRES-A", entries[0].TeamID)
		suite.Equal(1, entries[0].Rank)
		suite.Equal("CRES-B", entries[1].TeamID)
		suite.Equal(2, entries[1].Rank)
	})

	suite.Run("team without any score row holds zero average", func() {
		teams := []models.Team{activeTeam("CRES-A", "Alpha")}

		entries := service.ComputeStandings(teams, []models.Round{round1}, map[uuid.UUID]float64{}, nil)

		suite.Require().Len(entries, 1)
		suite.Equal(0.0, entries[0].WeightedAverage)
		suite.Equal(0.0, entries[0].FinalScore)
		suite.Equal(0, entries[0].RoundsCompleted)
	})

	suite.Run("unweighted rounds fall back to the default weight", func() {
		teams := []models.Team{activeTeam("CRES-A", "Alpha")}
		weights := map[uuid.UUID]float64{round2.ID: 300}
		scores := []models.TeamScore{
			{RoundID: round1.ID, TeamID: "CRES-A", NormalizedScore: 60},
			{RoundID: round2.ID, TeamID: "CRES-A", NormalizedScore: 100},
		}

		entries := service.ComputeStandings(teams, []models.Round{round1, round2}, weights, scores)

		// (60*100 + 100*300) / 400 = 90
		suite.Equal(90.0, entries[0].WeightedAverage)
	})
}

func (suite *LeaderboardServiceTestSuite) TestDecideShortlist() {
	entries := []service.LeaderboardEntry{
		{Rank: 1, TeamID: "CRES-A", WeightedAverage: 90},
		{Rank: 2, TeamID: "CRES-B", WeightedAverage: 70},
		{Rank: 3, TeamID: "CRES-C", WeightedAverage: 50},
	}

	suite.Run("top_k keeps the best k", func() {
		shortlisted, eliminated, err := service.DecideShortlist(entries, service.ShortlistModeTopK, 2)

		suite.Require().NoError(err)
		suite.Len(shortlisted, 2)
		suite.Len(eliminated, 1)
		suite.Equal("CRES-C", eliminated[0].TeamID)
	})

	suite.Run("top_k rejects fractional values", func() {
		_, _, err := service.DecideShortlist(entries, service.ShortlistModeTopK, 1.5)

		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("top_k rejects zero", func() {
		_, _, err := service.DecideShortlist(entries, service.ShortlistModeTopK, 0)

		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("top_k larger than the field is rejected", func() {
		_, _, err := service.DecideShortlist(entries, service.ShortlistModeTopK, 4)

		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("threshold is inclusive", func() {
		shortlisted, eliminated, err := service.DecideShortlist(entries, service.ShortlistModeThreshold, 70)

		suite.Require().NoError(err)
		suite.Len(shortlisted, 2)
		suite.Len(eliminated, 1)
	})

	suite.Run("threshold of zero keeps everyone", func() {
		shortlisted, eliminated, err := service.DecideShortlist(entries, service.ShortlistModeThreshold, 0)

		suite.Require().NoError(err)
		suite.Len(shortlisted, 3)
		suite.Empty(eliminated)
	})

	suite.Run("unknown mode is rejected", func() {
		_, _, err := service.DecideShortlist(entries, "best_half", 1)

		suite.True(apperrors.IsValidation(err))
	})
}

func (suite *LeaderboardServiceTestSuite) TestCompute_UsesEvaluatedRoundsOnly() {
	round := models.Round{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		RoundNumber: 1,
		Name:        "Ideathon",
		State:       models.RoundStateEvaluated,
	}
	suite.mockRounds.EXPECT().GetByState(models.RoundStateEvaluated).Return([]models.Round{round}, nil)
	suite.mockTeams.EXPECT().ListAll().Return([]models.Team{activeTeam("CRES-A", "Alpha")}, nil)
	suite.mockScores.EXPECT().GetByRounds([]uuid.UUID{round.ID}).Return([]models.TeamScore{
		{RoundID: round.ID, TeamID: "CRES-A", NormalizedScore: 85},
	}, nil)
	suite.mockWeights.EXPECT().GetByRoundIDs([]uuid.UUID{round.ID}).Return(nil, nil)

	response, err := suite.service.Compute()

	suite.Require().NoError(err)
	suite.Require().Len(response.Teams, 1)
	suite.Equal(85.0, response.Teams[0].WeightedAverage)
	suite.Require().Len(response.ContributingRounds, 1)
	suite.Equal(float64(service.DefaultWeightPercentage), response.ContributingRounds[0].WeightPercentage)
	suite.NotEmpty(response.GeneratedAt)
}

func (suite *LeaderboardServiceTestSuite) TestUpdateWeight() {
	roundID := uuid.New()

	suite.Run("club users cannot set weights", func() {
		_, err := suite.service.UpdateWeight(suite.club, roundID, &service.UpdateWeightRequest{WeightPercentage: 150})

		suite.ErrorIs(err, apperrors.ErrAdminOnly)
	})

	suite.Run("unknown round", func() {
		suite.mockRounds.EXPECT().GetByID(roundID).Return(nil, apperrors.ErrRoundNotFound)

		_, err := suite.service.UpdateWeight(suite.admin, roundID, &service.UpdateWeightRequest{WeightPercentage: 150})

		suite.Error(err)
	})

	suite.Run("persists the new weight", func() {
		round := &models.Round{BaseModel: models.BaseModel{ID: roundID}, RoundNumber: 2, Name: "Hackathon"}
		suite.mockRounds.EXPECT().GetByID(roundID).Return(round, nil)
		suite.mockWeights.EXPECT().Upsert(roundID, 150.0).Return(&models.RoundWeight{
			RoundID:          roundID,
			WeightPercentage: 150,
		}, nil)

		response, err := suite.service.UpdateWeight(suite.admin, roundID, &service.UpdateWeightRequest{WeightPercentage: 150})

		suite.Require().NoError(err)
		suite.Equal(150.0, response.WeightPercentage)
		suite.Equal("Hackathon", response.RoundName)
	})
}

func (suite *LeaderboardServiceTestSuite) TestShortlist() {
	frozen := models.Round{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		RoundNumber: 2,
		Name:        "Hackathon",
		State:       models.RoundStateFrozen,
	}
	evaluated := models.Round{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		RoundNumber: 1,
		Name:        "Ideathon",
		State:       models.RoundStateEvaluated,
	}

	expectStandings := func(teams []models.Team, scores []models.TeamScore) {
		suite.mockRounds.EXPECT().
			GetByState(models.RoundStateEvaluated, models.RoundStateFrozen).
			Return([]models.Round{evaluated, frozen}, nil)
		suite.mockTeams.EXPECT().ListAll().Return(teams, nil)
		suite.mockScores.EXPECT().GetByRounds(gomock.Any()).Return(scores, nil)
		suite.mockWeights.EXPECT().GetByRoundIDs(gomock.Any()).Return(nil, nil)
	}

	suite.Run("club users cannot shortlist", func() {
		_, err := suite.service.Shortlist(suite.club, &service.ShortlistRequest{Mode: service.ShortlistModeTopK, Value: 2})

		suite.ErrorIs(err, apperrors.ErrAdminOnly)
	})

	suite.Run("no active teams", func() {
		eliminatedTeam := models.Team{TeamID: "CRES-A", Status: models.TeamStatusEliminated}
		expectStandings([]models.Team{eliminatedTeam}, nil)

		_, err := suite.service.Shortlist(suite.admin, &service.ShortlistRequest{Mode: service.ShortlistModeTopK, Value: 1})

		suite.ErrorIs(err, apperrors.ErrNoActiveTeams)
	})

	suite.Run("commits the decision atomically", func() {
		teams := []models.Team{activeTeam("CRES-A", "Alpha"), activeTeam("CRES-B", "Beta"), activeTeam("CRES-C", "Gamma")}
		scores := []models.TeamScore{
			{RoundID: frozen.ID, TeamID: "CRES-A", NormalizedScore: 90},
			{RoundID: frozen.ID, TeamID: "CRES-B", NormalizedScore: 70},
			{RoundID: frozen.ID, TeamID: "CRES-C", NormalizedScore: 50},
		}
		expectStandings(teams, scores)

		var committed *repository.ShortlistCommit
		suite.mockRounds.EXPECT().CommitShortlist(gomock.Any()).
			DoAndReturn(func(commit *repository.ShortlistCommit) error {
				committed = commit
				return nil
			})

		response, err := suite.service.Shortlist(suite.admin, &service.ShortlistRequest{Mode: service.ShortlistModeTopK, Value: 2})

		suite.Require().NoError(err)
		suite.Require().NotNil(committed)
		suite.ElementsMatch([]string{"CRES-A", "CRES-B"}, committed.ShortlistedTeamIDs)
		suite.ElementsMatch([]string{"CRES-C"}, committed.EliminatedTeamIDs)
		suite.Equal([]uuid.UUID{frozen.ID}, committed.EvaluateRoundIDs)
		suite.Equal(3, committed.NextRoundNumber)

		suite.Len(response.Shortlisted, 2)
		suite.Equal(1, response.EliminatedCount)
		suite.Equal(1, response.RoundsEvaluated)
		suite.Equal(3, response.NextRound)
	})

	suite.Run("consistency failure surfaces from the commit", func() {
		teams := []models.Team{activeTeam("CRES-A", "Alpha")}
		scores := []models.TeamScore{{RoundID: frozen.ID, TeamID: "CRES-A", NormalizedScore: 90}}
		expectStandings(teams, scores)

		suite.mockRounds.EXPECT().CommitShortlist(gomock.Any()).
			Return(apperrors.NewConsistencyError("a contributing round changed state during shortlisting"))

		_, err := suite.service.Shortlist(suite.admin, &service.ShortlistRequest{Mode: service.ShortlistModeTopK, Value: 1})

		suite.Error(err)
	})
}
