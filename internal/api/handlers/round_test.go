package handlers_test

import (
	"net/http"
	"testing"

	"crestora-backend/internal/api/handlers"
	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/mocks"
	"crestora-backend/internal/service"
	"crestora-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RoundHandlerTestSuite defines the test suite for RoundHandler
type RoundHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRoundServiceInterface
	mockExport  *mocks.MockExportServiceInterface
	handler     *handlers.RoundHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RoundHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRoundServiceInterface(suite.ctrl)
	suite.mockExport = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRoundHandler(suite.mockService, suite.mockExport)
	suite.httpSuite = testutils.SetupHTTPTest()

	rounds := suite.httpSuite.Router.Group("/api/v1/rounds")
	{
		rounds.POST("", suite.handler.CreateRound)
		rounds.GET("/:roundId", suite.handler.GetRound)
		rounds.PUT("/:roundId", suite.handler.UpdateRound)
		rounds.DELETE("/:roundId", suite.handler.DeleteRound)
		rounds.PUT("/:roundId/criteria", suite.handler.UpdateCriteria)
		rounds.GET("/:roundId/evaluations", suite.handler.GetEvaluations)
		rounds.PUT("/:roundId/evaluate/:teamId", suite.handler.EvaluateTeam)
		rounds.POST("/:roundId/freeze", suite.handler.FreezeRound)
		rounds.POST("/:roundId/unfreeze", suite.handler.UnfreezeRound)
		rounds.POST("/:roundId/handle-absentees", suite.handler.HandleAbsentees)
		rounds.GET("/:roundId/stats", suite.handler.GetRoundStats)
		rounds.GET("/:roundId/export", suite.handler.ExportRound)
		rounds.GET("/:roundId/wildcard-teams", suite.handler.GetWildcardTeams)
	}
}

// TearDownTest cleans up after each test
func (suite *RoundHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestRoundHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoundHandlerTestSuite))
}

func (suite *RoundHandlerTestSuite) TestCreateRound() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"event_id":     "EVT-CRS25",
			"round_number": 1,
			"name":         "Ideathon",
		}
		expected := &service.RoundResponse{
			ID:          uuid.New(),
			EventID:     "EVT-CRS25",
			RoundNumber: 1,
			Name:        "Ideathon",
			State:       models.RoundStateOpen,
		}
		suite.mockService.EXPECT().Create(gomock.Any()).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.RoundResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Ideathon", response.Name)
	})

	suite.T().Run("EventNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrEventNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds", map[string]interface{}{
			"event_id": "EVT-NONE", "round_number": 1, "name": "Ideathon",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("DuplicateRoundNumber", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrRoundExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds", map[string]interface{}{
			"event_id": "EVT-CRS25", "round_number": 1, "name": "Ideathon",
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *RoundHandlerTestSuite) TestGetRound() {
	suite.T().Run("InvalidUUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rounds/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrRoundNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rounds/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *RoundHandlerTestSuite) TestUpdateRound_FrozenConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.NewFrozenRoundError("Ideathon", "update"))

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/rounds/"+id.String(), map[string]interface{}{
		"name": "Renamed",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *RoundHandlerTestSuite) TestEvaluateTeam() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Evaluate(gomock.Any(), id, "CRES-A", gomock.Any()).
			Return(&service.EvaluationResponse{TeamID: "CRES-A", NormalizedScore: 75, IsPresent: true}, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/rounds/"+id.String()+"/evaluate/CRES-A", map[string]interface{}{
			"scores": map[string]float64{"Innovation": 40, "Execution": 35},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.EvaluationResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 75.0, response.NormalizedScore)
	})

	suite.T().Run("ScoreOutOfRange", func(t *testing.T) {
		suite.mockService.EXPECT().
			Evaluate(gomock.Any(), id, "CRES-A", gomock.Any()).
			Return(nil, apperrors.NewValidationError("scores", "score for \"Innovation\" exceeds max of 50"))

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/rounds/"+id.String()+"/evaluate/CRES-A", map[string]interface{}{
			"scores": map[string]float64{"Innovation": 99},
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("NotRoundOwner", func(t *testing.T) {
		suite.mockService.EXPECT().
			Evaluate(gomock.Any(), id, "CRES-A", gomock.Any()).
			Return(nil, apperrors.ErrNotRoundOwner)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/rounds/"+id.String()+"/evaluate/CRES-A", map[string]interface{}{
			"scores": map[string]float64{},
		})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func (suite *RoundHandlerTestSuite) TestFreezeRound() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Freeze(gomock.Any(), id).Return(&service.FreezeRoundResponse{
			Round:    &service.RoundResponse{ID: id, State: models.RoundStateFrozen, IsFrozen: true},
			TopTeams: []service.TopTeamEntry{{Rank: 1, TeamID: "CRES-A", NormalizedScore: 90}},
		}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/freeze", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.FreezeRoundResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Round.IsFrozen)
		assert.Len(t, response.TopTeams, 1)
	})

	suite.T().Run("AlreadyFrozen", func(t *testing.T) {
		suite.mockService.EXPECT().Freeze(gomock.Any(), id).Return(nil, apperrors.ErrRoundAlreadyFrozen)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/freeze", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *RoundHandlerTestSuite) TestUnfreezeRound() {
	id := uuid.New()

	suite.T().Run("AdminOnly", func(t *testing.T) {
		suite.mockService.EXPECT().Unfreeze(gomock.Any(), id).Return(nil, apperrors.ErrAdminOnly)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/unfreeze", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Evaluated", func(t *testing.T) {
		suite.mockService.EXPECT().Unfreeze(gomock.Any(), id).Return(nil, apperrors.ErrRoundEvaluated)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/unfreeze", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("NotFrozen", func(t *testing.T) {
		suite.mockService.EXPECT().Unfreeze(gomock.Any(), id).Return(nil, apperrors.ErrRoundNotFrozen)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/unfreeze", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *RoundHandlerTestSuite) TestHandleAbsentees() {
	id := uuid.New()

	suite.T().Run("DefaultsToEliminate", func(t *testing.T) {
		suite.mockService.EXPECT().
			HandleAbsentees(gomock.Any(), id, true).
			Return(&service.AbsenteeReport{AbsentTeams: []string{"CRES-B"}, Eliminated: 1}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/handle-absentees", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("ReactivateViaQuery", func(t *testing.T) {
		suite.mockService.EXPECT().
			HandleAbsentees(gomock.Any(), id, false).
			Return(&service.AbsenteeReport{Reactivated: 1}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rounds/"+id.String()+"/handle-absentees?eliminate=false", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func (suite *RoundHandlerTestSuite) TestExportRound() {
	id := uuid.New()
	suite.mockExport.EXPECT().ExportRound(id, "").Return(&service.ExportFile{
		Filename:    "round-1-scores.csv",
		ContentType: "text/csv",
		Data:        []byte("Team ID,Team Name\n"),
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rounds/"+id.String()+"/export", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "round-1-scores.csv")
	assert.Contains(suite.T(), recorder.Header().Get("Content-Type"), "text/csv")
}

func (suite *RoundHandlerTestSuite) TestGetWildcardTeams() {
	id := uuid.New()
	suite.mockService.EXPECT().WildcardTeams(id).Return([]service.TeamSummary{
		{TeamID: "CRES-B", TeamName: "Beta", Status: models.TeamStatusEliminated},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rounds/"+id.String()+"/wildcard-teams", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.TeamSummary
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}
