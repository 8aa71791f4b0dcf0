package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"crestora-backend/internal/api/handlers"
	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/mocks"
	"crestora-backend/internal/service"
	"crestora-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.GetAllTeams)
		teams.GET("/stats", suite.handler.GetTeamStats)
		teams.GET("/:teamId", suite.handler.GetTeam)
		teams.PUT("/:teamId", suite.handler.UpdateTeam)
		teams.DELETE("/:teamId", suite.handler.DeleteTeam)
		teams.PUT("/:teamId/status", suite.handler.UpdateTeamStatus)
		teams.GET("/:teamId/scores", suite.handler.GetTeamScores)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"team_id":                "CRES-96DA2",
			"team_name":              "Circuit Breakers",
			"leader_name":            "Priya Sharma",
			"leader_register_number": "RA221100101",
			"leader_contact":         "9876543210",
			"leader_email":           "priya@example.com",
			"password":               "strong-password",
		}
		expected := &service.TeamResponse{
			TeamID:   "CRES-96DA2",
			TeamName: "Circuit Breakers",
			Status:   models.TeamStatusActive,
		}
		suite.mockService.EXPECT().Create(gomock.Any()).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "CRES-96DA2", response.TeamID)
	})

	suite.T().Run("DuplicateTeamID", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{
			"team_id": "CRES-96DA2",
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/teams")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetAllTeams() {
	suite.T().Run("ForwardsStatusAndPagination", func(t *testing.T) {
		active := models.TeamStatusActive
		suite.mockService.EXPECT().GetAll(&active, 2, 10).Return(&service.TeamListResponse{
			Teams:    []service.TeamResponse{{TeamID: "CRES-A"}},
			Total:    11,
			Page:     2,
			PageSize: 10,
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?status=ACTIVE&page=2&page_size=10", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(11), response.Total)
	})

	suite.T().Run("RejectsBadPage", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?page=zero", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("RejectsUnknownStatus", func(t *testing.T) {
		retired := models.TeamStatus("RETIRED")
		suite.mockService.EXPECT().GetAll(&retired, 1, 50).
			Return(nil, apperrors.NewValidationError("status", "invalid team status"))

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?status=RETIRED", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID("CRES-96DA2").Return(&service.TeamResponse{
			TeamID: "CRES-96DA2", TeamName: "Circuit Breakers",
		}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/CRES-96DA2", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID("CRES-NONE").Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/CRES-NONE", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestUpdateTeamStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().SetStatus("CRES-96DA2", gomock.Any()).Return(&service.TeamResponse{
			TeamID: "CRES-96DA2", Status: models.TeamStatusEliminated,
		}, nil)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/teams/CRES-96DA2/status", map[string]interface{}{
			"status": "ELIMINATED",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.TeamStatusEliminated, response.Status)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		suite.mockService.EXPECT().SetStatus("CRES-96DA2", gomock.Any()).
			Return(nil, apperrors.NewValidationError("status", "invalid team status"))

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/teams/CRES-96DA2/status", map[string]interface{}{
			"status": "GONE",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.mockService.EXPECT().Delete("CRES-96DA2").Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/CRES-96DA2", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "team deleted", response["message"])
}

func (suite *TeamHandlerTestSuite) TestGetTeamScores() {
	suite.mockService.EXPECT().Scores("CRES-96DA2").Return(&service.TeamScoresResponse{
		TeamID:       "CRES-96DA2",
		OverallScore: 82.5,
		Scores:       []service.TeamScoreEntry{{RoundNumber: 1, NormalizedScore: 82.5}},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/CRES-96DA2/scores", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.TeamScoresResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 82.5, response.OverallScore)
}

func (suite *TeamHandlerTestSuite) TestGetTeamStats() {
	suite.mockService.EXPECT().Stats().Return(&service.TeamStatsResponse{
		TotalTeams:    4,
		ActiveTeams:   3,
		TeamsPerRound: map[string]int64{"round_1": 4},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.TeamStatsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(4), response.TotalTeams)
}
