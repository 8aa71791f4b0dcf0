package handlers

import (
	"net/http"

	"crestora-backend/internal/auth"
	"crestora-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoundHandler handles HTTP requests for round operations
type RoundHandler struct {
	roundService  service.RoundServiceInterface
	exportService service.ExportServiceInterface
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(roundService service.RoundServiceInterface, exportService service.ExportServiceInterface) *RoundHandler {
	return &RoundHandler{
		roundService:  roundService,
		exportService: exportService,
	}
}

func roundID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("roundId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round ID"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateRound handles POST /rounds
// @Summary Create a new round
// @Description Create a round, seed score rows for active teams and assign the default weight (admin only)
// @Tags rounds
// @Accept json
// @Produce json
// @Param round body service.CreateRoundRequest true "Round data"
// @Success 201 {object} service.RoundResponse "Successfully created round"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 409 {object} map[string]interface{} "Round number already taken"
// @Security BearerAuth
// @Router /rounds [post]
func (h *RoundHandler) CreateRound(c *gin.Context) {
	var req service.CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := h.roundService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, round)
}

// GetRound handles GET /rounds/:roundId
// @Summary Get round by ID
// @Description Get a round with its criteria, state and weight
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {object} service.RoundResponse "Successfully retrieved round"
// @Failure 404 {object} map[string]interface{} "Round not found"
// @Security BearerAuth
// @Router /rounds/{roundId} [get]
func (h *RoundHandler) GetRound(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	round, err := h.roundService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

// UpdateRound handles PUT /rounds/:roundId
// @Summary Update round metadata
// @Description Update a round's details; frozen rounds reject changes
// @Tags rounds
// @Accept json
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Param round body service.UpdateRoundRequest true "Fields to update"
// @Success 200 {object} service.RoundResponse "Successfully updated round"
// @Failure 403 {object} map[string]interface{} "Not the round's club"
// @Failure 409 {object} map[string]interface{} "Round is frozen"
// @Security BearerAuth
// @Router /rounds/{roundId} [put]
func (h *RoundHandler) UpdateRound(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	var req service.UpdateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := h.roundService.Update(auth.GetActor(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

// DeleteRound handles DELETE /rounds/:roundId
// @Summary Delete a round
// @Description Remove an open round with its scores and weight
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted round"
// @Failure 409 {object} map[string]interface{} "Round is frozen or evaluated"
// @Security BearerAuth
// @Router /rounds/{roundId} [delete]
func (h *RoundHandler) DeleteRound(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	if err := h.roundService.Delete(auth.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "round deleted"})
}

// UpdateCriteria handles PUT /rounds/:roundId/criteria
// @Summary Replace a round's criteria
// @Description Replace the criteria definition and rescore existing evaluations
// @Tags rounds
// @Accept json
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Param criteria body service.UpdateCriteriaRequest true "New criteria"
// @Success 200 {object} service.RoundResponse "Successfully updated criteria"
// @Failure 400 {object} map[string]interface{} "Invalid criteria"
// @Failure 409 {object} map[string]interface{} "Round is frozen"
// @Security BearerAuth
// @Router /rounds/{roundId}/criteria [put]
func (h *RoundHandler) UpdateCriteria(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	var req service.UpdateCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := h.roundService.SetCriteria(auth.GetActor(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

// GetEvaluations handles GET /rounds/:roundId/evaluations
// @Summary List a round's evaluations
// @Description Get every score row of a round with team names
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {array} service.EvaluationResponse "Successfully retrieved evaluations"
// @Failure 404 {object} map[string]interface{} "Round not found"
// @Security BearerAuth
// @Router /rounds/{roundId}/evaluations [get]
func (h *RoundHandler) GetEvaluations(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	evaluations, err := h.roundService.GetEvaluations(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluations)
}

// EvaluateTeam handles PUT /rounds/:roundId/evaluate/:teamId
// @Summary Evaluate a team
// @Description Record a team's per-criterion scores for a round
// @Tags rounds
// @Accept json
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Param teamId path string true "Team ID"
// @Param evaluation body service.EvaluateTeamRequest true "Scores and presence"
// @Success 200 {object} service.EvaluationResponse "Successfully recorded evaluation"
// @Failure 400 {object} map[string]interface{} "Scores out of range"
// @Failure 409 {object} map[string]interface{} "Round is frozen"
// @Security BearerAuth
// @Router /rounds/{roundId}/evaluate/{teamId} [put]
func (h *RoundHandler) EvaluateTeam(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	var req service.EvaluateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.roundService.Evaluate(auth.GetActor(c), id, c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

// FreezeRound handles POST /rounds/:roundId/freeze
// @Summary Freeze a round
// @Description Lock in a round's scores and statistics
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {object} service.FreezeRoundResponse "Round frozen with top teams"
// @Failure 409 {object} map[string]interface{} "Round is already frozen"
// @Security BearerAuth
// @Router /rounds/{roundId}/freeze [post]
func (h *RoundHandler) FreezeRound(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	result, err := h.roundService.Freeze(auth.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UnfreezeRound handles POST /rounds/:roundId/unfreeze
// @Summary Unfreeze a round
// @Description Reopen a frozen round for corrections (admin only)
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {object} service.RoundResponse "Round reopened"
// @Failure 400 {object} map[string]interface{} "Round is not frozen"
// @Failure 409 {object} map[string]interface{} "Round is already evaluated"
// @Security BearerAuth
// @Router /rounds/{roundId}/unfreeze [post]
func (h *RoundHandler) UnfreezeRound(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	round, err := h.roundService.Unfreeze(auth.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

// HandleAbsentees handles POST /rounds/:roundId/handle-absentees
// @Summary Process a round's absentees
// @Description Eliminate or reactivate the teams absent from a frozen round (admin only)
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Param eliminate query bool false "Eliminate absentees (true) or reactivate them (false)" default(true)
// @Success 200 {object} service.AbsenteeReport "Absentees processed"
// @Failure 400 {object} map[string]interface{} "Round is not frozen"
// @Security BearerAuth
// @Router /rounds/{roundId}/handle-absentees [post]
func (h *RoundHandler) HandleAbsentees(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	eliminate := c.DefaultQuery("eliminate", "true") == "true"

	report, err := h.roundService.HandleAbsentees(auth.GetActor(c), id, eliminate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetRoundStats handles GET /rounds/:roundId/stats
// @Summary Round statistics
// @Description Get a round's score statistics and top teams
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {object} service.RoundStatsResponse "Successfully retrieved stats"
// @Failure 404 {object} map[string]interface{} "Round not found"
// @Security BearerAuth
// @Router /rounds/{roundId}/stats [get]
func (h *RoundHandler) GetRoundStats(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	stats, err := h.roundService.Stats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportRound handles GET /rounds/:roundId/export
// @Summary Export a round's score sheet
// @Description Download a round's scores as CSV
// @Tags rounds
// @Produce text/csv
// @Param roundId path string true "Round ID (UUID)"
// @Param sort_by query string false "Sort order (team_id, normalized_score)" default(team_id)
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} map[string]interface{} "Round not found"
// @Security BearerAuth
// @Router /rounds/{roundId}/export [get]
func (h *RoundHandler) ExportRound(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	file, err := h.exportService.ExportRound(id, c.Query("sort_by"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// GetWildcardTeams handles GET /rounds/:roundId/wildcard-teams
// @Summary List wildcard-eligible teams
// @Description Get the teams eligible for a round's wildcard entry
// @Tags rounds
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Success 200 {array} service.TeamSummary "Eligible teams"
// @Failure 404 {object} map[string]interface{} "Round not found"
// @Security BearerAuth
// @Router /rounds/{roundId}/wildcard-teams [get]
func (h *RoundHandler) GetWildcardTeams(c *gin.Context) {
	id, ok := roundID(c)
	if !ok {
		return
	}
	teams, err := h.roundService.WildcardTeams(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}
