package handlers

import (
	"net/http"
	"strconv"

	"crestora-backend/internal/database/models"
	"crestora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /teams
// @Summary Register a new team
// @Description Register a team with its leader details and members
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully registered team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Team ID already taken"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetAllTeams handles GET /teams
// @Summary List teams
// @Description Get all teams with optional status filtering and pagination
// @Tags teams
// @Produce json
// @Param status query string false "Filter by status (ACTIVE, ELIMINATED, COMPLETED)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	var status *models.TeamStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.TeamStatus(statusStr)
		status = &s
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size parameter"})
		return
	}

	teams, err := h.teamService.GetAll(status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamStats handles GET /teams/stats
// @Summary Team statistics
// @Description Get team counts by status and by current round
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamStatsResponse "Successfully retrieved stats"
// @Security BearerAuth
// @Router /teams/stats [get]
func (h *TeamHandler) GetTeamStats(c *gin.Context) {
	stats, err := h.teamService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTeam handles GET /teams/:teamId
// @Summary Get team by ID
// @Description Get a team with its members
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetByID(c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:teamId
// @Summary Update team details
// @Description Update a team's name and leader details
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:teamId
// @Summary Delete a team
// @Description Remove a team with its members and scores
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.Delete(c.Param("teamId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team deleted"})
}

// UpdateTeamStatus handles PUT /teams/:teamId/status
// @Summary Set team status
// @Description Set a team's lifecycle status (admin only)
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param status body service.UpdateTeamStatusRequest true "New status"
// @Success 200 {object} service.TeamResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId}/status [put]
func (h *TeamHandler) UpdateTeamStatus(c *gin.Context) {
	var req service.UpdateTeamStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.SetStatus(c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetTeamScores handles GET /teams/:teamId/scores
// @Summary Team score history
// @Description Get a team's per-round scores and weighted running score
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.TeamScoresResponse "Successfully retrieved scores"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{teamId}/scores [get]
func (h *TeamHandler) GetTeamScores(c *gin.Context) {
	scores, err := h.teamService.Scores(c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}
