package handlers

import (
	"net/http"

	"crestora-backend/internal/auth"
	"crestora-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaderboardHandler handles HTTP requests for leaderboard operations
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardServiceInterface
	exportService      service.ExportServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService service.LeaderboardServiceInterface, exportService service.ExportServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		exportService:      exportService,
	}
}

// GetLeaderboard handles GET /leaderboard
// @Summary Current standings
// @Description Get the weighted standings over evaluated rounds, recomputed on every read
// @Tags leaderboard
// @Produce json
// @Success 200 {object} service.LeaderboardResponse "Successfully retrieved standings"
// @Security BearerAuth
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	standings, err := h.leaderboardService.Compute()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, standings)
}

// GetEvaluatedRounds handles GET /leaderboard/evaluated-rounds
// @Summary Evaluated rounds
// @Description List the rounds locked into the standings with weights and shortlist outcomes
// @Tags leaderboard
// @Produce json
// @Success 200 {array} service.ContributingRound "Successfully retrieved rounds"
// @Security BearerAuth
// @Router /leaderboard/evaluated-rounds [get]
func (h *LeaderboardHandler) GetEvaluatedRounds(c *gin.Context) {
	rounds, err := h.leaderboardService.EvaluatedRounds()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rounds)
}

// UpdateWeight handles PUT /leaderboard/weights/:roundId
// @Summary Set a round's weight
// @Description Set the weight percentage a round carries in the standings (admin only)
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param roundId path string true "Round ID (UUID)"
// @Param weight body service.UpdateWeightRequest true "Weight percentage"
// @Success 200 {object} service.RoundWeightResponse "Successfully updated weight"
// @Failure 400 {object} map[string]interface{} "Invalid weight"
// @Failure 404 {object} map[string]interface{} "Round not found"
// @Security BearerAuth
// @Router /leaderboard/weights/{roundId} [put]
func (h *LeaderboardHandler) UpdateWeight(c *gin.Context) {
	id, err := uuid.Parse(c.Param("roundId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round ID"})
		return
	}
	var req service.UpdateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weight, err := h.leaderboardService.UpdateWeight(auth.GetActor(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, weight)
}

// Shortlist handles POST /leaderboard/shortlist
// @Summary Run a shortlist decision
// @Description Keep the top teams, eliminate the rest and lock contributing rounds in one transaction (admin only)
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param decision body service.ShortlistRequest true "Selection mode and value"
// @Success 200 {object} service.ShortlistResponse "Shortlist applied"
// @Failure 400 {object} map[string]interface{} "Invalid selection"
// @Security BearerAuth
// @Router /leaderboard/shortlist [post]
func (h *LeaderboardHandler) Shortlist(c *gin.Context) {
	var req service.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.leaderboardService.Shortlist(auth.GetActor(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportLeaderboard handles GET /leaderboard/export
// @Summary Export the standings
// @Description Download the standings as CSV or XLSX
// @Tags leaderboard
// @Produce text/csv
// @Param format query string false "File format (csv, xlsx)" default(csv)
// @Success 200 {string} string "Standings file"
// @Failure 400 {object} map[string]interface{} "Unknown format"
// @Security BearerAuth
// @Router /leaderboard/export [get]
func (h *LeaderboardHandler) ExportLeaderboard(c *gin.Context) {
	var file *service.ExportFile
	var err error

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		file, err = h.exportService.ExportLeaderboardCSV()
	case "xlsx":
		file, err = h.exportService.ExportLeaderboardXLSX()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
