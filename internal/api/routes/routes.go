package routes

import (
	"net/http"

	"crestora-backend/internal/api/handlers"
	"crestora-backend/internal/api/middleware"
	"crestora-backend/internal/auth"
	"crestora-backend/internal/config"
	"crestora-backend/internal/repository"
	"crestora-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	eventRepo := repository.NewEventRepository(db)
	roundRepo := repository.NewRoundRepository(db)
	scoreRepo := repository.NewTeamScoreRepository(db)
	weightRepo := repository.NewRoundWeightRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, roundRepo, scoreRepo, weightRepo, validator)
	eventService := service.NewEventService(eventRepo, roundRepo, validator)
	roundService := service.NewRoundService(roundRepo, eventRepo, teamRepo, scoreRepo, weightRepo, validator)
	leaderboardService := service.NewLeaderboardService(roundRepo, teamRepo, scoreRepo, weightRepo, validator)
	exportService := service.NewExportService(roundRepo, scoreRepo, teamRepo, leaderboardService)

	// Initialize auth
	authService := auth.NewService(userRepo, cfg)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	eventHandler := handlers.NewEventHandler(eventService)
	roundHandler := handlers.NewRoundHandler(roundService, exportService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/stats", teamHandler.GetTeamStats)
			teams.GET("/:teamId", teamHandler.GetTeam)
			teams.PUT("/:teamId", teamHandler.UpdateTeam)
			teams.DELETE("/:teamId", authMiddleware.RequireAdmin(), teamHandler.DeleteTeam)
			teams.PUT("/:teamId/status", authMiddleware.RequireAdmin(), teamHandler.UpdateTeamStatus)
			teams.GET("/:teamId/scores", teamHandler.GetTeamScores)
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.GetAllEvents)
			events.POST("", authMiddleware.RequireAdmin(), eventHandler.CreateEvent)
			events.GET("/stats", eventHandler.GetEventStats)
			events.GET("/:eventId", eventHandler.GetEvent)
			events.PUT("/:eventId/reorder", authMiddleware.RequireAdmin(), eventHandler.ReorderRounds)
			events.DELETE("/:eventId", authMiddleware.RequireAdmin(), eventHandler.DeleteEvent)
		}

		rounds := v1.Group("/rounds")
		{
			rounds.POST("", authMiddleware.RequireAdmin(), roundHandler.CreateRound)
			rounds.GET("/:roundId", roundHandler.GetRound)
			rounds.PUT("/:roundId", roundHandler.UpdateRound)
			rounds.DELETE("/:roundId", authMiddleware.RequireAdmin(), roundHandler.DeleteRound)
			rounds.PUT("/:roundId/criteria", roundHandler.UpdateCriteria)
			rounds.GET("/:roundId/evaluations", roundHandler.GetEvaluations)
			rounds.PUT("/:roundId/evaluate/:teamId", roundHandler.EvaluateTeam)
			rounds.POST("/:roundId/freeze", roundHandler.FreezeRound)
			rounds.POST("/:roundId/unfreeze", authMiddleware.RequireAdmin(), roundHandler.UnfreezeRound)
			rounds.POST("/:roundId/handle-absentees", authMiddleware.RequireAdmin(), roundHandler.HandleAbsentees)
			rounds.GET("/:roundId/stats", roundHandler.GetRoundStats)
			rounds.GET("/:roundId/export", roundHandler.ExportRound)
			rounds.GET("/:roundId/wildcard-teams", roundHandler.GetWildcardTeams)
		}

		leaderboard := v1.Group("/leaderboard")
		{
			leaderboard.GET("", leaderboardHandler.GetLeaderboard)
			leaderboard.GET("/evaluated-rounds", leaderboardHandler.GetEvaluatedRounds)
			leaderboard.PUT("/weights/:roundId", authMiddleware.RequireAdmin(), leaderboardHandler.UpdateWeight)
			leaderboard.POST("/shortlist", authMiddleware.RequireAdmin(), leaderboardHandler.Shortlist)
			leaderboard.GET("/export", leaderboardHandler.ExportLeaderboard)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
