package main

import (
	"log"
	"os"

	"crestora-backend/internal/api/routes"
	"crestora-backend/internal/auth"
	"crestora-backend/internal/config"
	"crestora-backend/internal/database"
	"crestora-backend/internal/database/models"
	"crestora-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "crestora-backend/docs" // This is needed for swag
)

//	@title			Crestora Backend API
//	@version		1.0
//	@description	Scoring and leaderboard backend for the Crestora'25 multi-round team competition: rounds, criteria, evaluations, freezes and shortlists.

//	@contact.name	PDA Tech Team

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed the admin account when configured
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		authService := auth.NewService(repository.NewUserRepository(db), cfg)
		if err := authService.EnsureUser(cfg.AdminUsername, cfg.AdminPassword, models.UserRoleAdmin, ""); err != nil {
			logrus.Warnf("Failed to seed admin account: %v", err)
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
