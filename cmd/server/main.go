package main

import (
	"log"
	"os"

	"fleet-supply-backend/internal/api/routes"
	"fleet-supply-backend/internal/config"
	"fleet-supply-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "fleet-supply-backend/docs" // This is needed for swag
)

//	@title			Fleet Supply Backend API
//	@version		1.0
//	@description	This is the backend API for the fleet supply platform, providing endpoints for managing organizations, members, vessels, invitations, supply requests and waybills.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api

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

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
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
