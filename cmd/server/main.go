package main

import (
	"log"
	"os"

	"booking-scheduler-backend/internal/api/routes"
	"booking-scheduler-backend/internal/config"
	"booking-scheduler-backend/internal/database"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/repository"
	"booking-scheduler-backend/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "booking-scheduler-backend/docs" // This is needed for swag
)

//	@title			Booking Scheduler Backend API
//	@version		1.0
//	@description	Scheduling core for a multi-tenant booking marketplace: recurring availability patterns, availability resolution, weighted round-robin assignment and pluggable booking backends.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

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

	// Initialize router and booking backends
	router, registry := routes.SetupRoutes(db, cfg)

	// Start background booking sync when enabled
	if cfg.SyncEnabled {
		syncWorker := worker.NewSyncWorker(registry, repository.NewListingRepository(db), logger.New())
		if err := syncWorker.Start(cfg.SyncSchedule); err != nil {
			logrus.Fatal("Failed to start sync worker:", err)
		}
		defer syncWorker.Stop()
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
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
