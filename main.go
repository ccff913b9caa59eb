package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"solar-lead-webhook/pkg/api"
	"solar-lead-webhook/pkg/clients/customerapi"
	"solar-lead-webhook/pkg/config"
	"solar-lead-webhook/pkg/logger"
	"solar-lead-webhook/pkg/middleware"
	"solar-lead-webhook/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize logging
	if err := logger.InitLogger(cfg.LogLevel, cfg.AppEnv); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// Initialize API clients
	customerClient := customerapi.NewClient(cfg.CustomerAPIURL, cfg.CustomerAPIToken, cfg.CustomerAPITimeout)

	// Initialize services
	submissionService := services.NewLeadSubmissionService(customerClient)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create a new Gin router with default middleware
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Initialize handlers
	handlers := api.NewHandlers(submissionService)

	// Register routes
	router.POST("/webhook", handlers.HandleLeadSubmission)
	router.GET("/health", handlers.HealthCheck)

	// Start the server
	logger.GetLogger().Info("Server starting on port " + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
