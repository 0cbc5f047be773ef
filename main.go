package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wrapapply/pkg/api"
	"wrapapply/pkg/clients/mailer"
	"wrapapply/pkg/config"
	"wrapapply/pkg/metrics"
	"wrapapply/pkg/middleware"
	"wrapapply/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize the mail transport and self-check it. An unreachable mail
	// server is logged but does not block startup; the site stays up.
	mailClient := mailer.NewClient(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	if err := mailClient.Verify(); err != nil {
		log.Printf("Email server error: %v", err)
	} else {
		log.Println("Email server is ready")
	}

	// Initialize services
	applicationService := services.NewApplicationService(mailClient, cfg)

	// Create a new Gin router with default middleware
	router := gin.Default()

	// Add CORS and metrics middleware
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	// Initialize handlers
	handlers := api.NewHandlers(applicationService)

	// Register routes
	router.StaticFile("/", "./public/index.html")
	router.GET("/home", handlers.Home)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", metrics.Handler())
	router.POST("/send-email", handlers.HandleApplication)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
