package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/config"
	"github.com/incident-report/api-go/logger"
	"github.com/incident-report/api-go/middleware"
	"github.com/incident-report/api-go/routes"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Might be in production without a .env file
	}

	if err := logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))
	r.Use(middleware.Timeout(15 * time.Second))

	// Initialize routes
	routes.SetupRoutes(r, db)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server on port " + port)
	r.Run(":" + port)
}
