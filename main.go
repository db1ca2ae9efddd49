package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"smartstock/ai"
	"smartstock/analytics"
	"smartstock/config"
	"smartstock/database"
	"smartstock/handlers"
	"smartstock/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.Load()
	if config.AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Initialize database
	database.Connect(config.AppConfig.DatabaseURL)
	defer database.Close()
	if err := database.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Build the derivation layer and the insights generator.
	fixtures := analytics.NewFixtureClient(config.AppConfig.FixtureBaseURL)
	service := analytics.NewService(fixtures, config.AppConfig.CacheTTL)
	handlers.Init(service, ai.NewGeminiGenerator(config.AppConfig.GeminiAPIKey))

	// One scheduler owns every auto-refresh interval.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler := analytics.NewScheduler(service)
	go scheduler.Run(ctx)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Serve the fixture documents; also the default fixture fetch target.
	app.Static("/data", "./data")

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
