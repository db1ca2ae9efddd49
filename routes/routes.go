package routes

import (
	"smartstock/handlers"
	"smartstock/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Analytics Routes (read-only derived views) ---
	analytics := api.Group("/analytics")
	analytics.Get("/stores", handlers.HandleGetStores)
	analytics.Get("/products", handlers.HandleGetProducts)
	analytics.Get("/sales-history", handlers.HandleGetSalesHistory)
	analytics.Get("/predictions", handlers.HandleGetPredictions)
	analytics.Get("/alerts", handlers.HandleGetAlerts)
	analytics.Get("/dashboard", handlers.HandleGetDashboard)
	analytics.Get("/regional-comparison", handlers.HandleGetRegionalComparison)
	analytics.Get("/alert-matrix", handlers.HandleGetAlertMatrix)
	analytics.Get("/turnover", handlers.HandleGetTurnover)
	analytics.Get("/roi", handlers.HandleCalculateROI)

	// --- CRUD Routes ---
	crud := api.Group("/", middleware.JWTMiddleware)
	crud.Get("/demand", handlers.HandleListDemand)
	crud.Post("/demand", handlers.HandleCreateDemand)
	crud.Get("/pricing", handlers.HandleListPricing)
	crud.Post("/pricing", handlers.HandleCreatePricing)
	crud.Get("/loyalty", handlers.HandleListLoyalty)
	crud.Post("/loyalty", handlers.HandleCreateLoyalty)
	crud.Get("/supplier", handlers.HandleListSuppliers)
	crud.Post("/supplier", handlers.HandleCreateSupplier)

	// --- AI Routes ---
	ai := api.Group("/ai", middleware.JWTMiddleware)
	ai.Post("/insights", handlers.HandleGenerateInsight)
}
