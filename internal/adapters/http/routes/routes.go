package routes

import (
	"rentmate/internal/adapters/http/handlers"
	"rentmate/internal/adapters/http/middleware"
	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/config"
	"rentmate/internal/core/billing"
	"rentmate/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	roomRepo := repositories.NewRoomRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)

	// Billing constants from config
	rates := billing.NewRateTable(
		cfg.Billing.StandardWaterRate,
		cfg.Billing.PremiumWaterRate,
		cfg.Billing.PremiumRooms,
	)

	// Initialize services
	propertyService := services.NewPropertyService(propertyRepo, roomRepo, billing.SystemClock)
	billingService := services.NewBillingService(propertyRepo, rates, cfg.Billing.UtilitySurcharge, billing.SystemClock)
	expenseService := services.NewExpenseService(expenseRepo)
	dashboardService := services.NewDashboardService(propertyRepo, roomRepo, expenseRepo, rates, billing.SystemClock)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	roomHandler := handlers.NewRoomHandler(roomRepo)
	propertyHandler := handlers.NewPropertyHandler(propertyService, billingService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 routes
	v1 := app.Group("/api/v1")

	// Rooms (read-only catalog)
	rooms := v1.Group("/rooms")
	rooms.Get("/", roomHandler.List)
	rooms.Get("/:id", roomHandler.Get)

	// Properties (occupancy records)
	properties := v1.Group("/properties")
	properties.Post("/", propertyHandler.Create)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.Get)
	properties.Put("/:id", propertyHandler.Update)
	properties.Delete("/:id", propertyHandler.Delete)
	properties.Patch("/:id/status", propertyHandler.ChangeStatus)
	properties.Post("/:id/vacate", propertyHandler.Vacate)

	// Billing mutations carry a stricter rate limit
	mutationLimit := middleware.MutationRateLimiter()
	properties.Post("/:id/payments/:year/:month/advance", mutationLimit, propertyHandler.AdvancePayment)
	properties.Get("/:id/water/:year/:month", propertyHandler.GetWaterBill)
	properties.Put("/:id/water/:year/:month", mutationLimit, propertyHandler.PutWaterReading)

	// Expenses
	expenses := v1.Group("/expenses")
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:year/:month", expenseHandler.ListByMonth)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Dashboard
	dashboard := v1.Group("/dashboard")
	dashboard.Get("/month/:year/:month", dashboardHandler.Month)
	dashboard.Get("/year/:year", dashboardHandler.Year)
}
