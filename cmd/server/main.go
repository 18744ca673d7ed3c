package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rentmate/internal/adapters/http/middleware"
	"rentmate/internal/adapters/http/routes"
	"rentmate/internal/adapters/persistence/models"
	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/config"
	"rentmate/internal/core/billing"
	"rentmate/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title RentMate API
// @version 1.0
// @description Rental property dashboard backend
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the room catalog
	if err := config.SeedRooms(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed rooms: %v", err)
	}

	// Start the reminder scheduler (08:30 daily missing-readings check)
	reminderService := services.NewReminderService(repositories.NewPropertyRepository(db), billing.SystemClock)
	if err := reminderService.Start(); err != nil {
		log.Fatalf("❌ Failed to start reminder service: %v", err)
	}
	defer reminderService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "RentMate API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
