package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hoteldesk/internal/adapters/http/middleware"
	"hoteldesk/internal/adapters/http/routes"
	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/config"
	"hoteldesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Initialize the in-memory store and seed it (fixed room inventory
	// plus the default front-desk account)
	store := memory.New()
	seeder := config.NewSeeder(
		repositories.NewUserRepository(store),
		repositories.NewRoomRepository(store),
		cfg,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed store: %v", err)
	}

	// Start the night-audit cron
	roomRepo := repositories.NewRoomRepository(store)
	guestRepo := repositories.NewGuestRepository(store)
	cronService := services.NewCronService(services.NewDashboardService(roomRepo, guestRepo))
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Hotel Front-Desk API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass store and cfg for dependency injection)
	routes.Setup(app, store, cfg)

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
