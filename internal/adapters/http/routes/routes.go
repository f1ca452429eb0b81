package routes

import (
	"hoteldesk/internal/adapters/http/handlers"
	"hoteldesk/internal/adapters/http/middleware"
	"hoteldesk/internal/adapters/persistence/memory"
	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/config"
	"hoteldesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *memory.Store, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(store)
	roomRepo := repositories.NewRoomRepository(store)
	guestRepo := repositories.NewGuestRepository(store)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	guestService := services.NewGuestService(roomRepo, guestRepo)
	dashboardService := services.NewDashboardService(roomRepo, guestRepo)
	reportService := services.NewReportService(guestRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(roomRepo)
	authHandler := handlers.NewAuthHandler(authService)
	roomHandler := handlers.NewRoomHandler(roomRepo)
	guestHandler := handlers.NewGuestHandler(guestService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api")

	// Auth routes (public, stricter rate limit)
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Room routes (public: the check-in form needs the selector before login)
	api.Get("/rooms", roomHandler.ListRooms)

	// Guest routes (authenticated)
	guestRoutes := api.Group("/guests")
	guestRoutes.Use(middleware.AuthMiddleware(cfg))
	guestRoutes.Post("/checkin", guestHandler.CheckIn)
	guestRoutes.Get("/", guestHandler.ListGuests)

	// Dashboard routes (authenticated, never cached)
	dashboardRoutes := api.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.NoCacheHeaders())
	dashboardRoutes.Get("/summary", dashboardHandler.GetSummary)

	// Report routes (authenticated, never cached)
	reportRoutes := api.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware(cfg))
	reportRoutes.Use(middleware.NoCacheHeaders())
	reportRoutes.Get("/download", reportHandler.Download)
}
