package handlers

import (
	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	roomRepo repositories.RoomRepository
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(roomRepo repositories.RoomRepository) *HealthHandler {
	return &HealthHandler{roomRepo: roomRepo}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🏨 Hotel front-desk API is running",
		"mode":    config.AppConfig.AppMode,
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and store health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	// A seeded store always has rooms; zero means init went wrong
	storeStatus := "healthy"
	if count, err := h.roomRepo.Count(c.Context()); err != nil || count == 0 {
		storeStatus = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":   "healthy",
			"store": storeStatus,
		},
	})
}
