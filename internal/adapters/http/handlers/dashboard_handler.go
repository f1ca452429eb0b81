package handlers

import (
	"hoteldesk/internal/core/services"
	"hoteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the occupancy metrics
// @Summary Dashboard summary
// @Description Occupancy and in-house guest metrics over current state
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Summary
// @Failure 401 {object} response.ErrorBody
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.dashboardService.GetSummary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute summary")
	}
	return c.JSON(summary)
}
