package handlers

import (
	"errors"

	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/core/services"
	"hoteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles report download endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Download streams a CSV of check-ins for the requested period
// @Summary Download check-in report
// @Description CSV of stays checked in within the period window
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param period query string true "daily | weekly | monthly | yearly"
// @Success 200 {string} string "CSV body"
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reports/download [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	period := c.Query("period")

	report, err := h.reportService.Generate(c.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPeriod):
			return response.BadRequest(c, "Invalid report period specified. Use daily, weekly, monthly, or yearly.")
		case errors.Is(err, domain.ErrNoReportData):
			return response.NotFound(c, "No check-in data found for the selected period ("+period+").")
		default:
			return response.InternalServerError(c, "Error generating report data")
		}
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+report.Filename+`"`)
	return c.Send(report.CSV)
}
