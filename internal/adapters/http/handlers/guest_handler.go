package handlers

import (
	"errors"
	"fmt"

	"hoteldesk/internal/adapters/http/middleware"
	"hoteldesk/internal/core/domain"
	"hoteldesk/internal/core/services"
	"hoteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GuestHandler handles guest check-in endpoints
type GuestHandler struct {
	guestService *services.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService *services.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// CheckIn handles guest check-in
// @Summary Check in a guest
// @Description Occupies an available room and records the stay
// @Tags Guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CheckInInput true "Guest details"
// @Success 201 {object} domain.GuestStay
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /guests/checkin [post]
func (h *GuestHandler) CheckIn(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "Authentication token required")
	}

	var input services.CheckInInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	stay, err := h.guestService.CheckIn(c.Context(), claims, &input)
	if err != nil {
		var unavailable *domain.RoomUnavailableError
		switch {
		case errors.Is(err, domain.ErrGuestFieldsMissing):
			return response.BadRequest(c, "Name, contact, and room number are required.")
		case errors.Is(err, domain.ErrRoomNotFound):
			return response.NotFound(c, fmt.Sprintf("Room %s not found.", input.RoomNumber))
		case errors.As(err, &unavailable):
			return response.Conflict(c, fmt.Sprintf("Room %s is currently %s. Cannot check-in.",
				unavailable.RoomID, unavailable.Status))
		default:
			return response.InternalServerError(c, "Server error during check-in")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(stay)
}

// ListGuests returns all guest stays
// @Summary List guests
// @Description Returns every recorded stay in creation order
// @Tags Guests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.GuestStay
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	stays, err := h.guestService.ListGuests(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list guests")
	}
	if stays == nil {
		stays = []domain.GuestStay{}
	}
	return c.JSON(stays)
}
