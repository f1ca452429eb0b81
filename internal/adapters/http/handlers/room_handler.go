package handlers

import (
	"hoteldesk/internal/adapters/persistence/repositories"
	"hoteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoomHandler handles room inventory endpoints
type RoomHandler struct {
	roomRepo repositories.RoomRepository
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomRepo repositories.RoomRepository) *RoomHandler {
	return &RoomHandler{roomRepo: roomRepo}
}

// ListRooms returns the full room inventory. Deliberately public: the
// check-in form populates its room selector before login completes.
// @Summary List rooms
// @Description Returns all rooms with type, rate, and occupancy status
// @Tags Rooms
// @Produce json
// @Success 200 {array} domain.Room
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.roomRepo.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list rooms")
	}
	return c.JSON(rooms)
}
