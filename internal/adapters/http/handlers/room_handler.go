package handlers

import (
	"errors"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoomHandler handles room catalog endpoints
type RoomHandler struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomRepo *repositories.RoomRepository) *RoomHandler {
	return &RoomHandler{roomRepo: roomRepo}
}

// List lists the room catalog
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
	rooms, err := h.roomRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list rooms")
	}

	return response.Success(c, "", fiber.Map{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// Get gets one room by room id or room number
// @Summary Get room
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID or room number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *fiber.Ctx) error {
	room, err := h.roomRepo.GetByRoomID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Room not found")
		}
		return response.InternalServerError(c, "Failed to get room")
	}

	return response.Success(c, "", fiber.Map{"room": room})
}
