package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
)

func roomResource(r domain.Room) dto.RoomDTO {
	out := dto.RoomToDTO(r)
	out.Links = dto.SelfLink(href("rooms", out.ID))
	return out
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.svc.Rooms.ListRooms(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "rooms", dto.MapSlice(rooms, roomResource))
}

// GetRoom handles GET /api/rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID[domain.RoomID](c, "id")
	if !ok {
		return
	}
	room, err := h.svc.Rooms.GetRoom(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomResource(room))
}

// ListRoomsByHouse handles GET /api/rooms/house/:houseId.
func (h *Handler) ListRoomsByHouse(c *gin.Context) {
	houseID, ok := pathID[domain.HouseID](c, "houseId")
	if !ok {
		return
	}
	rooms, err := h.svc.Rooms.ListRoomsByHouse(c.Request.Context(), houseID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "rooms", dto.MapSlice(rooms, roomResource))
}

// AddRoom handles POST /api/rooms/house/:houseId.
func (h *Handler) AddRoom(c *gin.Context) {
	houseID, ok := pathID[domain.HouseID](c, "houseId")
	if !ok {
		return
	}
	var req dto.CreateRoomRequest
	if !bindBody(c, &req) {
		return
	}
	room, err := h.svc.Rooms.AddRoom(c.Request.Context(), houseID, req.Name, req.Floor, req.Width, req.Height, req.Length)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := roomResource(room)
	respondCreated(c, out.Links.Self.Href, out)
}
