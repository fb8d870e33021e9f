package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
)

func deviceResource(d domain.Device) dto.DeviceDTO {
	out := dto.DeviceToDTO(d)
	out.Links = dto.SelfLink(href("devices", out.ID))
	return out
}

// ListDevices handles GET /api/devices.
func (h *Handler) ListDevices(c *gin.Context) {
	devices, err := h.svc.Devices.ListDevices(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "devices", dto.MapSlice(devices, deviceResource))
}

// GroupDevicesByType handles GET /api/devices/grouped.
func (h *Handler) GroupDevicesByType(c *gin.Context) {
	grouped, err := h.svc.Devices.GroupDevicesByType(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(grouped) == 0 {
		respondCollection[dto.DeviceDTO](c, "devices", nil)
		return
	}
	out := make(map[string][]dto.DeviceDTO, len(grouped))
	for typeID, devices := range grouped {
		out[typeID.String()] = dto.MapSlice(devices, deviceResource)
	}
	c.JSON(http.StatusOK, out)
}

// GetDevice handles GET /api/devices/:id.
func (h *Handler) GetDevice(c *gin.Context) {
	id, ok := pathID[domain.DeviceID](c, "id")
	if !ok {
		return
	}
	device, err := h.svc.Devices.GetDevice(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, deviceResource(device))
}

// ListDevicesByRoom handles GET /api/devices/room/:roomId.
func (h *Handler) ListDevicesByRoom(c *gin.Context) {
	roomID, ok := pathID[domain.RoomID](c, "roomId")
	if !ok {
		return
	}
	devices, err := h.svc.Devices.ListDevicesByRoom(c.Request.Context(), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "devices", dto.MapSlice(devices, deviceResource))
}

// ListDevicesByType handles GET /api/devices/type/:typeId.
func (h *Handler) ListDevicesByType(c *gin.Context) {
	typeID, ok := pathID[domain.DeviceTypeID](c, "typeId")
	if !ok {
		return
	}
	devices, err := h.svc.Devices.ListDevicesByType(c.Request.Context(), typeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "devices", dto.MapSlice(devices, deviceResource))
}

// AddDevice handles POST /api/devices/room/:roomId.
func (h *Handler) AddDevice(c *gin.Context) {
	roomID, ok := pathID[domain.RoomID](c, "roomId")
	if !ok {
		return
	}
	var req dto.CreateDeviceRequest
	if !bindBody(c, &req) {
		return
	}
	typeID, err := domain.ParseID[domain.DeviceTypeID](req.TypeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	device, err := h.svc.Devices.AddDevice(c.Request.Context(), roomID, req.Name, typeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := deviceResource(device)
	respondCreated(c, out.Links.Self.Href, out)
}

// DeactivateDevice handles PATCH /api/devices/:id/deactivate.
func (h *Handler) DeactivateDevice(c *gin.Context) {
	id, ok := pathID[domain.DeviceID](c, "id")
	if !ok {
		return
	}
	device, err := h.svc.Devices.DeactivateDevice(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, deviceResource(device))
}
