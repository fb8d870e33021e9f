package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
	"smarthome-backend/internal/parse"
	"smarthome-backend/internal/service"
)

func readingResource(r domain.Reading) dto.ReadingDTO {
	out := dto.ReadingToDTO(r)
	out.Links = dto.SelfLink(href("readings", "sensor", out.SensorID))
	return out
}

// ListReadingsBySensor handles GET /api/readings/sensor/:sensorId.
func (h *Handler) ListReadingsBySensor(c *gin.Context) {
	sensorID, ok := pathID[domain.SensorID](c, "sensorId")
	if !ok {
		return
	}
	readings, err := h.svc.Readings.ListReadingsBySensor(c.Request.Context(), sensorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "readings", dto.MapSlice(readings, readingResource))
}

// AddReading handles POST /api/readings/sensor/:sensorId.
func (h *Handler) AddReading(c *gin.Context) {
	sensorID, ok := pathID[domain.SensorID](c, "sensorId")
	if !ok {
		return
	}
	var req dto.CreateReadingRequest
	if !bindBody(c, &req) {
		return
	}
	var at time.Time
	if req.Timestamp != "" {
		var err error
		if at, err = parse.ParseTimeStamp(req.Timestamp); err != nil {
			abortWithError(c, err)
			return
		}
	}
	r, err := h.svc.Readings.AddReading(c.Request.Context(), sensorID, req.Value, at, service.SourceHTTP)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := readingResource(r)
	respondCreated(c, out.Links.Self.Href, out)
}

// ReadingsForDeviceInPeriod handles GET /api/readings/device/:deviceId?start=&end=.
func (h *Handler) ReadingsForDeviceInPeriod(c *gin.Context) {
	readings, err := h.svc.Readings.ReadingsForDeviceInPeriod(c.Request.Context(), c.Param("deviceId"), c.Query("start"), c.Query("end"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "readings", dto.MapSlice(readings, readingResource))
}
