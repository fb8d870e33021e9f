package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
)

func sensorResource(s domain.Sensor) dto.SensorDTO {
	out := dto.SensorToDTO(s)
	out.Links = dto.SelfLink(href("sensors", out.ID))
	return out
}

func actuatorResource(a domain.Actuator) dto.ActuatorDTO {
	out := dto.ActuatorToDTO(a)
	out.Links = dto.SelfLink(href("actuators", out.ID))
	return out
}

// ListSensors handles GET /api/sensors.
func (h *Handler) ListSensors(c *gin.Context) {
	sensors, err := h.svc.Sensors.ListSensors(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "sensors", dto.MapSlice(sensors, sensorResource))
}

// GetSensor handles GET /api/sensors/:id.
func (h *Handler) GetSensor(c *gin.Context) {
	id, ok := pathID[domain.SensorID](c, "id")
	if !ok {
		return
	}
	sensor, err := h.svc.Sensors.GetSensor(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensorResource(sensor))
}

// ListSensorsByDevice handles GET /api/sensors/device/:deviceId.
func (h *Handler) ListSensorsByDevice(c *gin.Context) {
	deviceID, ok := pathID[domain.DeviceID](c, "deviceId")
	if !ok {
		return
	}
	sensors, err := h.svc.Sensors.ListSensorsByDevice(c.Request.Context(), deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "sensors", dto.MapSlice(sensors, sensorResource))
}

// AddSensor handles POST /api/sensors/device/:deviceId.
func (h *Handler) AddSensor(c *gin.Context) {
	deviceID, ok := pathID[domain.DeviceID](c, "deviceId")
	if !ok {
		return
	}
	var req dto.CreateSensorRequest
	if !bindBody(c, &req) {
		return
	}
	name, err := domain.ParseModelName(req.ModelName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	sensor, err := h.svc.Sensors.AddSensor(c.Request.Context(), deviceID, req.Name, name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := sensorResource(sensor)
	respondCreated(c, out.Links.Self.Href, out)
}

// ListActuators handles GET /api/actuators.
func (h *Handler) ListActuators(c *gin.Context) {
	actuators, err := h.svc.Actuators.ListActuators(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "actuators", dto.MapSlice(actuators, actuatorResource))
}

// GetActuator handles GET /api/actuators/:id.
func (h *Handler) GetActuator(c *gin.Context) {
	id, ok := pathID[domain.ActuatorID](c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Actuators.GetActuator(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, actuatorResource(a))
}

// ListActuatorsByDevice handles GET /api/actuators/device/:deviceId.
func (h *Handler) ListActuatorsByDevice(c *gin.Context) {
	deviceID, ok := pathID[domain.DeviceID](c, "deviceId")
	if !ok {
		return
	}
	actuators, err := h.svc.Actuators.ListActuatorsByDevice(c.Request.Context(), deviceID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "actuators", dto.MapSlice(actuators, actuatorResource))
}

// AddActuator handles POST /api/actuators/device/:deviceId.
func (h *Handler) AddActuator(c *gin.Context) {
	deviceID, ok := pathID[domain.DeviceID](c, "deviceId")
	if !ok {
		return
	}
	var req dto.CreateActuatorRequest
	if !bindBody(c, &req) {
		return
	}
	name, err := domain.ParseModelName(req.ModelName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	limits, err := dto.LimitsFromDTO(req.LowerLimit, req.UpperLimit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	a, err := h.svc.Actuators.AddActuator(c.Request.Context(), deviceID, req.Name, name, limits)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := actuatorResource(a)
	respondCreated(c, out.Links.Self.Href, out)
}
