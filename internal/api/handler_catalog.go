package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
)

func deviceTypeResource(t domain.DeviceType) dto.DeviceTypeDTO {
	out := dto.DeviceTypeToDTO(t)
	out.Links = dto.SelfLink(href("device-types", out.ID))
	return out
}

func sensorTypeResource(t domain.SensorType) dto.SensorTypeDTO {
	out := dto.SensorTypeToDTO(t)
	out.Links = dto.SelfLink(href("sensor-types", out.ID))
	return out
}

func sensorModelResource(m domain.SensorModel) dto.ModelDTO {
	out := dto.SensorModelToDTO(m)
	out.Links = dto.SelfLink(href("sensor-models", out.Name))
	return out
}

func actuatorTypeResource(t domain.ActuatorType) dto.ActuatorTypeDTO {
	out := dto.ActuatorTypeToDTO(t)
	out.Links = dto.SelfLink(href("actuator-types", out.ID))
	return out
}

func actuatorModelResource(m domain.ActuatorModel) dto.ModelDTO {
	out := dto.ActuatorModelToDTO(m)
	out.Links = dto.SelfLink(href("actuator-models", out.Name))
	return out
}

// modelName parses the :name path parameter.
func modelName(c *gin.Context) (domain.ModelName, bool) {
	name, err := domain.ParseModelName(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return "", false
	}
	return name, true
}

// ListDeviceTypes handles GET /api/device-types.
func (h *Handler) ListDeviceTypes(c *gin.Context) {
	types, err := h.svc.Catalog.ListDeviceTypes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "deviceTypes", dto.MapSlice(types, deviceTypeResource))
}

// GetDeviceType handles GET /api/device-types/:id.
func (h *Handler) GetDeviceType(c *gin.Context) {
	id, ok := pathID[domain.DeviceTypeID](c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Catalog.GetDeviceType(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, deviceTypeResource(t))
}

// ListSensorTypes handles GET /api/sensor-types.
func (h *Handler) ListSensorTypes(c *gin.Context) {
	types, err := h.svc.Catalog.ListSensorTypes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "sensorTypes", dto.MapSlice(types, sensorTypeResource))
}

// GetSensorType handles GET /api/sensor-types/:id.
func (h *Handler) GetSensorType(c *gin.Context) {
	id, ok := pathID[domain.SensorTypeID](c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Catalog.GetSensorType(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensorTypeResource(t))
}

// ListSensorModels handles GET /api/sensor-models.
func (h *Handler) ListSensorModels(c *gin.Context) {
	models, err := h.svc.Catalog.ListSensorModels(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "sensorModels", dto.MapSlice(models, sensorModelResource))
}

// GetSensorModel handles GET /api/sensor-models/:name.
func (h *Handler) GetSensorModel(c *gin.Context) {
	name, ok := modelName(c)
	if !ok {
		return
	}
	m, err := h.svc.Catalog.GetSensorModel(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensorModelResource(m))
}

// ListSensorModelsByType handles GET /api/sensor-models/type/:typeId.
func (h *Handler) ListSensorModelsByType(c *gin.Context) {
	typeID, ok := pathID[domain.SensorTypeID](c, "typeId")
	if !ok {
		return
	}
	models, err := h.svc.Catalog.ListSensorModelsByType(c.Request.Context(), typeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "sensorModels", dto.MapSlice(models, sensorModelResource))
}

// ListActuatorTypes handles GET /api/actuator-types.
func (h *Handler) ListActuatorTypes(c *gin.Context) {
	types, err := h.svc.Catalog.ListActuatorTypes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "actuatorTypes", dto.MapSlice(types, actuatorTypeResource))
}

// GetActuatorType handles GET /api/actuator-types/:id.
func (h *Handler) GetActuatorType(c *gin.Context) {
	id, ok := pathID[domain.ActuatorTypeID](c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Catalog.GetActuatorType(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, actuatorTypeResource(t))
}

// ListActuatorModels handles GET /api/actuator-models.
func (h *Handler) ListActuatorModels(c *gin.Context) {
	models, err := h.svc.Catalog.ListActuatorModels(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "actuatorModels", dto.MapSlice(models, actuatorModelResource))
}

// GetActuatorModel handles GET /api/actuator-models/:name.
func (h *Handler) GetActuatorModel(c *gin.Context) {
	name, ok := modelName(c)
	if !ok {
		return
	}
	m, err := h.svc.Catalog.GetActuatorModel(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, actuatorModelResource(m))
}

// ListActuatorModelsByType handles GET /api/actuator-models/type/:typeId.
func (h *Handler) ListActuatorModelsByType(c *gin.Context) {
	typeID, ok := pathID[domain.ActuatorTypeID](c, "typeId")
	if !ok {
		return
	}
	models, err := h.svc.Catalog.ListActuatorModelsByType(c.Request.Context(), typeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "actuatorModels", dto.MapSlice(models, actuatorModelResource))
}
