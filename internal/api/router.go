package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/mw"
	"smarthome-backend/internal/service"
)

// Options carries the optional collaborators of the router. Zero values
// disable the corresponding feature.
type Options struct {
	RateLimiter *mw.IPRateLimiter
	Cache       *cache.Cache
	CacheTTL    time.Duration
	Metrics     *metrics.Metrics
	// Health reports whether the backing database is reachable.
	Health func(ctx context.Context) error
}

// NewRouter creates and configures a new Gin router.
func NewRouter(svc *service.Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(mw.Recovery(), mw.Logger())
	if opts.Metrics != nil {
		r.Use(mw.Metrics(opts.Metrics))
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	r.GET("/healthz", healthz(opts.Health))

	handler := NewHandler(svc)

	// The catalog is seeded at startup and read-only afterwards.
	var caching gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if opts.Cache != nil {
		caching = mw.Cache(opts.Cache, opts.CacheTTL)
	}

	api := r.Group(basePath)
	if opts.RateLimiter != nil {
		api.Use(mw.RateLimiter(opts.RateLimiter))
	}
	{
		api.GET("/houses", handler.ListHouses)
		api.POST("/houses", handler.CreateHouse)
		api.GET("/houses/:id", handler.GetHouse)
		api.PUT("/houses/:id/location", handler.ConfigureLocation)

		api.GET("/rooms", handler.ListRooms)
		api.GET("/rooms/:id", handler.GetRoom)
		api.GET("/rooms/house/:houseId", handler.ListRoomsByHouse)
		api.POST("/rooms/house/:houseId", handler.AddRoom)

		api.GET("/device-types", caching, handler.ListDeviceTypes)
		api.GET("/device-types/:id", caching, handler.GetDeviceType)

		api.GET("/devices", handler.ListDevices)
		api.GET("/devices/grouped", handler.GroupDevicesByType)
		api.GET("/devices/:id", handler.GetDevice)
		api.GET("/devices/room/:roomId", handler.ListDevicesByRoom)
		api.POST("/devices/room/:roomId", handler.AddDevice)
		api.GET("/devices/type/:typeId", handler.ListDevicesByType)
		api.PATCH("/devices/:id/deactivate", handler.DeactivateDevice)

		api.GET("/sensor-types", caching, handler.ListSensorTypes)
		api.GET("/sensor-types/:id", caching, handler.GetSensorType)
		api.GET("/sensor-models", caching, handler.ListSensorModels)
		api.GET("/sensor-models/:name", caching, handler.GetSensorModel)
		api.GET("/sensor-models/type/:typeId", caching, handler.ListSensorModelsByType)

		api.GET("/sensors", handler.ListSensors)
		api.GET("/sensors/:id", handler.GetSensor)
		api.GET("/sensors/device/:deviceId", handler.ListSensorsByDevice)
		api.POST("/sensors/device/:deviceId", handler.AddSensor)

		api.GET("/actuator-types", caching, handler.ListActuatorTypes)
		api.GET("/actuator-types/:id", caching, handler.GetActuatorType)
		api.GET("/actuator-models", caching, handler.ListActuatorModels)
		api.GET("/actuator-models/:name", caching, handler.GetActuatorModel)
		api.GET("/actuator-models/type/:typeId", caching, handler.ListActuatorModelsByType)

		api.GET("/actuators", handler.ListActuators)
		api.GET("/actuators/:id", handler.GetActuator)
		api.GET("/actuators/device/:deviceId", handler.ListActuatorsByDevice)
		api.POST("/actuators/device/:deviceId", handler.AddActuator)

		api.GET("/readings/sensor/:sensorId", handler.ListReadingsBySensor)
		api.POST("/readings/sensor/:sensorId", handler.AddReading)
		api.GET("/readings/device/:deviceId", handler.ReadingsForDeviceInPeriod)
	}

	return r
}

func healthz(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
