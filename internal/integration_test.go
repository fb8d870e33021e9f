package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-backend/config"
	"smarthome-backend/internal/api"
	"smarthome-backend/internal/db"
	"smarthome-backend/internal/dto"
	"smarthome-backend/internal/ingest"
	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/mw"
	"smarthome-backend/internal/service"
	"smarthome-backend/internal/store"
)

// TestReadingLifecycle builds a house from the example configuration, wires a
// sensor, reports readings over HTTP and through the MQTT worker pool, and
// queries them back by period.
func TestReadingLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load("../config/config.example.yaml")
	require.NoError(t, err)
	cfg.Database = config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	gormDB, err := db.Init(&cfg.Database)
	require.NoError(t, err)
	sqlDB, _ := gormDB.DB()
	defer sqlDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, db.SeedCatalog(ctx, gormDB, &cfg.Catalog))

	m := metrics.New()
	svc := service.New(store.NewGormRepositories(gormDB), nil, m)
	router := api.NewRouter(svc, api.Options{
		Cache:    mw.NewCacheStore(cfg.Server.CacheTTL),
		CacheTTL: cfg.Server.CacheTTL,
		Metrics:  m,
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}
	decode := func(rec *httptest.ResponseRecorder, v any) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}

	// --- House, room and device ---
	rec := do(http.MethodPost, "/api/houses", dto.CreateHouseRequest{
		Name: "Sweet Home",
		LocationRequest: dto.LocationRequest{
			Street: "Rua Dr. Antonio Bernardino de Almeida", DoorNumber: "431",
			PostalCode: "4200-072", City: "Porto", Country: "Portugal",
			Latitude: 41.178, Longitude: -8.608,
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var house dto.HouseDTO
	decode(rec, &house)

	rec = do(http.MethodPost, "/api/rooms/house/"+house.ID, dto.CreateRoomRequest{Name: "Living Room", Floor: 0, Width: 6, Height: 3, Length: 5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var room dto.RoomDTO
	decode(rec, &room)

	rec = do(http.MethodPost, "/api/devices/room/"+room.ID, dto.CreateDeviceRequest{Name: "Thermostat", TypeID: "thermostat"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var device dto.DeviceDTO
	decode(rec, &device)
	assert.True(t, device.Active)

	rec = do(http.MethodPost, "/api/sensors/device/"+device.ID, dto.CreateSensorRequest{Name: "Air temperature", ModelName: "TemperatureSensor"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var sensor dto.SensorDTO
	decode(rec, &sensor)

	// --- Readings from both sources ---
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	rec = do(http.MethodPost, "/api/readings/sensor/"+sensor.ID, dto.CreateReadingRequest{Value: "20.5", Timestamp: base.Format(time.RFC3339)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	pool := ingest.NewWorkerPool(cfg.MQTT.Workers, svc.Readings, m)
	pool.Start(ctx)
	report, err := ingest.DecodeReport(cfg.MQTT.TopicPrefix,
		cfg.MQTT.TopicPrefix+"/sensors/"+sensor.ID+"/readings",
		[]byte(`{"value":"21.0","timestamp":"`+base.Add(10*time.Minute).Format(time.RFC3339)+`"}`))
	require.NoError(t, err)
	require.True(t, pool.Dispatch(ctx, report))

	type readingsBody struct {
		Embedded struct {
			Readings []dto.ReadingDTO `json:"readings"`
		} `json:"_embedded"`
	}
	require.Eventually(t, func() bool {
		rec := do(http.MethodGet, "/api/readings/sensor/"+sensor.ID, nil)
		var body readingsBody
		return rec.Code == http.StatusOK && json.Unmarshal(rec.Body.Bytes(), &body) == nil && len(body.Embedded.Readings) == 2
	}, 2*time.Second, 20*time.Millisecond)

	// --- Period query ---
	q := url.Values{}
	q.Set("start", base.Add(-time.Minute).Format(time.RFC3339))
	q.Set("end", base.Add(5*time.Minute).Format(time.RFC3339))
	rec = do(http.MethodGet, "/api/readings/device/"+device.ID+"?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var inPeriod readingsBody
	decode(rec, &inPeriod)
	require.Len(t, inPeriod.Embedded.Readings, 1)
	assert.Equal(t, "20.5", inPeriod.Embedded.Readings[0].Value)

	q.Set("end", base.Add(30*time.Minute).Format(time.RFC3339))
	rec = do(http.MethodGet, "/api/readings/device/"+device.ID+"?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(rec, &inPeriod)
	require.Len(t, inPeriod.Embedded.Readings, 2)
	assert.Equal(t, []string{"20.5", "21.0"}, []string{inPeriod.Embedded.Readings[0].Value, inPeriod.Embedded.Readings[1].Value})

	// --- Deactivation closes the device to new sensors ---
	rec = do(http.MethodPatch, "/api/devices/"+device.ID+"/deactivate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(http.MethodPost, "/api/sensors/device/"+device.ID, dto.CreateSensorRequest{Name: "Humidity", ModelName: "HumiditySensor"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Readings of an existing sensor are still accepted.
	rec = do(http.MethodPost, "/api/readings/sensor/"+sensor.ID, dto.CreateReadingRequest{Value: "21.5"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
