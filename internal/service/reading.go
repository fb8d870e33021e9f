package service

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/parse"
	"smarthome-backend/internal/store"
)

// Reading sources, used as a metrics label.
const (
	SourceHTTP = "http"
	SourceMQTT = "mqtt"
)

// ReadingSink receives every reading after it has been stored.
type ReadingSink interface {
	WriteReading(ctx context.Context, r domain.Reading) error
}

// ReadingService records sensor readings and answers time-range queries.
type ReadingService struct {
	devices  store.DeviceRepository
	sensors  store.SensorRepository
	readings store.ReadingRepository
	sink     ReadingSink
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewReadingService creates a ReadingService. sink and m may be nil.
func NewReadingService(devices store.DeviceRepository, sensors store.SensorRepository, readings store.ReadingRepository, sink ReadingSink, m *metrics.Metrics) *ReadingService {
	return &ReadingService{
		devices:  devices,
		sensors:  sensors,
		readings: readings,
		sink:     sink,
		metrics:  m,
		now:      time.Now,
	}
}

// AddReading stores a value reported by an existing sensor. A zero at means
// "now". Readings dated in the future are rejected.
func (s *ReadingService) AddReading(ctx context.Context, sensorID domain.SensorID, value string, at time.Time, source string) (domain.Reading, error) {
	if err := requireExists(ctx, s.sensors.Exists, sensorID, domain.ErrSensorNotFound); err != nil {
		return domain.Reading{}, err
	}
	now := s.now()
	if at.IsZero() {
		at = now
	}
	r, err := domain.NewReading(sensorID, value, at, now)
	if err != nil {
		return domain.Reading{}, err
	}
	if err := s.readings.Save(ctx, r); err != nil {
		return domain.Reading{}, err
	}
	s.metrics.ReadingStored(source)

	if s.sink != nil {
		if err := s.sink.WriteReading(ctx, r); err != nil {
			log.Warn().Err(err).Str("sensor_id", sensorID.String()).Msg("failed to mirror reading")
		}
	}
	return r, nil
}

// ListReadingsBySensor fails with ErrSensorNotFound for an unknown sensor.
func (s *ReadingService) ListReadingsBySensor(ctx context.Context, sensorID domain.SensorID) ([]domain.Reading, error) {
	if err := requireExists(ctx, s.sensors.Exists, sensorID, domain.ErrSensorNotFound); err != nil {
		return nil, err
	}
	return s.readings.FindBySensorID(ctx, sensorID)
}

// ReadingsForDeviceInPeriod returns the readings of every sensor on a device
// recorded within [start, end], oldest first.
//
// Input is checked in this order: device id, both bounds parseable,
// start before end, end not after now. Only then is the device looked up. A
// device without sensors yields an empty, non-nil slice.
func (s *ReadingService) ReadingsForDeviceInPeriod(ctx context.Context, rawDeviceID, rawStart, rawEnd string) ([]domain.Reading, error) {
	deviceID, err := domain.ParseID[domain.DeviceID](rawDeviceID)
	if err != nil {
		return nil, err
	}
	period, err := parse.ParsePeriod(rawStart, rawEnd, s.now())
	if err != nil {
		return nil, err
	}
	if err := requireExists(ctx, s.devices.Exists, deviceID, domain.ErrDeviceNotFound); err != nil {
		return nil, err
	}

	sensors, err := s.sensors.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reading, 0)
	for _, sensor := range sensors {
		rs, err := s.readings.FindBySensorIDInPeriod(ctx, sensor.ID, period.Start, period.End)
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}
	slices.SortStableFunc(out, func(a, b domain.Reading) int {
		return a.TimeStamp.Time().Compare(b.TimeStamp.Time())
	})
	return out, nil
}
