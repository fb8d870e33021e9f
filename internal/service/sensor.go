package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/store"
)

// SensorService manages the sensors attached to devices.
type SensorService struct {
	devices store.DeviceRepository
	models  store.SensorModelRepository
	sensors store.SensorRepository
}

func NewSensorService(devices store.DeviceRepository, models store.SensorModelRepository, sensors store.SensorRepository) *SensorService {
	return &SensorService{devices: devices, models: models, sensors: sensors}
}

// AddSensor attaches a sensor of a known model to an active device.
func (s *SensorService) AddSensor(ctx context.Context, deviceID domain.DeviceID, name string, modelName domain.ModelName) (domain.Sensor, error) {
	if err := requireActiveDevice(ctx, s.devices, deviceID); err != nil {
		return domain.Sensor{}, err
	}
	if err := requireExists(ctx, s.models.Exists, modelName, domain.ErrSensorModelNotFound); err != nil {
		return domain.Sensor{}, err
	}
	sensor, err := domain.NewSensor(name, modelName, deviceID)
	if err != nil {
		return domain.Sensor{}, err
	}
	if err := s.sensors.Save(ctx, sensor); err != nil {
		return domain.Sensor{}, err
	}
	log.Info().Str("sensor_id", sensor.ID.String()).Str("device_id", deviceID.String()).Msg("sensor added")
	return sensor, nil
}

func (s *SensorService) GetSensor(ctx context.Context, id domain.SensorID) (domain.Sensor, error) {
	return s.sensors.FindByID(ctx, id)
}

func (s *SensorService) ListSensors(ctx context.Context) ([]domain.Sensor, error) {
	return s.sensors.FindAll(ctx)
}

// ListSensorsByDevice fails with ErrDeviceNotFound for an unknown device.
func (s *SensorService) ListSensorsByDevice(ctx context.Context, deviceID domain.DeviceID) ([]domain.Sensor, error) {
	if err := requireExists(ctx, s.devices.Exists, deviceID, domain.ErrDeviceNotFound); err != nil {
		return nil, err
	}
	return s.sensors.FindByDeviceID(ctx, deviceID)
}

func requireActiveDevice(ctx context.Context, devices store.DeviceRepository, id domain.DeviceID) error {
	d, err := devices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !d.Active {
		return domain.ErrDeviceInactive
	}
	return nil
}
