package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/store"
)

// ActuatorService manages the actuators attached to devices.
type ActuatorService struct {
	devices   store.DeviceRepository
	models    store.ActuatorModelRepository
	actuators store.ActuatorRepository
}

func NewActuatorService(devices store.DeviceRepository, models store.ActuatorModelRepository, actuators store.ActuatorRepository) *ActuatorService {
	return &ActuatorService{devices: devices, models: models, actuators: actuators}
}

// AddActuator attaches an actuator of a known model to an active device.
// limits may be nil.
func (s *ActuatorService) AddActuator(ctx context.Context, deviceID domain.DeviceID, name string, modelName domain.ModelName, limits *domain.ActuatorLimits) (domain.Actuator, error) {
	if err := requireActiveDevice(ctx, s.devices, deviceID); err != nil {
		return domain.Actuator{}, err
	}
	if err := requireExists(ctx, s.models.Exists, modelName, domain.ErrActuatorModelNotFound); err != nil {
		return domain.Actuator{}, err
	}
	a, err := domain.NewActuator(name, modelName, deviceID, limits)
	if err != nil {
		return domain.Actuator{}, err
	}
	if err := s.actuators.Save(ctx, a); err != nil {
		return domain.Actuator{}, err
	}
	log.Info().Str("actuator_id", a.ID.String()).Str("device_id", deviceID.String()).Msg("actuator added")
	return a, nil
}

func (s *ActuatorService) GetActuator(ctx context.Context, id domain.ActuatorID) (domain.Actuator, error) {
	return s.actuators.FindByID(ctx, id)
}

func (s *ActuatorService) ListActuators(ctx context.Context) ([]domain.Actuator, error) {
	return s.actuators.FindAll(ctx)
}

// ListActuatorsByDevice fails with ErrDeviceNotFound for an unknown device.
func (s *ActuatorService) ListActuatorsByDevice(ctx context.Context, deviceID domain.DeviceID) ([]domain.Actuator, error) {
	if err := requireExists(ctx, s.devices.Exists, deviceID, domain.ErrDeviceNotFound); err != nil {
		return nil, err
	}
	return s.actuators.FindByDeviceID(ctx, deviceID)
}
