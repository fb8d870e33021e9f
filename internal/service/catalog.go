package service

import (
	"context"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/store"
)

// CatalogService exposes the read-only type and model catalog.
type CatalogService struct {
	deviceTypes    store.DeviceTypeRepository
	sensorTypes    store.SensorTypeRepository
	sensorModels   store.SensorModelRepository
	actuatorTypes  store.ActuatorTypeRepository
	actuatorModels store.ActuatorModelRepository
}

func NewCatalogService(repos *store.Repositories) *CatalogService {
	return &CatalogService{
		deviceTypes:    repos.DeviceTypes,
		sensorTypes:    repos.SensorTypes,
		sensorModels:   repos.SensorModels,
		actuatorTypes:  repos.ActuatorTypes,
		actuatorModels: repos.ActuatorModels,
	}
}

func (s *CatalogService) ListDeviceTypes(ctx context.Context) ([]domain.DeviceType, error) {
	return s.deviceTypes.FindAll(ctx)
}

func (s *CatalogService) GetDeviceType(ctx context.Context, id domain.DeviceTypeID) (domain.DeviceType, error) {
	return s.deviceTypes.FindByID(ctx, id)
}

func (s *CatalogService) ListSensorTypes(ctx context.Context) ([]domain.SensorType, error) {
	return s.sensorTypes.FindAll(ctx)
}

func (s *CatalogService) GetSensorType(ctx context.Context, id domain.SensorTypeID) (domain.SensorType, error) {
	return s.sensorTypes.FindByID(ctx, id)
}

func (s *CatalogService) ListSensorModels(ctx context.Context) ([]domain.SensorModel, error) {
	return s.sensorModels.FindAll(ctx)
}

func (s *CatalogService) GetSensorModel(ctx context.Context, name domain.ModelName) (domain.SensorModel, error) {
	return s.sensorModels.FindByName(ctx, name)
}

// ListSensorModelsByType fails with ErrSensorTypeNotFound for an unknown type.
func (s *CatalogService) ListSensorModelsByType(ctx context.Context, typeID domain.SensorTypeID) ([]domain.SensorModel, error) {
	if err := requireExists(ctx, s.sensorTypes.Exists, typeID, domain.ErrSensorTypeNotFound); err != nil {
		return nil, err
	}
	return s.sensorModels.FindByTypeID(ctx, typeID)
}

func (s *CatalogService) ListActuatorTypes(ctx context.Context) ([]domain.ActuatorType, error) {
	return s.actuatorTypes.FindAll(ctx)
}

func (s *CatalogService) GetActuatorType(ctx context.Context, id domain.ActuatorTypeID) (domain.ActuatorType, error) {
	return s.actuatorTypes.FindByID(ctx, id)
}

func (s *CatalogService) ListActuatorModels(ctx context.Context) ([]domain.ActuatorModel, error) {
	return s.actuatorModels.FindAll(ctx)
}

func (s *CatalogService) GetActuatorModel(ctx context.Context, name domain.ModelName) (domain.ActuatorModel, error) {
	return s.actuatorModels.FindByName(ctx, name)
}

// ListActuatorModelsByType fails with ErrActuatorTypeNotFound for an unknown type.
func (s *CatalogService) ListActuatorModelsByType(ctx context.Context, typeID domain.ActuatorTypeID) ([]domain.ActuatorModel, error) {
	if err := requireExists(ctx, s.actuatorTypes.Exists, typeID, domain.ErrActuatorTypeNotFound); err != nil {
		return nil, err
	}
	return s.actuatorModels.FindByTypeID(ctx, typeID)
}
