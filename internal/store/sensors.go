package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// SensorRepository persists sensors.
type SensorRepository interface {
	Save(ctx context.Context, s domain.Sensor) error
	FindByID(ctx context.Context, id domain.SensorID) (domain.Sensor, error)
	FindAll(ctx context.Context) ([]domain.Sensor, error)
	FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) ([]domain.Sensor, error)
	Exists(ctx context.Context, id domain.SensorID) (bool, error)
}

// ActuatorRepository persists actuators.
type ActuatorRepository interface {
	Save(ctx context.Context, a domain.Actuator) error
	FindByID(ctx context.Context, id domain.ActuatorID) (domain.Actuator, error)
	FindAll(ctx context.Context) ([]domain.Actuator, error)
	FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) ([]domain.Actuator, error)
	Exists(ctx context.Context, id domain.ActuatorID) (bool, error)
}

type gormSensorRepository struct {
	db *gorm.DB
}

func (r *gormSensorRepository) Save(ctx context.Context, s domain.Sensor) error {
	row := model.Sensor{
		ID:        string(s.ID),
		Name:      string(s.Name),
		ModelName: string(s.ModelName),
		DeviceID:  string(s.DeviceID),
	}
	if err := upsert(ctx, r.db, &row); err != nil {
		return fmt.Errorf("failed to save sensor %s: %w", s.ID, err)
	}
	return nil
}

func (r *gormSensorRepository) FindByID(ctx context.Context, id domain.SensorID) (domain.Sensor, error) {
	row, err := take[model.Sensor](ctx, r.db, domain.ErrSensorNotFound, "id = ?", string(id))
	if err != nil {
		return domain.Sensor{}, err
	}
	return sensorFromRow(row)
}

func (r *gormSensorRepository) FindAll(ctx context.Context) ([]domain.Sensor, error) {
	return list(ctx, r.db.Order("created_at, id"), sensorFromRow)
}

func (r *gormSensorRepository) FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) ([]domain.Sensor, error) {
	return list(ctx, r.db.Where("device_id = ?", string(deviceID)).Order("created_at, id"), sensorFromRow)
}

func (r *gormSensorRepository) Exists(ctx context.Context, id domain.SensorID) (bool, error) {
	return exists[model.Sensor](ctx, r.db, "id", string(id))
}

func sensorFromRow(row model.Sensor) (domain.Sensor, error) {
	return domain.RestoreSensor(domain.SensorID(row.ID), row.Name, domain.ModelName(row.ModelName), domain.DeviceID(row.DeviceID))
}

type gormActuatorRepository struct {
	db *gorm.DB
}

func (r *gormActuatorRepository) Save(ctx context.Context, a domain.Actuator) error {
	row := model.Actuator{
		ID:        string(a.ID),
		Name:      string(a.Name),
		ModelName: string(a.ModelName),
		DeviceID:  string(a.DeviceID),
	}
	if a.Limits != nil {
		lower, upper := a.Limits.Lower, a.Limits.Upper
		row.LowerLimit = &lower
		row.UpperLimit = &upper
	}
	if err := upsert(ctx, r.db, &row); err != nil {
		return fmt.Errorf("failed to save actuator %s: %w", a.ID, err)
	}
	return nil
}

func (r *gormActuatorRepository) FindByID(ctx context.Context, id domain.ActuatorID) (domain.Actuator, error) {
	row, err := take[model.Actuator](ctx, r.db, domain.ErrActuatorNotFound, "id = ?", string(id))
	if err != nil {
		return domain.Actuator{}, err
	}
	return actuatorFromRow(row)
}

func (r *gormActuatorRepository) FindAll(ctx context.Context) ([]domain.Actuator, error) {
	return list(ctx, r.db.Order("created_at, id"), actuatorFromRow)
}

func (r *gormActuatorRepository) FindByDeviceID(ctx context.Context, deviceID domain.DeviceID) ([]domain.Actuator, error) {
	return list(ctx, r.db.Where("device_id = ?", string(deviceID)).Order("created_at, id"), actuatorFromRow)
}

func (r *gormActuatorRepository) Exists(ctx context.Context, id domain.ActuatorID) (bool, error) {
	return exists[model.Actuator](ctx, r.db, "id", string(id))
}

func actuatorFromRow(row model.Actuator) (domain.Actuator, error) {
	var limits *domain.ActuatorLimits
	if row.LowerLimit != nil && row.UpperLimit != nil {
		limits = &domain.ActuatorLimits{Lower: *row.LowerLimit, Upper: *row.UpperLimit}
	}
	return domain.RestoreActuator(domain.ActuatorID(row.ID), row.Name, domain.ModelName(row.ModelName), domain.DeviceID(row.DeviceID), limits)
}
