package store

import (
	"context"

	"gorm.io/gorm"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// DeviceTypeRepository reads the device type catalog.
type DeviceTypeRepository interface {
	FindByID(ctx context.Context, id domain.DeviceTypeID) (domain.DeviceType, error)
	FindAll(ctx context.Context) ([]domain.DeviceType, error)
	Exists(ctx context.Context, id domain.DeviceTypeID) (bool, error)
}

// SensorTypeRepository reads the sensor type catalog.
type SensorTypeRepository interface {
	FindByID(ctx context.Context, id domain.SensorTypeID) (domain.SensorType, error)
	FindAll(ctx context.Context) ([]domain.SensorType, error)
	Exists(ctx context.Context, id domain.SensorTypeID) (bool, error)
}

// SensorModelRepository reads the sensor model catalog.
type SensorModelRepository interface {
	FindByName(ctx context.Context, name domain.ModelName) (domain.SensorModel, error)
	FindAll(ctx context.Context) ([]domain.SensorModel, error)
	FindByTypeID(ctx context.Context, typeID domain.SensorTypeID) ([]domain.SensorModel, error)
	Exists(ctx context.Context, name domain.ModelName) (bool, error)
}

// ActuatorTypeRepository reads the actuator type catalog.
type ActuatorTypeRepository interface {
	FindByID(ctx context.Context, id domain.ActuatorTypeID) (domain.ActuatorType, error)
	FindAll(ctx context.Context) ([]domain.ActuatorType, error)
	Exists(ctx context.Context, id domain.ActuatorTypeID) (bool, error)
}

// ActuatorModelRepository reads the actuator model catalog.
type ActuatorModelRepository interface {
	FindByName(ctx context.Context, name domain.ModelName) (domain.ActuatorModel, error)
	FindAll(ctx context.Context) ([]domain.ActuatorModel, error)
	FindByTypeID(ctx context.Context, typeID domain.ActuatorTypeID) ([]domain.ActuatorModel, error)
	Exists(ctx context.Context, name domain.ModelName) (bool, error)
}

type gormDeviceTypeRepository struct{ db *gorm.DB }

func (r *gormDeviceTypeRepository) FindByID(ctx context.Context, id domain.DeviceTypeID) (domain.DeviceType, error) {
	row, err := take[model.DeviceType](ctx, r.db, domain.ErrDeviceTypeNotFound, "id = ?", string(id))
	if err != nil {
		return domain.DeviceType{}, err
	}
	return domain.NewDeviceType(row.ID, row.Description)
}

func (r *gormDeviceTypeRepository) FindAll(ctx context.Context) ([]domain.DeviceType, error) {
	return list(ctx, r.db.Order("id"), func(row model.DeviceType) (domain.DeviceType, error) {
		return domain.NewDeviceType(row.ID, row.Description)
	})
}

func (r *gormDeviceTypeRepository) Exists(ctx context.Context, id domain.DeviceTypeID) (bool, error) {
	return exists[model.DeviceType](ctx, r.db, "id", string(id))
}

type gormSensorTypeRepository struct{ db *gorm.DB }

func (r *gormSensorTypeRepository) FindByID(ctx context.Context, id domain.SensorTypeID) (domain.SensorType, error) {
	row, err := take[model.SensorType](ctx, r.db, domain.ErrSensorTypeNotFound, "id = ?", string(id))
	if err != nil {
		return domain.SensorType{}, err
	}
	return sensorTypeFromRow(row)
}

func (r *gormSensorTypeRepository) FindAll(ctx context.Context) ([]domain.SensorType, error) {
	return list(ctx, r.db.Order("id"), sensorTypeFromRow)
}

func (r *gormSensorTypeRepository) Exists(ctx context.Context, id domain.SensorTypeID) (bool, error) {
	return exists[model.SensorType](ctx, r.db, "id", string(id))
}

func sensorTypeFromRow(row model.SensorType) (domain.SensorType, error) {
	return domain.NewSensorType(row.ID, row.Description, row.Unit)
}

type gormSensorModelRepository struct{ db *gorm.DB }

func (r *gormSensorModelRepository) FindByName(ctx context.Context, name domain.ModelName) (domain.SensorModel, error) {
	row, err := take[model.SensorModel](ctx, r.db, domain.ErrSensorModelNotFound, "name = ?", string(name))
	if err != nil {
		return domain.SensorModel{}, err
	}
	return sensorModelFromRow(row)
}

func (r *gormSensorModelRepository) FindAll(ctx context.Context) ([]domain.SensorModel, error) {
	return list(ctx, r.db.Order("name"), sensorModelFromRow)
}

func (r *gormSensorModelRepository) FindByTypeID(ctx context.Context, typeID domain.SensorTypeID) ([]domain.SensorModel, error) {
	return list(ctx, r.db.Where("type_id = ?", string(typeID)).Order("name"), sensorModelFromRow)
}

func (r *gormSensorModelRepository) Exists(ctx context.Context, name domain.ModelName) (bool, error) {
	return exists[model.SensorModel](ctx, r.db, "name", string(name))
}

func sensorModelFromRow(row model.SensorModel) (domain.SensorModel, error) {
	return domain.NewSensorModel(row.Name, row.TypeID, row.Description)
}

type gormActuatorTypeRepository struct{ db *gorm.DB }

func (r *gormActuatorTypeRepository) FindByID(ctx context.Context, id domain.ActuatorTypeID) (domain.ActuatorType, error) {
	row, err := take[model.ActuatorType](ctx, r.db, domain.ErrActuatorTypeNotFound, "id = ?", string(id))
	if err != nil {
		return domain.ActuatorType{}, err
	}
	return domain.NewActuatorType(row.ID, row.Description)
}

func (r *gormActuatorTypeRepository) FindAll(ctx context.Context) ([]domain.ActuatorType, error) {
	return list(ctx, r.db.Order("id"), func(row model.ActuatorType) (domain.ActuatorType, error) {
		return domain.NewActuatorType(row.ID, row.Description)
	})
}

func (r *gormActuatorTypeRepository) Exists(ctx context.Context, id domain.ActuatorTypeID) (bool, error) {
	return exists[model.ActuatorType](ctx, r.db, "id", string(id))
}

type gormActuatorModelRepository struct{ db *gorm.DB }

func (r *gormActuatorModelRepository) FindByName(ctx context.Context, name domain.ModelName) (domain.ActuatorModel, error) {
	row, err := take[model.ActuatorModel](ctx, r.db, domain.ErrActuatorModelNotFound, "name = ?", string(name))
	if err != nil {
		return domain.ActuatorModel{}, err
	}
	return actuatorModelFromRow(row)
}

func (r *gormActuatorModelRepository) FindAll(ctx context.Context) ([]domain.ActuatorModel, error) {
	return list(ctx, r.db.Order("name"), actuatorModelFromRow)
}

func (r *gormActuatorModelRepository) FindByTypeID(ctx context.Context, typeID domain.ActuatorTypeID) ([]domain.ActuatorModel, error) {
	return list(ctx, r.db.Where("type_id = ?", string(typeID)).Order("name"), actuatorModelFromRow)
}

func (r *gormActuatorModelRepository) Exists(ctx context.Context, name domain.ModelName) (bool, error) {
	return exists[model.ActuatorModel](ctx, r.db, "name", string(name))
}

func actuatorModelFromRow(row model.ActuatorModel) (domain.ActuatorModel, error) {
	return domain.NewActuatorModel(row.Name, row.TypeID, row.Description)
}
