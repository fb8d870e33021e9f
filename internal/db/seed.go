package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smarthome-backend/config"
	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// SeedCatalog inserts the configured catalog entries. Existing rows are left
// untouched, so running it on every start is safe. Invalid entries are logged
// and skipped.
func SeedCatalog(ctx context.Context, db *gorm.DB, cat *config.CatalogConfig) error {
	var (
		deviceTypes    []model.DeviceType
		sensorTypes    []model.SensorType
		sensorModels   []model.SensorModel
		actuatorTypes  []model.ActuatorType
		actuatorModels []model.ActuatorModel
	)

	for _, e := range cat.DeviceTypes {
		t, err := domain.NewDeviceType(e.ID, e.Description)
		if err != nil {
			log.Warn().Err(err).Str("id", e.ID).Msg("skipping device type")
			continue
		}
		deviceTypes = append(deviceTypes, model.DeviceType{ID: string(t.ID), Description: t.Description})
	}
	for _, e := range cat.SensorTypes {
		t, err := domain.NewSensorType(e.ID, e.Description, e.Unit)
		if err != nil {
			log.Warn().Err(err).Str("id", e.ID).Msg("skipping sensor type")
			continue
		}
		sensorTypes = append(sensorTypes, model.SensorType{ID: string(t.ID), Description: t.Description, Unit: string(t.Unit)})
	}
	for _, e := range cat.SensorModels {
		m, err := domain.NewSensorModel(e.Name, e.TypeID, e.Description)
		if err != nil {
			log.Warn().Err(err).Str("name", e.Name).Msg("skipping sensor model")
			continue
		}
		sensorModels = append(sensorModels, model.SensorModel{Name: string(m.Name), TypeID: string(m.TypeID), Description: m.Description})
	}
	for _, e := range cat.ActuatorTypes {
		t, err := domain.NewActuatorType(e.ID, e.Description)
		if err != nil {
			log.Warn().Err(err).Str("id", e.ID).Msg("skipping actuator type")
			continue
		}
		actuatorTypes = append(actuatorTypes, model.ActuatorType{ID: string(t.ID), Description: t.Description})
	}
	for _, e := range cat.ActuatorModels {
		m, err := domain.NewActuatorModel(e.Name, e.TypeID, e.Description)
		if err != nil {
			log.Warn().Err(err).Str("name", e.Name).Msg("skipping actuator model")
			continue
		}
		actuatorModels = append(actuatorModels, model.ActuatorModel{Name: string(m.Name), TypeID: string(m.TypeID), Description: m.Description})
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertIgnore(tx, deviceTypes); err != nil {
			return fmt.Errorf("seed device types: %w", err)
		}
		if err := insertIgnore(tx, sensorTypes); err != nil {
			return fmt.Errorf("seed sensor types: %w", err)
		}
		if err := insertIgnore(tx, sensorModels); err != nil {
			return fmt.Errorf("seed sensor models: %w", err)
		}
		if err := insertIgnore(tx, actuatorTypes); err != nil {
			return fmt.Errorf("seed actuator types: %w", err)
		}
		if err := insertIgnore(tx, actuatorModels); err != nil {
			return fmt.Errorf("seed actuator models: %w", err)
		}
		log.Info().
			Int("device_types", len(deviceTypes)).
			Int("sensor_types", len(sensorTypes)).
			Int("sensor_models", len(sensorModels)).
			Int("actuator_types", len(actuatorTypes)).
			Int("actuator_models", len(actuatorModels)).
			Msg("catalog seeded")
		return nil
	})
}

func insertIgnore[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
