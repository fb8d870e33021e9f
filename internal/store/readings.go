package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// ReadingRepository persists sensor readings.
type ReadingRepository interface {
	Save(ctx context.Context, r domain.Reading) error
	FindBySensorID(ctx context.Context, sensorID domain.SensorID) ([]domain.Reading, error)
	// FindBySensorIDInPeriod returns readings with start <= recorded_at <= end,
	// oldest first.
	FindBySensorIDInPeriod(ctx context.Context, sensorID domain.SensorID, start, end time.Time) ([]domain.Reading, error)
}

type gormReadingRepository struct {
	db *gorm.DB
}

func (r *gormReadingRepository) Save(ctx context.Context, reading domain.Reading) error {
	row := model.Reading{
		ID:         string(reading.ID),
		SensorID:   string(reading.SensorID),
		Value:      string(reading.Value),
		RecordedAt: reading.TimeStamp.Time(),
	}
	// Readings are append-only.
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save reading for sensor %s: %w", reading.SensorID, err)
	}
	return nil
}

func (r *gormReadingRepository) FindBySensorID(ctx context.Context, sensorID domain.SensorID) ([]domain.Reading, error) {
	q := r.db.Where("sensor_id = ?", string(sensorID)).Order("recorded_at")
	return list(ctx, q, readingFromRow)
}

func (r *gormReadingRepository) FindBySensorIDInPeriod(ctx context.Context, sensorID domain.SensorID, start, end time.Time) ([]domain.Reading, error) {
	q := r.db.
		Where("sensor_id = ? AND recorded_at >= ? AND recorded_at <= ?", string(sensorID), start.UTC(), end.UTC()).
		Order("recorded_at")
	return list(ctx, q, readingFromRow)
}

func readingFromRow(row model.Reading) (domain.Reading, error) {
	// A stored reading was validated when it was written; its own time is the
	// reference clock here.
	return domain.RestoreReading(domain.ReadingID(row.ID), domain.SensorID(row.SensorID), row.Value, row.RecordedAt, row.RecordedAt)
}
