package model

import "time"

// Reading is one value reported by a sensor. Queries always filter by sensor
// and time range, hence the composite index.
type Reading struct {
	ID         string    `gorm:"primaryKey;size:64"`
	SensorID   string    `gorm:"size:64;not null;index:idx_reading_sensor_time,priority:1"`
	Value      string    `gorm:"size:256;not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_reading_sensor_time,priority:2"`
}
