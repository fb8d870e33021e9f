package model

import "time"

// Sensor represents a sensor attached to a device.
type Sensor struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:256;not null"`
	ModelName string `gorm:"size:128;not null"`
	DeviceID  string `gorm:"size:64;index;not null"`
	CreatedAt time.Time
}

// Actuator represents an actuator attached to a device. The limit columns are
// both set or both NULL.
type Actuator struct {
	ID         string `gorm:"primaryKey;size:64"`
	Name       string `gorm:"size:256;not null"`
	ModelName  string `gorm:"size:128;not null"`
	DeviceID   string `gorm:"size:64;index;not null"`
	LowerLimit *float64
	UpperLimit *float64
	CreatedAt  time.Time
}
