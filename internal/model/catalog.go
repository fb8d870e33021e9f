package model

// DeviceType is a catalog entry classifying devices.
type DeviceType struct {
	ID          string `gorm:"primaryKey;size:64"`
	Description string `gorm:"size:256;not null"`
}

// SensorType is a catalog entry describing a measured quantity.
type SensorType struct {
	ID          string `gorm:"primaryKey;size:64"`
	Description string `gorm:"size:256;not null"`
	Unit        string `gorm:"size:32;not null"`
}

// SensorModel is a catalog entry for a sensor product.
type SensorModel struct {
	Name        string `gorm:"primaryKey;size:128"`
	TypeID      string `gorm:"size:64;index;not null"`
	Description string `gorm:"size:256"`
}

// ActuatorType is a catalog entry describing a controlled quantity.
type ActuatorType struct {
	ID          string `gorm:"primaryKey;size:64"`
	Description string `gorm:"size:256;not null"`
}

// ActuatorModel is a catalog entry for an actuator product.
type ActuatorModel struct {
	Name        string `gorm:"primaryKey;size:128"`
	TypeID      string `gorm:"size:64;index;not null"`
	Description string `gorm:"size:256"`
}
