package domain

import "strings"

// DeviceType classifies devices, e.g. "Thermostat" or "Blind".
type DeviceType struct {
	ID          DeviceTypeID
	Description string
}

// SensorType describes what a sensor measures and in which unit.
type SensorType struct {
	ID          SensorTypeID
	Description string
	Unit        Unit
}

// SensorModel is a concrete sensor product. Sensors reference it by name.
type SensorModel struct {
	Name        ModelName
	TypeID      SensorTypeID
	Description string
}

// ActuatorType describes what an actuator controls.
type ActuatorType struct {
	ID          ActuatorTypeID
	Description string
}

// ActuatorModel is a concrete actuator product. Actuators reference it by name.
type ActuatorModel struct {
	Name        ModelName
	TypeID      ActuatorTypeID
	Description string
}

func description(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBlankDescription
	}
	return s, nil
}

// NewDeviceType validates the catalog entry.
func NewDeviceType(id, desc string) (DeviceType, error) {
	typeID, err := ParseID[DeviceTypeID](id)
	if err != nil {
		return DeviceType{}, err
	}
	d, err := description(desc)
	if err != nil {
		return DeviceType{}, err
	}
	return DeviceType{ID: typeID, Description: d}, nil
}

// NewSensorType validates the catalog entry.
func NewSensorType(id, desc, unit string) (SensorType, error) {
	typeID, err := ParseID[SensorTypeID](id)
	if err != nil {
		return SensorType{}, err
	}
	d, err := description(desc)
	if err != nil {
		return SensorType{}, err
	}
	u, err := NewUnit(unit)
	if err != nil {
		return SensorType{}, err
	}
	return SensorType{ID: typeID, Description: d, Unit: u}, nil
}

// NewSensorModel validates the catalog entry.
func NewSensorModel(name, typeID, desc string) (SensorModel, error) {
	n, err := ParseModelName(name)
	if err != nil {
		return SensorModel{}, err
	}
	t, err := ParseID[SensorTypeID](typeID)
	if err != nil {
		return SensorModel{}, err
	}
	return SensorModel{Name: n, TypeID: t, Description: strings.TrimSpace(desc)}, nil
}

// NewActuatorType validates the catalog entry.
func NewActuatorType(id, desc string) (ActuatorType, error) {
	typeID, err := ParseID[ActuatorTypeID](id)
	if err != nil {
		return ActuatorType{}, err
	}
	d, err := description(desc)
	if err != nil {
		return ActuatorType{}, err
	}
	return ActuatorType{ID: typeID, Description: d}, nil
}

// NewActuatorModel validates the catalog entry.
func NewActuatorModel(name, typeID, desc string) (ActuatorModel, error) {
	n, err := ParseModelName(name)
	if err != nil {
		return ActuatorModel{}, err
	}
	t, err := ParseID[ActuatorTypeID](typeID)
	if err != nil {
		return ActuatorModel{}, err
	}
	return ActuatorModel{Name: n, TypeID: t, Description: strings.TrimSpace(desc)}, nil
}
