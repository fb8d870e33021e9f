package domain

// Sensor is attached to one device and built from one sensor model.
type Sensor struct {
	ID        SensorID
	Name      Name
	ModelName ModelName
	DeviceID  DeviceID
}

// NewSensor creates a sensor with a fresh identity.
func NewSensor(name string, modelName ModelName, deviceID DeviceID) (Sensor, error) {
	return RestoreSensor(newID[SensorID](), name, modelName, deviceID)
}

// RestoreSensor rebuilds a sensor with a known identity.
func RestoreSensor(id SensorID, name string, modelName ModelName, deviceID DeviceID) (Sensor, error) {
	if id == "" || deviceID == "" {
		return Sensor{}, ErrBlankID
	}
	if modelName == "" {
		return Sensor{}, ErrBlankModelName
	}
	n, err := NewName(name)
	if err != nil {
		return Sensor{}, err
	}
	return Sensor{ID: id, Name: n, ModelName: modelName, DeviceID: deviceID}, nil
}
