package domain

// Actuator is attached to one device and built from one actuator model.
// Limits is set only for actuators that accept a bounded set value.
type Actuator struct {
	ID        ActuatorID
	Name      Name
	ModelName ModelName
	DeviceID  DeviceID
	Limits    *ActuatorLimits
}

// NewActuator creates an actuator with a fresh identity.
func NewActuator(name string, modelName ModelName, deviceID DeviceID, limits *ActuatorLimits) (Actuator, error) {
	return RestoreActuator(newID[ActuatorID](), name, modelName, deviceID, limits)
}

// RestoreActuator rebuilds an actuator with a known identity.
func RestoreActuator(id ActuatorID, name string, modelName ModelName, deviceID DeviceID, limits *ActuatorLimits) (Actuator, error) {
	if id == "" || deviceID == "" {
		return Actuator{}, ErrBlankID
	}
	if modelName == "" {
		return Actuator{}, ErrBlankModelName
	}
	n, err := NewName(name)
	if err != nil {
		return Actuator{}, err
	}
	a := Actuator{ID: id, Name: n, ModelName: modelName, DeviceID: deviceID}
	if limits != nil {
		l, err := NewActuatorLimits(limits.Lower, limits.Upper)
		if err != nil {
			return Actuator{}, err
		}
		a.Limits = &l
	}
	return a, nil
}
