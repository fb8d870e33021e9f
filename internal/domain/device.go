package domain

// Device lives in a room and carries sensors and actuators. A device starts
// active and can only ever be deactivated.
type Device struct {
	ID     DeviceID
	Name   Name
	TypeID DeviceTypeID
	RoomID RoomID
	Active bool
}

// NewDevice creates an active device with a fresh identity.
func NewDevice(name string, typeID DeviceTypeID, roomID RoomID) (Device, error) {
	return RestoreDevice(newID[DeviceID](), name, typeID, roomID, true)
}

// RestoreDevice rebuilds a device with a known identity and status.
func RestoreDevice(id DeviceID, name string, typeID DeviceTypeID, roomID RoomID, active bool) (Device, error) {
	if id == "" || typeID == "" || roomID == "" {
		return Device{}, ErrBlankID
	}
	n, err := NewName(name)
	if err != nil {
		return Device{}, err
	}
	return Device{ID: id, Name: n, TypeID: typeID, RoomID: roomID, Active: active}, nil
}

// Deactivate flips an active device to inactive. There is no way back.
func (d *Device) Deactivate() error {
	if !d.Active {
		return ErrDeviceAlreadyInactive
	}
	d.Active = false
	return nil
}
