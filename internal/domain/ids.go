package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Identities are plain strings underneath; the distinct types keep a RoomID
// from being passed where a DeviceID is expected.
type (
	HouseID        string
	RoomID         string
	DeviceID       string
	DeviceTypeID   string
	SensorID       string
	SensorTypeID   string
	ActuatorID     string
	ActuatorTypeID string
	ReadingID      string
	ModelName      string
)

type identity interface {
	~string
}

// ParseID trims raw and rejects blank input.
func ParseID[T identity](raw string) (T, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBlankID
	}
	return T(s), nil
}

// ParseModelName trims raw and rejects blank input.
func ParseModelName(raw string) (ModelName, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBlankModelName
	}
	return ModelName(s), nil
}

func newID[T identity]() T {
	return T(uuid.NewString())
}

func (id HouseID) String() string        { return string(id) }
func (id RoomID) String() string         { return string(id) }
func (id DeviceID) String() string       { return string(id) }
func (id DeviceTypeID) String() string   { return string(id) }
func (id SensorID) String() string       { return string(id) }
func (id SensorTypeID) String() string   { return string(id) }
func (id ActuatorID) String() string     { return string(id) }
func (id ActuatorTypeID) String() string { return string(id) }
func (id ReadingID) String() string      { return string(id) }
func (n ModelName) String() string       { return string(n) }
