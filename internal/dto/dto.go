// Package dto holds the JSON representations exchanged over HTTP and the
// mappers between them and the domain entities.
package dto

// HouseDTO is the JSON form of a house.
type HouseDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	DoorNumber string  `json:"doorNumber"`
	PostalCode string  `json:"postalCode"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Links      *Links  `json:"_links,omitempty"`
}

// LocationRequest sets the address and coordinates of a house.
type LocationRequest struct {
	Street     string  `json:"street"`
	DoorNumber string  `json:"doorNumber"`
	PostalCode string  `json:"postalCode"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// CreateHouseRequest is the body of POST /houses.
type CreateHouseRequest struct {
	Name string `json:"name"`
	LocationRequest
}

// RoomDTO is the JSON form of a room.
type RoomDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	HouseID string  `json:"houseId"`
	Floor   int     `json:"floor"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Length  float64 `json:"length"`
	Links   *Links  `json:"_links,omitempty"`
}

// CreateRoomRequest is the body of POST /rooms/house/:houseId.
type CreateRoomRequest struct {
	Name   string  `json:"name"`
	Floor  int     `json:"floor"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// DeviceDTO is the JSON form of a device.
type DeviceDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TypeID string `json:"typeId"`
	RoomID string `json:"roomId"`
	Active bool   `json:"active"`
	Links  *Links `json:"_links,omitempty"`
}

// CreateDeviceRequest is the body of POST /devices/room/:roomId.
type CreateDeviceRequest struct {
	Name   string `json:"name"`
	TypeID string `json:"typeId"`
}

// DeviceTypeDTO is the JSON form of a device type.
type DeviceTypeDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Links       *Links `json:"_links,omitempty"`
}

// SensorTypeDTO is the JSON form of a sensor type.
type SensorTypeDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Links       *Links `json:"_links,omitempty"`
}

// ModelDTO is the JSON form of a sensor or actuator model.
type ModelDTO struct {
	Name        string `json:"name"`
	TypeID      string `json:"typeId"`
	Description string `json:"description,omitempty"`
	Links       *Links `json:"_links,omitempty"`
}

// ActuatorTypeDTO is the JSON form of an actuator type.
type ActuatorTypeDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Links       *Links `json:"_links,omitempty"`
}

// SensorDTO is the JSON form of a sensor.
type SensorDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ModelName string `json:"modelName"`
	DeviceID  string `json:"deviceId"`
	Links     *Links `json:"_links,omitempty"`
}

// CreateSensorRequest is the body of POST /sensors/device/:deviceId.
type CreateSensorRequest struct {
	Name      string `json:"name"`
	ModelName string `json:"modelName"`
}

// ActuatorDTO is the JSON form of an actuator. The limits are both present or
// both absent.
type ActuatorDTO struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ModelName  string   `json:"modelName"`
	DeviceID   string   `json:"deviceId"`
	LowerLimit *float64 `json:"lowerLimit,omitempty"`
	UpperLimit *float64 `json:"upperLimit,omitempty"`
	Links      *Links   `json:"_links,omitempty"`
}

// CreateActuatorRequest is the body of POST /actuators/device/:deviceId.
type CreateActuatorRequest struct {
	Name       string   `json:"name"`
	ModelName  string   `json:"modelName"`
	LowerLimit *float64 `json:"lowerLimit"`
	UpperLimit *float64 `json:"upperLimit"`
}

// ReadingDTO is the JSON form of a sensor reading. Timestamp is RFC 3339 in UTC.
type ReadingDTO struct {
	ID        string `json:"id"`
	SensorID  string `json:"sensorId"`
	Value     string `json:"value"`
	Timestamp string `json:"timestamp"`
	Links     *Links `json:"_links,omitempty"`
}

// CreateReadingRequest is the body of POST /readings/sensor/:sensorId and the
// payload of MQTT sensor reports. An empty timestamp means "now".
type CreateReadingRequest struct {
	Value     string `json:"value"`
	Timestamp string `json:"timestamp,omitempty"`
}
