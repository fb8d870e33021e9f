// Package service implements the use cases of the smart-home backend on top
// of the repositories in package store.
package service

import (
	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/store"
)

// Services bundles every use-case service for the HTTP and ingest layers.
type Services struct {
	Houses    *HouseService
	Rooms     *RoomService
	Devices   *DeviceService
	Sensors   *SensorService
	Actuators *ActuatorService
	Catalog   *CatalogService
	Readings  *ReadingService
}

// New wires the services to repos. sink and m may be nil.
func New(repos *store.Repositories, sink ReadingSink, m *metrics.Metrics) *Services {
	return &Services{
		Houses:    NewHouseService(repos.Houses),
		Rooms:     NewRoomService(repos.Houses, repos.Rooms),
		Devices:   NewDeviceService(repos.Rooms, repos.DeviceTypes, repos.Devices),
		Sensors:   NewSensorService(repos.Devices, repos.SensorModels, repos.Sensors),
		Actuators: NewActuatorService(repos.Devices, repos.ActuatorModels, repos.Actuators),
		Catalog:   NewCatalogService(repos),
		Readings:  NewReadingService(repos.Devices, repos.Sensors, repos.Readings, sink, m),
	}
}
