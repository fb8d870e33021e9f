package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/store"
)

// DeviceService manages devices and their lifecycle.
type DeviceService struct {
	rooms       store.RoomRepository
	deviceTypes store.DeviceTypeRepository
	devices     store.DeviceRepository
}

func NewDeviceService(rooms store.RoomRepository, deviceTypes store.DeviceTypeRepository, devices store.DeviceRepository) *DeviceService {
	return &DeviceService{rooms: rooms, deviceTypes: deviceTypes, devices: devices}
}

// AddDevice creates an active device of a known type in an existing room.
func (s *DeviceService) AddDevice(ctx context.Context, roomID domain.RoomID, name string, typeID domain.DeviceTypeID) (domain.Device, error) {
	if err := requireExists(ctx, s.rooms.Exists, roomID, domain.ErrRoomNotFound); err != nil {
		return domain.Device{}, err
	}
	if err := requireExists(ctx, s.deviceTypes.Exists, typeID, domain.ErrDeviceTypeNotFound); err != nil {
		return domain.Device{}, err
	}
	d, err := domain.NewDevice(name, typeID, roomID)
	if err != nil {
		return domain.Device{}, err
	}
	if err := s.devices.Save(ctx, d); err != nil {
		return domain.Device{}, err
	}
	log.Info().Str("device_id", d.ID.String()).Str("room_id", roomID.String()).Str("type_id", typeID.String()).Msg("device added")
	return d, nil
}

func (s *DeviceService) GetDevice(ctx context.Context, id domain.DeviceID) (domain.Device, error) {
	return s.devices.FindByID(ctx, id)
}

func (s *DeviceService) ListDevices(ctx context.Context) ([]domain.Device, error) {
	return s.devices.FindAll(ctx)
}

// ListDevicesByRoom fails with ErrRoomNotFound for an unknown room.
func (s *DeviceService) ListDevicesByRoom(ctx context.Context, roomID domain.RoomID) ([]domain.Device, error) {
	if err := requireExists(ctx, s.rooms.Exists, roomID, domain.ErrRoomNotFound); err != nil {
		return nil, err
	}
	return s.devices.FindByRoomID(ctx, roomID)
}

// ListDevicesByType fails with ErrDeviceTypeNotFound for an unknown type.
func (s *DeviceService) ListDevicesByType(ctx context.Context, typeID domain.DeviceTypeID) ([]domain.Device, error) {
	if err := requireExists(ctx, s.deviceTypes.Exists, typeID, domain.ErrDeviceTypeNotFound); err != nil {
		return nil, err
	}
	return s.devices.FindByTypeID(ctx, typeID)
}

// GroupDevicesByType returns every device keyed by its type. Types without
// devices are absent from the map.
func (s *DeviceService) GroupDevicesByType(ctx context.Context) (map[domain.DeviceTypeID][]domain.Device, error) {
	devices, err := s.devices.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[domain.DeviceTypeID][]domain.Device)
	for _, d := range devices {
		grouped[d.TypeID] = append(grouped[d.TypeID], d)
	}
	return grouped, nil
}

// DeactivateDevice switches an active device off for good. A second call
// fails with ErrDeviceAlreadyInactive.
func (s *DeviceService) DeactivateDevice(ctx context.Context, id domain.DeviceID) (domain.Device, error) {
	d, err := s.devices.FindByID(ctx, id)
	if err != nil {
		return domain.Device{}, err
	}
	if err := d.Deactivate(); err != nil {
		return domain.Device{}, err
	}
	if err := s.devices.Save(ctx, d); err != nil {
		return domain.Device{}, err
	}
	log.Info().Str("device_id", id.String()).Msg("device deactivated")
	return d, nil
}
