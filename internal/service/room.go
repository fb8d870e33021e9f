package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/store"
)

// RoomService manages the rooms of houses.
type RoomService struct {
	houses store.HouseRepository
	rooms  store.RoomRepository
}

func NewRoomService(houses store.HouseRepository, rooms store.RoomRepository) *RoomService {
	return &RoomService{houses: houses, rooms: rooms}
}

// AddRoom creates a room in an existing house.
func (s *RoomService) AddRoom(ctx context.Context, houseID domain.HouseID, name string, floor int, width, height, length float64) (domain.Room, error) {
	if err := requireExists(ctx, s.houses.Exists, houseID, domain.ErrHouseNotFound); err != nil {
		return domain.Room{}, err
	}
	room, err := domain.NewRoom(name, houseID, floor, width, height, length)
	if err != nil {
		return domain.Room{}, err
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		return domain.Room{}, err
	}
	log.Info().Str("room_id", room.ID.String()).Str("house_id", houseID.String()).Msg("room added")
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.FindAll(ctx)
}

// ListRoomsByHouse fails with ErrHouseNotFound for an unknown house.
func (s *RoomService) ListRoomsByHouse(ctx context.Context, houseID domain.HouseID) ([]domain.Room, error) {
	if err := requireExists(ctx, s.houses.Exists, houseID, domain.ErrHouseNotFound); err != nil {
		return nil, err
	}
	return s.rooms.FindByHouseID(ctx, houseID)
}

// requireExists turns a negative existence check into notFound.
func requireExists[ID any](ctx context.Context, exists func(context.Context, ID) (bool, error), id ID, notFound error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
