package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// RoomRepository persists rooms.
type RoomRepository interface {
	Save(ctx context.Context, room domain.Room) error
	FindByID(ctx context.Context, id domain.RoomID) (domain.Room, error)
	FindAll(ctx context.Context) ([]domain.Room, error)
	FindByHouseID(ctx context.Context, houseID domain.HouseID) ([]domain.Room, error)
	Exists(ctx context.Context, id domain.RoomID) (bool, error)
}

type gormRoomRepository struct {
	db *gorm.DB
}

func (r *gormRoomRepository) Save(ctx context.Context, room domain.Room) error {
	row := model.Room{
		ID:      string(room.ID),
		Name:    string(room.Name),
		HouseID: string(room.HouseID),
		Floor:   int(room.Floor),
		Width:   room.Dimensions.Width,
		Height:  room.Dimensions.Height,
		Length:  room.Dimensions.Length,
	}
	if err := upsert(ctx, r.db, &row); err != nil {
		return fmt.Errorf("failed to save room %s: %w", room.ID, err)
	}
	return nil
}

func (r *gormRoomRepository) FindByID(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	row, err := take[model.Room](ctx, r.db, domain.ErrRoomNotFound, "id = ?", string(id))
	if err != nil {
		return domain.Room{}, err
	}
	return roomFromRow(row)
}

func (r *gormRoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	return list(ctx, r.db.Order("created_at, id"), roomFromRow)
}

func (r *gormRoomRepository) FindByHouseID(ctx context.Context, houseID domain.HouseID) ([]domain.Room, error) {
	return list(ctx, r.db.Where("house_id = ?", string(houseID)).Order("floor, name"), roomFromRow)
}

func (r *gormRoomRepository) Exists(ctx context.Context, id domain.RoomID) (bool, error) {
	return exists[model.Room](ctx, r.db, "id", string(id))
}

func roomFromRow(row model.Room) (domain.Room, error) {
	return domain.RestoreRoom(domain.RoomID(row.ID), row.Name, domain.HouseID(row.HouseID), row.Floor, row.Width, row.Height, row.Length)
}
