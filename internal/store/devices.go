package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// DeviceRepository persists devices.
type DeviceRepository interface {
	Save(ctx context.Context, d domain.Device) error
	FindByID(ctx context.Context, id domain.DeviceID) (domain.Device, error)
	FindAll(ctx context.Context) ([]domain.Device, error)
	FindByRoomID(ctx context.Context, roomID domain.RoomID) ([]domain.Device, error)
	FindByTypeID(ctx context.Context, typeID domain.DeviceTypeID) ([]domain.Device, error)
	Exists(ctx context.Context, id domain.DeviceID) (bool, error)
}

type gormDeviceRepository struct {
	db *gorm.DB
}

func (r *gormDeviceRepository) Save(ctx context.Context, d domain.Device) error {
	row := model.Device{
		ID:     string(d.ID),
		Name:   string(d.Name),
		TypeID: string(d.TypeID),
		RoomID: string(d.RoomID),
		Active: d.Active,
	}
	if err := upsert(ctx, r.db, &row); err != nil {
		return fmt.Errorf("failed to save device %s: %w", d.ID, err)
	}
	return nil
}

func (r *gormDeviceRepository) FindByID(ctx context.Context, id domain.DeviceID) (domain.Device, error) {
	row, err := take[model.Device](ctx, r.db, domain.ErrDeviceNotFound, "id = ?", string(id))
	if err != nil {
		return domain.Device{}, err
	}
	return deviceFromRow(row)
}

func (r *gormDeviceRepository) FindAll(ctx context.Context) ([]domain.Device, error) {
	return list(ctx, r.db.Order("created_at, id"), deviceFromRow)
}

func (r *gormDeviceRepository) FindByRoomID(ctx context.Context, roomID domain.RoomID) ([]domain.Device, error) {
	return list(ctx, r.db.Where("room_id = ?", string(roomID)).Order("created_at, id"), deviceFromRow)
}

func (r *gormDeviceRepository) FindByTypeID(ctx context.Context, typeID domain.DeviceTypeID) ([]domain.Device, error) {
	return list(ctx, r.db.Where("type_id = ?", string(typeID)).Order("created_at, id"), deviceFromRow)
}

func (r *gormDeviceRepository) Exists(ctx context.Context, id domain.DeviceID) (bool, error) {
	return exists[model.Device](ctx, r.db, "id", string(id))
}

func deviceFromRow(row model.Device) (domain.Device, error) {
	return domain.RestoreDevice(domain.DeviceID(row.ID), row.Name, domain.DeviceTypeID(row.TypeID), domain.RoomID(row.RoomID), row.Active)
}
