package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/model"
)

// HouseRepository persists houses.
type HouseRepository interface {
	Save(ctx context.Context, h domain.House) error
	FindByID(ctx context.Context, id domain.HouseID) (domain.House, error)
	FindAll(ctx context.Context) ([]domain.House, error)
	Exists(ctx context.Context, id domain.HouseID) (bool, error)
}

type gormHouseRepository struct {
	db *gorm.DB
}

func (r *gormHouseRepository) Save(ctx context.Context, h domain.House) error {
	row := houseToRow(h)
	if err := upsert(ctx, r.db, &row); err != nil {
		return fmt.Errorf("failed to save house %s: %w", h.ID, err)
	}
	return nil
}

func (r *gormHouseRepository) FindByID(ctx context.Context, id domain.HouseID) (domain.House, error) {
	row, err := take[model.House](ctx, r.db, domain.ErrHouseNotFound, "id = ?", string(id))
	if err != nil {
		return domain.House{}, err
	}
	return houseFromRow(row)
}

func (r *gormHouseRepository) FindAll(ctx context.Context) ([]domain.House, error) {
	return list(ctx, r.db.Order("name"), houseFromRow)
}

func (r *gormHouseRepository) Exists(ctx context.Context, id domain.HouseID) (bool, error) {
	return exists[model.House](ctx, r.db, "id", string(id))
}

func houseToRow(h domain.House) model.House {
	return model.House{
		ID:         string(h.ID),
		Name:       string(h.Name),
		Street:     h.Address.Street,
		DoorNumber: h.Address.DoorNumber,
		PostalCode: h.Address.PostalCode,
		City:       h.Address.City,
		Country:    h.Address.Country,
		Latitude:   h.GPS.Latitude,
		Longitude:  h.GPS.Longitude,
	}
}

func houseFromRow(row model.House) (domain.House, error) {
	return domain.RestoreHouse(
		domain.HouseID(row.ID),
		row.Name,
		domain.Address{
			Street:     row.Street,
			DoorNumber: row.DoorNumber,
			PostalCode: row.PostalCode,
			City:       row.City,
			Country:    row.Country,
		},
		domain.GPS{Latitude: row.Latitude, Longitude: row.Longitude},
	)
}
