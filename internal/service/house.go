package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/store"
)

// HouseService manages houses.
type HouseService struct {
	houses store.HouseRepository
}

func NewHouseService(houses store.HouseRepository) *HouseService {
	return &HouseService{houses: houses}
}

// CreateHouse validates and stores a new house.
func (s *HouseService) CreateHouse(ctx context.Context, name string, address domain.Address, gps domain.GPS) (domain.House, error) {
	h, err := domain.NewHouse(name, address, gps)
	if err != nil {
		return domain.House{}, err
	}
	if err := s.houses.Save(ctx, h); err != nil {
		return domain.House{}, err
	}
	log.Info().Str("house_id", h.ID.String()).Str("name", h.Name.String()).Msg("house created")
	return h, nil
}

func (s *HouseService) GetHouse(ctx context.Context, id domain.HouseID) (domain.House, error) {
	return s.houses.FindByID(ctx, id)
}

func (s *HouseService) ListHouses(ctx context.Context) ([]domain.House, error) {
	return s.houses.FindAll(ctx)
}

// ConfigureLocation replaces the address and GPS position of an existing house.
func (s *HouseService) ConfigureLocation(ctx context.Context, id domain.HouseID, address domain.Address, gps domain.GPS) (domain.House, error) {
	h, err := s.houses.FindByID(ctx, id)
	if err != nil {
		return domain.House{}, err
	}
	if err := h.Relocate(address, gps); err != nil {
		return domain.House{}, err
	}
	if err := s.houses.Save(ctx, h); err != nil {
		return domain.House{}, err
	}
	return h, nil
}
