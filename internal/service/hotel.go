package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports"
)

type HotelService struct {
	store ports.Store[domain.Hotel]
}

func NewHotelService(store ports.Store[domain.Hotel]) *HotelService {
	return &HotelService{store: store}
}

func (s *HotelService) Create(ctx context.Context, input domain.CreateHotelInput) (*domain.Hotel, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.CheckInDate.IsZero() || input.CheckOutDate.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", domain.ErrValidation)
	}

	hotel := &domain.Hotel{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Location:      input.Location,
		CheckInDate:   input.CheckInDate,
		CheckOutDate:  input.CheckOutDate,
		PricePerNight: input.PricePerNight,
	}

	if err := s.store.Insert(ctx, hotel.ID, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	return hotel, nil
}

func (s *HotelService) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	hotel, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Hotel", id)
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	return hotel, nil
}

func (s *HotelService) List(ctx context.Context) ([]*domain.Hotel, error) {
	return s.store.List(ctx)
}
