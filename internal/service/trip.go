package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports"
)

type TripService struct {
	store ports.Store[domain.Trip]
}

func NewTripService(store ports.Store[domain.Trip]) *TripService {
	return &TripService{store: store}
}

func (s *TripService) Create(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error) {
	if input.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if input.DepartureDate.IsZero() || input.ReturnDate.IsZero() {
		return nil, fmt.Errorf("%w: departure and return dates are required", domain.ErrValidation)
	}

	trip := &domain.Trip{
		ID:            uuid.New().String(),
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		Price:         input.Price,
	}

	if err := s.store.Insert(ctx, trip.ID, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return trip, nil
}

func (s *TripService) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	trip, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Trip", id)
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func (s *TripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.store.List(ctx)
}
