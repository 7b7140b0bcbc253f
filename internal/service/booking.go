package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports"
)

type BookingService struct {
	store    ports.Store[domain.Booking]
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewBookingService(
	store ports.Store[domain.Booking],
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		TripID:    input.TripID,
		HotelID:   input.HotelID,
		UserID:    input.UserID,
		PaymentID: input.PaymentID,
		Status:    status,
	}

	if err := s.store.Insert(ctx, booking.ID, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
		logger.String("status", string(booking.Status)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Booking", id)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.store.List(ctx)
}

// Cancel marks the booking cancelled and stores it back. Cancelling an
// already cancelled booking is a no-op that still succeeds.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Booking", id)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	booking.Status = domain.BookingStatusCancelled
	if err = s.store.Insert(ctx, booking.ID, booking); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}
