package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports"
)

type PaymentService struct {
	store ports.Store[domain.Payment]
}

func NewPaymentService(store ports.Store[domain.Payment]) *PaymentService {
	return &PaymentService{store: store}
}

func (s *PaymentService) Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: invalid payment amount", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.PaymentStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}

	payment := &domain.Payment{
		ID:     uuid.New().String(),
		Amount: input.Amount,
		Status: status,
	}

	if err := s.store.Insert(ctx, payment.ID, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Payment", id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) List(ctx context.Context) ([]*domain.Payment, error) {
	return s.store.List(ctx)
}
