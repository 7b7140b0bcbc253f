package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports/mocks"
)

func TestPaymentService_Create(t *testing.T) {
	store := mocks.NewMockStore[domain.Payment](t)
	svc := NewPaymentService(store)

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	payment, err := svc.Create(context.Background(), domain.CreatePaymentInput{Amount: 150.50})

	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, 150.50, payment.Amount)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
}

func TestPaymentService_Create_InvalidAmount(t *testing.T) {
	store := mocks.NewMockStore[domain.Payment](t)
	svc := NewPaymentService(store)

	for _, amount := range []float64{0, -5} {
		_, err := svc.Create(context.Background(), domain.CreatePaymentInput{Amount: amount})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorContains(t, err, "invalid payment amount")
	}
}

func TestPaymentService_Create_UnknownStatus(t *testing.T) {
	store := mocks.NewMockStore[domain.Payment](t)
	svc := NewPaymentService(store)

	_, err := svc.Create(context.Background(), domain.CreatePaymentInput{
		Amount: 10,
		Status: "refunded",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_GetByID_NotFound(t *testing.T) {
	store := mocks.NewMockStore[domain.Payment](t)
	svc := NewPaymentService(store)

	store.EXPECT().Get(mock.Anything, "p404").Return(nil, domain.ErrNotFound)

	_, err := svc.GetByID(context.Background(), "p404")

	require.Error(t, err)
	assert.EqualError(t, err, "Payment with id p404 not found")
}
