package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports/mocks"
)

func TestHotelService_Create(t *testing.T) {
	store := mocks.NewMockStore[domain.Hotel](t)
	svc := NewHotelService(store)

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	hotel, err := svc.Create(context.Background(), domain.CreateHotelInput{
		Name:          "Grand Plaza",
		Location:      "Lisbon",
		CheckInDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		PricePerNight: 120,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, hotel.ID)
	assert.Equal(t, "Grand Plaza", hotel.Name)
}

func TestHotelService_Create_MissingName(t *testing.T) {
	store := mocks.NewMockStore[domain.Hotel](t)
	svc := NewHotelService(store)

	_, err := svc.Create(context.Background(), domain.CreateHotelInput{
		Location:     "Lisbon",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHotelService_GetByID_NotFound(t *testing.T) {
	store := mocks.NewMockStore[domain.Hotel](t)
	svc := NewHotelService(store)

	store.EXPECT().Get(mock.Anything, "h404").Return(nil, domain.ErrNotFound)

	_, err := svc.GetByID(context.Background(), "h404")

	require.Error(t, err)
	assert.EqualError(t, err, "Hotel with id h404 not found")
}
