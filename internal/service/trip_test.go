package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestTripService_Create(t *testing.T) {
	store := mocks.NewMockStore[domain.Trip](t)
	svc := NewTripService(store)

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	trip, err := svc.Create(context.Background(), domain.CreateTripInput{
		Destination:   "Lisbon",
		DepartureDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Price:         499.90,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "Lisbon", trip.Destination)
	assert.Equal(t, 499.90, trip.Price)
}

func TestTripService_Create_MissingDestination(t *testing.T) {
	store := mocks.NewMockStore[domain.Trip](t)
	svc := NewTripService(store)

	_, err := svc.Create(context.Background(), domain.CreateTripInput{
		DepartureDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_StoreError(t *testing.T) {
	store := mocks.NewMockStore[domain.Trip](t)
	svc := NewTripService(store)

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateTripInput{
		Destination:   "Lisbon",
		DepartureDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	store := mocks.NewMockStore[domain.Trip](t)
	svc := NewTripService(store)

	store.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Trip with id missing not found")
}

func TestTripService_List(t *testing.T) {
	store := mocks.NewMockStore[domain.Trip](t)
	svc := NewTripService(store)

	trips := []*domain.Trip{{ID: "t1"}, {ID: "t2"}}
	store.EXPECT().List(mock.Anything).Return(trips, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
