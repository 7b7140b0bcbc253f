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

func TestBookingService_Create_DefaultsToPending(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	tripID := "t1"
	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		TripID: &tripID,
		UserID: "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_KeepsSuppliedStatus(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1",
		Status: domain.BookingStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_UnknownStatus(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		UserID: "u1",
		Status: "paused",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_MissingUser(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	stored := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	store.EXPECT().Get(mock.Anything, "b1").Return(stored, nil)
	store.EXPECT().Insert(mock.Anything, "b1", mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	booking, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	stored := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}
	store.EXPECT().Get(mock.Anything, "b1").Return(stored, nil)
	store.EXPECT().Insert(mock.Anything, "b1", mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return()

	booking, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	store := mocks.NewMockStore[domain.Booking](t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(store, notifier, newTestLogger(t))

	store.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Booking with id missing not found")
}
