package ports

import (
	"context"

	"travelbooker/internal/domain"
)

// BookingNotifier delivers booking lifecycle notifications. Implementations
// must not block the caller on delivery failures.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking)
}
