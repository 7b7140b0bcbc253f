package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// A booking may reference a trip, a hotel and a payment by id. None of the
// references are checked against the other stores.
type Booking struct {
	ID        string        `json:"id"`
	TripID    *string       `json:"trip_id,omitempty"`
	HotelID   *string       `json:"hotel_id,omitempty"`
	UserID    string        `json:"user_id"`
	PaymentID *string       `json:"payment_id,omitempty"`
	Status    BookingStatus `json:"status"`
}

type CreateBookingInput struct {
	TripID    *string
	HotelID   *string
	UserID    string
	PaymentID *string
	Status    BookingStatus
}
