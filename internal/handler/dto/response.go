package dto

import (
	"time"

	"travelbooker/internal/domain"
)

type TripResponse struct {
	ID            string  `json:"id"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date"`
	Price         float64 `json:"price"`
}

type HotelResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	PricePerNight float64 `json:"price_per_night"`
}

type BookingResponse struct {
	ID        string  `json:"id"`
	TripID    *string `json:"trip_id,omitempty"`
	HotelID   *string `json:"hotel_id,omitempty"`
	UserID    string  `json:"user_id"`
	PaymentID *string `json:"payment_id,omitempty"`
	Status    string  `json:"status"`
}

type PaymentResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// UserResponse deliberately has no password field.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:            t.ID,
		Destination:   t.Destination,
		DepartureDate: t.DepartureDate.Format(time.RFC3339),
		ReturnDate:    t.ReturnDate.Format(time.RFC3339),
		Price:         t.Price,
	}
}

func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		CheckInDate:   h.CheckInDate.Format(time.RFC3339),
		CheckOutDate:  h.CheckOutDate.Format(time.RFC3339),
		PricePerNight: h.PricePerNight,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		TripID:    b.TripID,
		HotelID:   b.HotelID,
		UserID:    b.UserID,
		PaymentID: b.PaymentID,
		Status:    string(b.Status),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:     p.ID,
		Amount: p.Amount,
		Status: string(p.Status),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}
