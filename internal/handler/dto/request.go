package dto

type CreateTripRequest struct {
	Destination   string  `json:"destination" binding:"required"`
	DepartureDate string  `json:"departure_date" binding:"required"`
	ReturnDate    string  `json:"return_date" binding:"required"`
	Price         float64 `json:"price"`
}

type CreateHotelRequest struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	CheckInDate   string  `json:"check_in_date" binding:"required"`
	CheckOutDate  string  `json:"check_out_date" binding:"required"`
	PricePerNight float64 `json:"price_per_night"`
}

type CreateBookingRequest struct {
	TripID    *string `json:"trip_id"`
	HotelID   *string `json:"hotel_id"`
	UserID    string  `json:"user_id" binding:"required"`
	PaymentID *string `json:"payment_id"`
	Status    string  `json:"status"`
}

type CreatePaymentRequest struct {
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
