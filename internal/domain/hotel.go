package domain

import "time"

type Hotel struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	PricePerNight float64   `json:"price_per_night"`
}

type CreateHotelInput struct {
	Name          string
	Location      string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	PricePerNight float64
}
