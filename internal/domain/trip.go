package domain

import "time"

type Trip struct {
	ID            string    `json:"id"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	Price         float64   `json:"price"`
}

type CreateTripInput struct {
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Price         float64
}
