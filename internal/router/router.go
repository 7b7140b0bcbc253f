package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateTrip(c *ginext.Context)
	GetTrip(c *ginext.Context)
	ListTrips(c *ginext.Context)
	CreateHotel(c *ginext.Context)
	GetHotel(c *ginext.Context)
	ListHotels(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreatePayment(c *ginext.Context)
	GetPayment(c *ginext.Context)
	ListPayments(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	Login(c *ginext.Context)
}

// InitRouter wires the routes. adminOnly guards the admin-scoped writes
// and the whole user directory.
func InitRouter(mode string, h Handler, adminOnly ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Trips
	router.POST("/trips", adminOnly, h.CreateTrip)
	router.GET("/trips", h.ListTrips)
	router.GET("/trips/:id", h.GetTrip)

	// Hotels
	router.POST("/hotels", adminOnly, h.CreateHotel)
	router.GET("/hotels", h.ListHotels)
	router.GET("/hotels/:id", h.GetHotel)

	// Bookings
	router.POST("/bookings", h.CreateBooking)
	router.GET("/bookings", h.ListBookings)
	router.GET("/bookings/:id", h.GetBooking)
	router.PUT("/bookings/:id/cancel", h.CancelBooking)

	// Payments
	router.POST("/payments", h.CreatePayment)
	router.GET("/payments", h.ListPayments)
	router.GET("/payments/:id", h.GetPayment)

	// Users
	router.POST("/users", adminOnly, h.CreateUser)
	router.GET("/users", adminOnly, h.ListUsers)
	router.GET("/users/:id", adminOnly, h.GetUser)

	// Auth
	router.POST("/login", h.Login)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
