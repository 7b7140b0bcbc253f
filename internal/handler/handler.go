package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"travelbooker/internal/domain"
	"travelbooker/internal/handler/dto"
)

type TripSvc interface {
	Create(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
}

type HotelSvc interface {
	Create(ctx context.Context, input domain.CreateHotelInput) (*domain.Hotel, error)
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context) ([]*domain.Hotel, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type PaymentSvc interface {
	Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type Handler struct {
	tripService    TripSvc
	hotelService   HotelSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	userService    UserSvc
}

func NewHandler(
	tripService TripSvc,
	hotelService HotelSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		tripService:    tripService,
		hotelService:   hotelService,
		bookingService: bookingService,
		paymentService: paymentService,
		userService:    userService,
	}
}

// Trips

func (h *Handler) CreateTrip(c *ginext.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid departure_date format, expected RFC3339",
		})
		return
	}
	ret, err := time.Parse(time.RFC3339, req.ReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid return_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateTripInput{
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    ret,
		Price:         req.Price,
	}

	trip, err := h.tripService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *Handler) GetTrip(c *ginext.Context) {
	trip, err := h.tripService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *Handler) ListTrips(c *ginext.Context) {
	trips, err := h.tripService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		resp = append(resp, dto.ToTripResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Hotels

func (h *Handler) CreateHotel(c *ginext.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_in_date format, expected RFC3339",
		})
		return
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_out_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateHotelInput{
		Name:          req.Name,
		Location:      req.Location,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		PricePerNight: req.PricePerNight,
	}

	hotel, err := h.hotelService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *Handler) GetHotel(c *ginext.Context) {
	hotel, err := h.hotelService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *Handler) ListHotels(c *ginext.Context) {
	hotels, err := h.hotelService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, dto.ToHotelResponse(hotel))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		TripID:    req.TripID,
		HotelID:   req.HotelID,
		UserID:    req.UserID,
		PaymentID: req.PaymentID,
		Status:    domain.BookingStatus(req.Status),
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Payments

func (h *Handler) CreatePayment(c *ginext.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreatePaymentInput{
		Amount: req.Amount,
		Status: domain.PaymentStatus(req.Status),
	}

	payment, err := h.paymentService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	payment, err := h.paymentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) ListPayments(c *ginext.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
