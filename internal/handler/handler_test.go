package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"travelbooker/internal/domain"
	"travelbooker/internal/handler/dto"
	hmocks "travelbooker/internal/handler/mocks"
)

type svcMocks struct {
	trip    *hmocks.MockTripSvc
	hotel   *hmocks.MockHotelSvc
	booking *hmocks.MockBookingSvc
	payment *hmocks.MockPaymentSvc
	user    *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()

	m := svcMocks{
		trip:    hmocks.NewMockTripSvc(t),
		hotel:   hmocks.NewMockHotelSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		payment: hmocks.NewMockPaymentSvc(t),
		user:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.trip, m.hotel, m.booking, m.payment, m.user)

	r := ginext.New("test")
	r.POST("/trips", h.CreateTrip)
	r.GET("/trips", h.ListTrips)
	r.GET("/trips/:id", h.GetTrip)
	r.POST("/hotels", h.CreateHotel)
	r.GET("/hotels", h.ListHotels)
	r.GET("/hotels/:id", h.GetHotel)
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", h.ListBookings)
	r.GET("/bookings/:id", h.GetBooking)
	r.PUT("/bookings/:id/cancel", h.CancelBooking)
	r.POST("/payments", h.CreatePayment)
	r.GET("/payments", h.ListPayments)
	r.GET("/payments/:id", h.GetPayment)
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.POST("/login", h.Login)

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Trips ---

func TestHandler_CreateTrip_Success(t *testing.T) {
	m, r := setupRouter(t)

	trip := &domain.Trip{ID: "t1", Destination: "Lisbon", Price: 499.90}
	m.trip.EXPECT().Create(mock.Anything, mock.Anything).Return(trip, nil)

	w := doJSON(t, r, http.MethodPost, "/trips", dto.CreateTripRequest{
		Destination:   "Lisbon",
		DepartureDate: "2026-09-01T00:00:00Z",
		ReturnDate:    "2026-09-08T00:00:00Z",
		Price:         499.90,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TripResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "t1", resp.ID)
	assert.Equal(t, "Lisbon", resp.Destination)
}

func TestHandler_CreateTrip_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/trips", dto.CreateTripRequest{
		Destination:   "Lisbon",
		DepartureDate: "tomorrow",
		ReturnDate:    "2026-09-08T00:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTrip_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.trip.EXPECT().GetByID(mock.Anything, "t404").Return(nil, domain.NotFound("Trip", "t404"))

	w := doJSON(t, r, http.MethodGet, "/trips/t404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Trip with id t404 not found", resp.Error)
}

func TestHandler_ListTrips_Empty(t *testing.T) {
	m, r := setupRouter(t)

	m.trip.EXPECT().List(mock.Anything).Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/trips", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// --- Hotels ---

func TestHandler_CreateHotel_Success(t *testing.T) {
	m, r := setupRouter(t)

	hotel := &domain.Hotel{ID: "h1", Name: "Grand Plaza", Location: "Lisbon"}
	m.hotel.EXPECT().Create(mock.Anything, mock.Anything).Return(hotel, nil)

	w := doJSON(t, r, http.MethodPost, "/hotels", dto.CreateHotelRequest{
		Name:         "Grand Plaza",
		Location:     "Lisbon",
		CheckInDate:  "2026-09-01T00:00:00Z",
		CheckOutDate: "2026-09-08T00:00:00Z",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetHotel_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.hotel.EXPECT().GetByID(mock.Anything, "h404").Return(nil, domain.NotFound("Hotel", "h404"))

	w := doJSON(t, r, http.MethodGet, "/hotels/h404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hotel with id h404 not found", resp.Error)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	tripID := "t1"
	booking := &domain.Booking{ID: "b1", TripID: &tripID, UserID: "u1", Status: domain.BookingStatusPending}
	m.booking.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/bookings", dto.CreateBookingRequest{
		TripID: &tripID,
		UserID: "u1",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CancelBooking(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}
	m.booking.EXPECT().Cancel(mock.Anything, "b1").Return(booking, nil)

	w := doJSON(t, r, http.MethodPut, "/bookings/b1/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Cancel(mock.Anything, "b404").Return(nil, domain.NotFound("Booking", "b404"))

	w := doJSON(t, r, http.MethodPut, "/bookings/b404/cancel", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking with id b404 not found", resp.Error)
}

// --- Payments ---

func TestHandler_CreatePayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	payment := &domain.Payment{ID: "p1", Amount: 150.50, Status: domain.PaymentStatusPending}
	m.payment.EXPECT().Create(mock.Anything, mock.Anything).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/payments", dto.CreatePaymentRequest{Amount: 150.50})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 150.50, resp.Amount)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreatePayment_InvalidAmount(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/payments", dto.CreatePaymentRequest{Amount: -5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreatePayment_NonNumericAmount(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"amount":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_OmitsPassword(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: "u1", Username: "alice", Password: "s3cret", Role: domain.RoleAdmin}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/users", dto.CreateUserRequest{
		Username: "alice",
		Password: "s3cret",
		Role:     "admin",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "s3cret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().GetByID(mock.Anything, "u404").Return(nil, domain.NotFound("User", "u404"))

	w := doJSON(t, r, http.MethodGet, "/users/u404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: "u1", Username: "alice", Password: "s3cret", Role: domain.RoleCustomer}
	m.user.EXPECT().Authenticate(mock.Anything, "alice", "s3cret").Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/login", dto.LoginRequest{Username: "alice", Password: "s3cret"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "s3cret")
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Authenticate(mock.Anything, "alice", "wrong").
		Return(nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/login", dto.LoginRequest{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid username or password", resp.Error)
}
