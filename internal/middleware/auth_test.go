package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"

	"travelbooker/internal/domain"
	"travelbooker/internal/middleware/mocks"
)

func setupGuardedRoute(t *testing.T) (*mocks.MockUserGetter, http.Handler) {
	t.Helper()

	users := mocks.NewMockUserGetter(t)

	r := ginext.New("test")
	r.POST("/trips", RequireRole(users, domain.RoleAdmin), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return users, r
}

func doRequest(r http.Handler, userID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trips", nil)
	if userID != "" {
		req.Header.Set(CallerHeader, userID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole_AdminPasses(t *testing.T) {
	users, r := setupGuardedRoute(t)

	admin := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin}
	users.EXPECT().GetByID(mock.Anything, "u1").Return(admin, nil)

	w := doRequest(r, "u1")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_MissingHeader(t *testing.T) {
	_, r := setupGuardedRoute(t)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
}

func TestRequireRole_UnknownCaller(t *testing.T) {
	users, r := setupGuardedRoute(t)

	users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.NotFound("User", "ghost"))

	w := doRequest(r, "ghost")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
}

func TestRequireRole_WrongRole(t *testing.T) {
	users, r := setupGuardedRoute(t)

	customer := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleCustomer}
	users.EXPECT().GetByID(mock.Anything, "u2").Return(customer, nil)

	w := doRequest(r, "u2")

	// Same body as the unknown-caller case.
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
}
