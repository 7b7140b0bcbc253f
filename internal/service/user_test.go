package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports/mocks"
)

func TestUserService_Create(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Password: "s3cret",
		Role:     domain.RoleAdmin,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Password: "s3cret",
		Role:     "manager",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_MissingPassword(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Role:     domain.RoleCustomer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Authenticate(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	users := []*domain.User{
		{ID: "u1", Username: "alice", Password: "s3cret", Role: domain.RoleAdmin},
		{ID: "u2", Username: "bob", Password: "hunter2", Role: domain.RoleCustomer},
	}
	store.EXPECT().List(mock.Anything).Return(users, nil)

	user, err := svc.Authenticate(context.Background(), "bob", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	users := []*domain.User{{ID: "u1", Username: "alice", Password: "s3cret"}}
	store.EXPECT().List(mock.Anything).Return(users, nil)

	_, err := svc.Authenticate(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownUsername(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	store.EXPECT().List(mock.Anything).Return(nil, nil)

	_, err := svc.Authenticate(context.Background(), "nobody", "whatever")

	// Indistinguishable from a wrong password on purpose.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	store := mocks.NewMockStore[domain.User](t)
	svc := NewUserService(store)

	store.EXPECT().Get(mock.Anything, "u404").Return(nil, domain.ErrNotFound)

	_, err := svc.GetByID(context.Background(), "u404")

	require.Error(t, err)
	assert.EqualError(t, err, "User with id u404 not found")
}
