package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"travelbooker/internal/domain"
	"travelbooker/internal/service/ports"
)

type UserService struct {
	store ports.Store[domain.User]
}

func NewUserService(store ports.Store[domain.User]) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be admin or customer", domain.ErrValidation)
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		Username: input.Username,
		Password: input.Password,
		Role:     input.Role,
	}

	if err := s.store.Insert(ctx, user.ID, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("User", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.store.List(ctx)
}

// Authenticate scans the whole user list for a username/password match.
// User counts here are small enough that an index is not worth a schema.
// Both unknown usernames and wrong passwords come back as the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if user.Username == username && user.Password == password {
			return user, nil
		}
	}

	return nil, domain.ErrInvalidCredentials
}
