package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation error")
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// NotFoundError names the entity kind and the id the caller asked for.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(entity, id string) error {
	return NotFoundError{Entity: entity, ID: id}
}
