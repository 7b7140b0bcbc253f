package ports

import "context"

// Store is the keyed record store a service works against. Insert
// overwrites any record already stored under id.
type Store[T any] interface {
	Insert(ctx context.Context, id string, rec *T) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
}
