package repository

import (
	"context"

	"crud_api/internal/model"
)

// Repository is the storage contract shared by every resource. Absence is
// reported through the boolean result, never through the error.
type Repository[T any] interface {
	Create(ctx context.Context, input T) (T, error)
	Get(ctx context.Context, id string) (T, bool, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, patch model.Patch[T]) (T, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context) error
}
