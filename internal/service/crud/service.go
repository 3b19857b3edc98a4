package crud

import (
	"context"

	"go.uber.org/zap"
	"crud_api/internal/model"
	"crud_api/internal/repository"
)

type validator interface {
	Validate() error
}

// Service runs the five record operations of one resource on top of its
// repository. Absence is reported as ok == false; errors are either
// *domain.ValidationError or store failures.
type Service[T any] struct {
	resource model.Resource
	store    repository.Repository[T]
	log      *zap.Logger
	onCreate []func(T)
}

type Option[T any] func(*Service[T])

// WithCreateHook registers fn to run after every successful create.
func WithCreateHook[T any](fn func(T)) Option[T] {
	return func(s *Service[T]) {
		s.onCreate = append(s.onCreate, fn)
	}
}

func NewService[T any](resource model.Resource, store repository.Repository[T], logger *zap.Logger, opts ...Option[T]) *Service[T] {
	s := &Service[T]{resource: resource, store: store, log: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service[T]) Resource() model.Resource {
	return s.resource
}

func (s *Service[T]) Create(ctx context.Context, input T) (T, error) {
	var zero T
	if v, ok := any(&input).(validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}
	created, err := s.store.Create(ctx, input)
	if err != nil {
		s.log.Error("store create failed", zap.String("resource", s.resource.Path), zap.Error(err))
		return zero, err
	}
	for _, fn := range s.onCreate {
		fn(created)
	}
	return created, nil
}

func (s *Service[T]) Get(ctx context.Context, id string) (T, bool, error) {
	record, ok, err := s.store.Get(ctx, id)
	if err != nil {
		s.log.Error("store get failed", zap.String("resource", s.resource.Path), zap.String("id", id), zap.Error(err))
	}
	return record, ok, err
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("store list failed", zap.String("resource", s.resource.Path), zap.Error(err))
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *Service[T]) Update(ctx context.Context, id string, patch model.Patch[T]) (T, bool, error) {
	var zero T
	if err := patch.Validate(); err != nil {
		return zero, false, err
	}
	updated, ok, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.log.Error("store update failed", zap.String("resource", s.resource.Path), zap.String("id", id), zap.Error(err))
		return zero, false, err
	}
	return updated, ok, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		s.log.Error("store delete failed", zap.String("resource", s.resource.Path), zap.String("id", id), zap.Error(err))
		return false, err
	}
	return removed, nil
}
