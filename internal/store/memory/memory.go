package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"crud_api/internal/model"
)

// Collection keeps the records of one resource in process memory, keyed by
// id and listed in insertion order.
type Collection[T any, PT model.Entity[T]] struct {
	mu       sync.RWMutex
	resource model.Resource
	records  map[string]T
	order    []string
	now      func() time.Time
	log      *zap.Logger
}

func New[T any, PT model.Entity[T]](resource model.Resource, logger *zap.Logger) *Collection[T, PT] {
	return &Collection[T, PT]{
		resource: resource,
		records:  make(map[string]T),
		now:      func() time.Time { return time.Now().UTC() },
		log:      logger,
	}
}

func (c *Collection[T, PT]) Create(_ context.Context, input T) (T, error) {
	record := input
	PT(&record).Meta().Init(c.now())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[PT(&record).Meta().ID] = record
	c.order = append(c.order, PT(&record).Meta().ID)
	return record, nil
}

func (c *Collection[T, PT]) Get(_ context.Context, id string) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[id]
	return record, ok, nil
}

func (c *Collection[T, PT]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]T, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.records[id])
	}
	return result, nil
}

func (c *Collection[T, PT]) Update(_ context.Context, id string, patch model.Patch[T]) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.records[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	updated := existing
	patch.Apply(&updated)
	PT(&updated).Meta().Touch(*PT(&existing).Meta(), c.now())
	c.records[id] = updated
	return updated, true, nil
}

func (c *Collection[T, PT]) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.records[id]; !ok {
		return false, nil
	}
	delete(c.records, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true, nil
}

func (c *Collection[T, PT]) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.records)
	c.records = make(map[string]T)
	c.order = nil
	c.log.Debug("collection cleared", zap.String("resource", c.resource.Path), zap.Int("records", n))
	return nil
}

// Len reports the number of stored records.
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
