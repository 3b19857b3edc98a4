package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Base holds the bookkeeping fields shared by every record.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta gives generic code access to the embedded Base of a record.
func (b *Base) Meta() *Base {
	return b
}

// Init assigns a fresh identifier and stamps both timestamps with now.
func (b *Base) Init(now time.Time) {
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch restores the identity of prev and refreshes UpdatedAt. UpdatedAt
// never moves backwards even if the wall clock does.
func (b *Base) Touch(prev Base, now time.Time) {
	b.ID = prev.ID
	b.CreatedAt = prev.CreatedAt
	if now.Before(prev.UpdatedAt) {
		now = prev.UpdatedAt
	}
	b.UpdatedAt = now
}

// Entity is satisfied by a pointer to any record type embedding Base.
type Entity[T any] interface {
	*T
	Meta() *Base
}

// Patch is a partial update for records of type T. Apply only touches
// fields that were present in the request.
type Patch[T any] interface {
	Apply(record *T)
	Validate() error
}

// Optional marks whether a patch field was present in the decoded JSON.
// A present null leaves Value at its zero value with Set true.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o Optional[T]) apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// Resource names a record type for routing, storage and error messages.
type Resource struct {
	// Name is the singular display name, e.g. "Category".
	Name string
	// Path is the collection segment, e.g. "categories".
	Path string
}

func (r Resource) NotFoundMessage() string {
	return r.Name + " not found"
}
