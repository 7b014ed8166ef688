// Package cache provides the process-lifetime memory caches used by the
// external data adapters and the content aggregator.
package cache

import (
	"context"
	"sync"
	"time"
)

// FillFunc produces the value stored in a Slot.
type FillFunc[T any] func(ctx context.Context) (T, error)

// Slot holds at most one value for the life of the process. The first
// successful Get stores the value; later calls return it as is, so pointer
// values are shared by reference.
//
// Fills are not coalesced: callers racing on an empty slot each run their
// fill and the last one to finish wins. Fills are expected to be idempotent.
type Slot[T any] struct {
	mu       sync.RWMutex
	value    T
	loaded   bool
	loadedAt time.Time
}

// NewSlot returns an empty slot.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Get returns the cached value, running fill when the slot is empty. A
// failed fill leaves the slot empty and returns the error.
func (s *Slot[T]) Get(ctx context.Context, fill FillFunc[T]) (T, error) {
	if v, ok := s.Peek(); ok {
		return v, nil
	}

	v, err := fill(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.Set(v)
	return v, nil
}

// Peek returns the cached value without filling.
func (s *Slot[T]) Peek() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value, s.loaded
}

// Set stores v, replacing whatever the slot held.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.loaded = true
	s.loadedAt = time.Now()
}

// Reset empties the slot.
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.loaded = false
	s.loadedAt = time.Time{}
}

// Loaded reports whether the slot holds a value.
func (s *Slot[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// LoadedAt returns when the current value was stored, zero when empty.
func (s *Slot[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
