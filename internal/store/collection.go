package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is the store-level sentinel for a missing record. Services wrap
// it into coded domain errors at their boundary.
var ErrNotFound = errors.New("record not found")

// Record constrains collection element types. Records are value types; WithID
// returns a copy so the store never mutates a caller-held value.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// Collection is one concurrent mapping of generated id to record. It favors
// clarity over performance, like the rest of this demo store.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewCollection[T Record[T]]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// List returns a snapshot of all records. Order is unspecified.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, rec := range c.items {
		out = append(out, rec)
	}
	return out
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

// Insert assigns a fresh id to rec, overriding any caller-supplied one, and
// stores it.
func (c *Collection[T]) Insert(rec T) T {
	rec = rec.WithID(uuid.NewString())
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[rec.RecordID()] = rec
	return rec
}

// Apply shallow-merges a JSON patch over the stored record: keys present in
// patch replace, absent keys keep their prior value, and the id is re-asserted
// afterwards. The whole read-merge-write runs under the write lock so
// concurrent patches to the same id serialize instead of clobbering each
// other.
func (c *Collection[T]) Apply(id string, patch json.RawMessage) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	merged := cur
	if err := json.Unmarshal(patch, &merged); err != nil {
		return zero, fmt.Errorf("apply patch: %w", err)
	}
	merged = merged.WithID(id)
	c.items[id] = merged
	return merged, nil
}

// Mutate runs fn against the stored record under the write lock and stores the
// result. Callers use it when several fields must change together, such as a
// workflow status and its history entry.
func (c *Collection[T]) Mutate(id string, fn func(*T)) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	fn(&rec)
	rec = rec.WithID(id)
	c.items[id] = rec
	return rec, nil
}

// Delete removes the record. Deleting an absent id is a no-op.
func (c *Collection[T]) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
