// Package resource implements the generic CRUD service reused by every plain
// resource type (ministries, entities, projects, users, courses). Each service
// owns exactly one store collection.
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

// Service exposes the five uniform operations over one collection. The
// optional defaults hook fills type-specific fields on create, such as the
// document placeholder content.
type Service[T store.Record[T]] struct {
	col      *store.Collection[T]
	defaults func(T) T
	logger   *slog.Logger
}

// Option customizes a Service.
type Option[T store.Record[T]] func(*Service[T])

// WithDefaults registers a hook applied to every record before it is stored by
// Create.
func WithDefaults[T store.Record[T]](fn func(T) T) Option[T] {
	return func(s *Service[T]) { s.defaults = fn }
}

func New[T store.Record[T]](col *store.Collection[T], logger *slog.Logger, opts ...Option[T]) *Service[T] {
	s := &Service[T]{col: col, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all current records in unspecified order.
func (s *Service[T]) List(_ context.Context) []T {
	return s.col.List()
}

// Create stores rec under a freshly generated id. Any client-supplied id is
// discarded. No field validation happens; the record is stored as received,
// after defaults.
func (s *Service[T]) Create(ctx context.Context, rec T) T {
	if s.defaults != nil {
		rec = s.defaults(rec)
	}
	rec = s.col.Insert(rec)
	s.logger.DebugContext(ctx, "record created", "id", rec.RecordID())
	return rec
}

// Get looks up one record. A missing id is a benign not-found, not a hard
// failure; callers check the code before treating it as an error.
func (s *Service[T]) Get(_ context.Context, id string) (T, error) {
	rec, err := s.col.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		var zero T
		return zero, dErrors.New(dErrors.CodeNotFound, "record not found")
	}
	return rec, nil
}

// Update shallow-merges the JSON patch over the existing record. Supplied keys
// replace, unsupplied keys keep their prior value, and the id always stays the
// stored one regardless of what the patch carries.
func (s *Service[T]) Update(ctx context.Context, id string, patch json.RawMessage) (T, error) {
	rec, err := s.col.Apply(id, patch)
	if err != nil {
		var zero T
		if errors.Is(err, store.ErrNotFound) {
			return zero, dErrors.New(dErrors.CodeNotFound, "record not found")
		}
		return zero, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid patch")
	}
	s.logger.DebugContext(ctx, "record updated", "id", id)
	return rec, nil
}

// Delete removes the record. Deleting an absent id is a no-op.
func (s *Service[T]) Delete(ctx context.Context, id string) {
	s.col.Delete(id)
	s.logger.DebugContext(ctx, "record deleted", "id", id)
}
