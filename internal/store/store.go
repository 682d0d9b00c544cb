// Package store provides the in-memory backing store each entity client
// falls back to when the live backend is unreachable. A Store is an explicit
// instance owned by whoever composes it; there are no package-level
// singletons, so tests can build isolated stores.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/shared"
)

// Config wires the entity-specific behavior into a generic Store.
type Config[T any] struct {
	// Entity names the record type for error messages and logs.
	Entity string

	// Latency is slept before each operation to emulate a backend round
	// trip. It is deliberately not context-cancellable: once a mutation
	// starts it represents committed local state.
	Latency time.Duration

	// ID returns a record's unique identifier.
	ID func(rec T) string

	// Clone returns a deep copy. Every record handed out crosses this, so
	// callers can never mutate store-internal state through a result.
	Clone func(rec T) T

	// NaturalKey returns the caller-meaningful uniqueness value, or ""
	// when the entity has none. Insert rejects collisions with ErrConflict.
	NaturalKey func(rec T) string

	// Schema drives list filtering through the query engine.
	Schema query.Schema[T]

	// Transitions are the bulk-operation vocabulary. Unknown operation
	// names are a silent per-record no-op, keeping bulk calls forward
	// compatible with vocabularies introduced upstream.
	Transitions map[string]func(rec *T)
}

// Store holds the ordered canonical collection for one entity type.
type Store[T any] struct {
	mu      sync.Mutex
	cfg     Config[T]
	records []T
}

// New builds a Store seeded with deep copies of seed.
func New[T any](cfg Config[T], seed []T) *Store[T] {
	s := &Store[T]{cfg: cfg, records: make([]T, 0, len(seed))}
	for _, rec := range seed {
		s.records = append(s.records, cfg.Clone(rec))
	}
	return s
}

// List filters, sorts and paginates the current snapshot. Concurrent List
// calls are always safe; they never observe a half-applied mutation.
func (s *Store[T]) List(ctx context.Context, f query.Filter) (query.Page[T], error) {
	s.sleep()
	s.mu.Lock()
	snapshot := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		snapshot = append(snapshot, s.cfg.Clone(rec))
	}
	s.mu.Unlock()
	return query.Apply(snapshot, f, s.cfg.Schema), nil
}

// Get returns a deep copy of the record with the given id.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(id)
	if idx < 0 {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", s.cfg.Entity, id, shared.ErrNotFound)
	}
	return s.cfg.Clone(s.records[idx]), nil
}

// Insert appends a fully shaped record. The caller assigns the id and
// timestamps; Insert only guards the natural key.
func (s *Store[T]) Insert(ctx context.Context, rec T) (T, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.NaturalKey != nil {
		if key := s.cfg.NaturalKey(rec); key != "" {
			for _, existing := range s.records {
				if s.cfg.NaturalKey(existing) == key {
					var zero T
					return zero, fmt.Errorf("%s %q already exists: %w", s.cfg.Entity, key, shared.ErrConflict)
				}
			}
		}
	}
	s.records = append(s.records, s.cfg.Clone(rec))
	return s.cfg.Clone(rec), nil
}

// Update applies mutate to the stored record in place. The mutation runs to
// completion under the lock; it is never split across suspension points.
func (s *Store[T]) Update(ctx context.Context, id string, mutate func(rec *T)) (T, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(id)
	if idx < 0 {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", s.cfg.Entity, id, shared.ErrNotFound)
	}
	mutate(&s.records[idx])
	return s.cfg.Clone(s.records[idx]), nil
}

// Delete removes the record immediately and unconditionally.
func (s *Store[T]) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(id)
	if idx < 0 {
		return shared.DeleteResult{}, fmt.Errorf("%s %q: %w", s.cfg.Entity, id, shared.ErrNotFound)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return shared.DeleteResult{Success: true}, nil
}

// Bulk applies the named transition to each id. Unknown ids are skipped
// silently and unknown operations are a per-record no-op; the result counts
// only records actually mutated. Bulk is not atomic across ids.
func (s *Store[T]) Bulk(ctx context.Context, ids []string, op string) (shared.BulkResult, error) {
	s.sleep()
	s.mu.Lock()
	defer s.mu.Unlock()
	transition := s.cfg.Transitions[op]
	affected := 0
	for _, id := range ids {
		idx := s.index(id)
		if idx < 0 || transition == nil {
			continue
		}
		transition(&s.records[idx])
		affected++
	}
	return shared.BulkResult{Success: true, AffectedCount: affected}, nil
}

// Len reports the current record count.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store[T]) index(id string) int {
	for i, rec := range s.records {
		if s.cfg.ID(rec) == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) sleep() {
	if s.cfg.Latency > 0 {
		time.Sleep(s.cfg.Latency)
	}
}
