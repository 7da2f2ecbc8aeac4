package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/repositories"
)

var validate = validator.New()

// store keeps entities in insertion order with an id index. Values are copied
// on the way in and out so callers never share state with the store.
type store[T any] struct {
	mu    sync.RWMutex
	kind  string
	items []T
	index map[uuid.UUID]int
	id    func(*T) uuid.UUID
	clone func(*T) *T
}

func newStore[T any](kind string, expected int, id func(*T) uuid.UUID, clone func(*T) *T) *store[T] {
	return &store[T]{
		kind:  kind,
		items: make([]T, 0, expected),
		index: make(map[uuid.UUID]int, expected),
		id:    id,
		clone: clone,
	}
}

func (s *store[T]) get(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, exists := s.index[id]
	if !exists {
		return nil, fmt.Errorf("%s %s: %w", s.kind, id, repositories.ErrNotFound)
	}
	return s.clone(&s.items[i]), nil
}

// save inserts or replaces an entity after struct validation
func (s *store[T]) save(ctx context.Context, v *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%s cannot be nil", s.kind)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid %s: %w", s.kind, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(v)
	stored := *s.clone(v)
	if i, exists := s.index[id]; exists {
		s.items[i] = stored
		return nil
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, stored)
	return nil
}

// list returns copies of the entities accepted by keep, in insertion order
func (s *store[T]) list(ctx context.Context, keep func(*T) bool) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(s.items))
	for i := range s.items {
		if keep != nil && !keep(&s.items[i]) {
			continue
		}
		out = append(out, s.clone(&s.items[i]))
	}
	return out, nil
}

func (s *store[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
