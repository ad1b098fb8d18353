package memory

import (
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// orderedStore keeps records by ID and remembers the order they were first
// saved in. Records are copied on the way in and out.
type orderedStore[T any] struct {
	mu    sync.RWMutex
	name  string
	order []string
	items map[string]*T
	idOf  func(*T) string
	clone func(*T) *T
}

func newOrderedStore[T any](name string, idOf func(*T) string, clone func(*T) *T) *orderedStore[T] {
	return &orderedStore[T]{
		name:  name,
		items: make(map[string]*T),
		idOf:  idOf,
		clone: clone,
	}
}

func (s *orderedStore[T]) getAll() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.clone(s.items[id]))
	}
	return result
}

func (s *orderedStore[T]) get(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, s.name+" not found", goerr.V("id", id))
	}
	return s.clone(item), nil
}

// modify runs mutate on a copy of the stored record and keeps the result only
// if mutate succeeds. The lock is held for the whole step.
func (s *orderedStore[T]) modify(id string, mutate func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, s.name+" not found", goerr.V("id", id))
	}

	next := s.clone(item)
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.items[id] = s.clone(next)
	return next, nil
}

func (s *orderedStore[T]) saveMany(items []*T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		id := s.idOf(item)
		if _, ok := s.items[id]; !ok {
			s.order = append(s.order, id)
		}
		s.items[id] = s.clone(item)
	}
}

func (s *orderedStore[T]) deleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.items = make(map[string]*T)
}

// storeContent is a fully built replacement for the content of a store
type storeContent[T any] struct {
	order []string
	items map[string]*T
}

func (s *orderedStore[T]) build(items []*T) storeContent[T] {
	content := storeContent[T]{items: make(map[string]*T, len(items))}
	for _, item := range items {
		id := s.idOf(item)
		if _, ok := content.items[id]; !ok {
			content.order = append(content.order, id)
		}
		content.items[id] = s.clone(item)
	}
	return content
}

// swapLocked installs content. The caller holds s.mu.
func (s *orderedStore[T]) swapLocked(content storeContent[T]) {
	s.order = content.order
	s.items = content.items
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
