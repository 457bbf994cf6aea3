package cache

import "sync"

// Store is a process-local map guarded by a shared-exclusive lock: many
// concurrent readers, one writer. It is unbounded and never evicts; an entry
// lives until the process exits.
type Store[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{items: make(map[string]V)}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *Store[V]) Put(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

func (s *Store[V]) PutMany(values map[string]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.items[k] = v
	}
}

// Update runs fn under the exclusive lock, passing the current value for key
// and whether one exists. If fn succeeds its result is stored under key; if
// fn returns an error the store is left untouched. The lock is held for the
// whole of fn, which serializes read-modify-write sequences on the same key.
func (s *Store[V]) Update(key string, fn func(current V, ok bool) (V, error)) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.items[key]
	next, err := fn(cur, ok)
	if err != nil {
		var zero V
		return zero, err
	}
	s.items[key] = next
	return next, nil
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
