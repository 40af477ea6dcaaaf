// Package memory provides an in-process implementation of [ports.TodoStore].
// All state lives in a map guarded by a single sync.RWMutex; reads share the
// lock and every mutation holds it exclusively, so read-modify-write
// operations are atomic with respect to concurrent requests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*Store)(nil)

// Store is a thread-safe in-memory todo store. IDs start at 1 and are never
// reused, so ascending ID order is insertion order.
type Store struct {
	mu     sync.RWMutex
	todos  map[int64]todo.Todo
	lastID int64
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		todos: make(map[int64]todo.Todo),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns copies of the todos matching filter in ascending ID order.
func (s *Store) List(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]todo.Todo, 0, len(s.todos))
	for _, id := range slices.Sorted(maps.Keys(s.todos)) {
		t := s.todos[id]
		if filter.Matches(&t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Get returns a copy of the todo with the given ID.
func (s *Store) Get(_ context.Context, id int64) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, todo.NotFound(id)
	}
	return &t, nil
}

// Create stores a copy of td under the next ID.
func (s *Store) Create(_ context.Context, td *todo.Todo) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	now := s.now()

	t := *td
	t.ID = s.lastID
	t.CreatedAt = now
	t.UpdatedAt = now
	s.todos[t.ID] = t

	return &t, nil
}

// Update applies mutate to a copy of the stored todo while holding the write
// lock and stores it only if mutate succeeds.
func (s *Store) Update(_ context.Context, id int64, mutate func(*todo.Todo) error) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, todo.NotFound(id)
	}
	if err := mutate(&t); err != nil {
		return nil, err
	}

	t.ID = id
	t.UpdatedAt = s.now()
	s.todos[id] = t

	return &t, nil
}

// Delete removes the todo and reports whether it existed.
func (s *Store) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return false, nil
	}
	delete(s.todos, id)
	return true, nil
}

// DeleteCompleted removes every completed todo.
func (s *Store) DeleteCompleted(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.todos)
	maps.DeleteFunc(s.todos, func(_ int64, t todo.Todo) bool {
		return t.Completed
	})
	return before - len(s.todos), nil
}

// Stats counts todos under a single read lock.
func (s *Store) Stats(_ context.Context) (todo.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return todo.CalculateStats(slices.Collect(maps.Values(s.todos))), nil
}
