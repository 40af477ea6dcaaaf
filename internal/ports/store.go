package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

// TodoStore defines the persistence port for todos.
// Implemented by the store adapters (memory, sqlite); called by the
// application layer. Implementations must be safe for concurrent use.
type TodoStore interface {
	// List returns todos matching filter in ascending ID order.
	// Pass a zero-value Filter to list all todos.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create assigns a new ID and timestamps and persists the todo.
	Create(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// Update loads the todo, applies mutate and persists the result as one
	// atomic step. If mutate returns an error nothing is written and that
	// error is returned unchanged.
	// Returns domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id int64, mutate func(*todo.Todo) error) (*todo.Todo, error)

	// Delete removes a todo and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteCompleted removes every completed todo and returns the count removed.
	DeleteCompleted(ctx context.Context) (int, error)

	// Stats returns aggregate counts over the whole collection.
	Stats(ctx context.Context) (todo.Stats, error)
}
