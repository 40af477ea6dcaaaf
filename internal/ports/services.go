package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns every todo in insertion order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates and persists a new todo, returning it with
	// store-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// UpdateTodo overwrites title, description and completed of an existing todo.
	// Returns domain.ErrNotFound if the todo does not exist, checked before
	// domain.ErrValidation.
	UpdateTodo(ctx context.Context, id int64, td *todo.Todo) (*todo.Todo, error)

	// PatchTodo applies the non-nil fields of patch atomically.
	// Returns domain.ErrNotFound if the todo does not exist, checked before
	// domain.ErrValidation.
	PatchTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo removes a todo. Deleting an absent todo is a no-op.
	DeleteTodo(ctx context.Context, id int64) error

	// DeleteCompletedTodos removes every completed todo and returns how many
	// were removed.
	DeleteCompletedTodos(ctx context.Context) (int, error)

	// ToggleCompleted flips the completed flag and returns the updated todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	ToggleCompleted(ctx context.Context, id int64) (*todo.Todo, error)

	// SearchTodos returns todos whose title contains keyword (case-sensitive),
	// in the same relative order as ListTodos.
	SearchTodos(ctx context.Context, keyword string) ([]todo.Todo, error)

	// ListTodosByCompleted returns todos with the given completed flag.
	ListTodosByCompleted(ctx context.Context, completed bool) ([]todo.Todo, error)

	// Stats returns total, completed and active counts from one snapshot.
	Stats(ctx context.Context) (todo.Stats, error)

	// TotalCount returns the number of todos.
	TotalCount(ctx context.Context) (int, error)

	// CompletedCount returns the number of completed todos.
	CompletedCount(ctx context.Context) (int, error)

	// ActiveCount returns the number of todos not yet completed.
	ActiveCount(ctx context.Context) (int, error)
}
