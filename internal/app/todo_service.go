// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoStore. It applies
// entity validation, structured logging and operation metrics; atomicity of
// read-modify-write steps is delegated to the store's Update.
type TodoService struct {
	store   ports.TodoStore
	metrics *Metrics
	logger  *slog.Logger
}

// NewTodoService creates a TodoService. A nil metrics records nothing and a
// nil logger discards output.
func NewTodoService(store ports.TodoStore, metrics *Metrics, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// ListTodos returns every todo in insertion order.
func (s *TodoService) ListTodos(ctx context.Context) (todos []todo.Todo, err error) {
	defer s.metrics.observe("list", time.Now(), &err)

	s.logger.DebugContext(ctx, "listing todos")

	todos, err = s.store.List(ctx, todo.Filter{})
	if err != nil {
		s.logFailure(ctx, "failed to list todos", "ListTodos", err)
		return nil, err
	}
	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (t *todo.Todo, err error) {
	defer s.metrics.observe("get", time.Now(), &err)

	t, err = s.store.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to fetch todo", "GetTodo", err, slog.Int64("id", id))
		return nil, err
	}
	return t, nil
}

// CreateTodo trims and validates td, then persists it.
func (s *TodoService) CreateTodo(ctx context.Context, td *todo.Todo) (created *todo.Todo, err error) {
	defer s.metrics.observe("create", time.Now(), &err)

	in := *td
	in.Normalize()

	s.logger.InfoContext(ctx, "creating todo", slog.String("title", in.Title))

	if err = in.Validate(); err != nil {
		return nil, err
	}

	created, err = s.store.Create(ctx, &in)
	if err != nil {
		s.logFailure(ctx, "failed to create todo", "CreateTodo", err)
		return nil, err
	}

	s.metrics.observeTitle(utf8.RuneCountInString(created.Title))
	return created, nil
}

// UpdateTodo overwrites title, description and completed of the todo with
// the given ID. Existence is checked before validation.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, td *todo.Todo) (updated *todo.Todo, err error) {
	defer s.metrics.observe("update", time.Now(), &err)

	s.logger.InfoContext(ctx, "updating todo", slog.Int64("id", id))

	updated, err = s.store.Update(ctx, id, func(cur *todo.Todo) error {
		next := *cur
		next.Apply(td)
		next.Normalize()
		if err := next.Validate(); err != nil {
			return err
		}
		*cur = next
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "failed to update todo", "UpdateTodo", err, slog.Int64("id", id))
		return nil, err
	}

	s.metrics.observeTitle(utf8.RuneCountInString(updated.Title))
	return updated, nil
}

// PatchTodo applies the non-nil fields of patch to the stored todo in one
// atomic store update, so concurrent changes to other fields are kept.
func (s *TodoService) PatchTodo(ctx context.Context, id int64, patch todo.Patch) (updated *todo.Todo, err error) {
	defer s.metrics.observe("patch", time.Now(), &err)

	s.logger.InfoContext(ctx, "patching todo", slog.Int64("id", id))

	updated, err = s.store.Update(ctx, id, func(cur *todo.Todo) error {
		next := *cur
		patch.ApplyTo(&next)
		next.Normalize()
		if err := next.Validate(); err != nil {
			return err
		}
		*cur = next
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "failed to patch todo", "PatchTodo", err, slog.Int64("id", id))
		return nil, err
	}

	s.metrics.observeTitle(utf8.RuneCountInString(updated.Title))
	return updated, nil
}

// DeleteTodo removes the todo with the given ID. An absent ID is not an error.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) (err error) {
	defer s.metrics.observe("delete", time.Now(), &err)

	existed, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to delete todo", "DeleteTodo", err, slog.Int64("id", id))
		return err
	}

	s.logger.InfoContext(ctx, "deleted todo", slog.Int64("id", id), slog.Bool("existed", existed))
	return nil
}

// DeleteCompletedTodos removes every completed todo.
func (s *TodoService) DeleteCompletedTodos(ctx context.Context) (n int, err error) {
	defer s.metrics.observe("delete_completed", time.Now(), &err)

	n, err = s.store.DeleteCompleted(ctx)
	if err != nil {
		s.logFailure(ctx, "failed to delete completed todos", "DeleteCompletedTodos", err)
		return 0, err
	}

	s.logger.InfoContext(ctx, "deleted completed todos", slog.Int("count", n))
	return n, nil
}

// ToggleCompleted flips the completed flag of the todo with the given ID.
func (s *TodoService) ToggleCompleted(ctx context.Context, id int64) (t *todo.Todo, err error) {
	defer s.metrics.observe("toggle", time.Now(), &err)

	t, err = s.store.Update(ctx, id, func(cur *todo.Todo) error {
		cur.Toggle()
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "failed to toggle todo", "ToggleCompleted", err, slog.Int64("id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "toggled todo", slog.Int64("id", id), slog.Bool("completed", t.Completed))
	return t, nil
}

// SearchTodos returns todos whose title contains keyword. An empty keyword
// matches everything.
func (s *TodoService) SearchTodos(ctx context.Context, keyword string) (todos []todo.Todo, err error) {
	defer s.metrics.observe("search", time.Now(), &err)

	todos, err = s.store.List(ctx, todo.Filter{Keyword: keyword})
	if err != nil {
		s.logFailure(ctx, "failed to search todos", "SearchTodos", err, slog.String("keyword", keyword))
		return nil, err
	}
	return todos, nil
}

// ListTodosByCompleted returns todos whose completed flag equals completed.
func (s *TodoService) ListTodosByCompleted(ctx context.Context, completed bool) (todos []todo.Todo, err error) {
	defer s.metrics.observe("list_by_completed", time.Now(), &err)

	todos, err = s.store.List(ctx, todo.ByCompleted(completed))
	if err != nil {
		s.logFailure(ctx, "failed to filter todos", "ListTodosByCompleted", err,
			slog.Bool("completed", completed))
		return nil, err
	}
	return todos, nil
}

// Stats returns all three counts from one store snapshot.
func (s *TodoService) Stats(ctx context.Context) (stats todo.Stats, err error) {
	defer s.metrics.observe("stats", time.Now(), &err)

	stats, err = s.store.Stats(ctx)
	if err != nil {
		s.logFailure(ctx, "failed to count todos", "Stats", err)
		return todo.Stats{}, err
	}
	return stats, nil
}

// TotalCount returns the number of todos.
func (s *TodoService) TotalCount(ctx context.Context) (int, error) {
	stats, err := s.Stats(ctx)
	return stats.Total, err
}

// CompletedCount returns the number of completed todos.
func (s *TodoService) CompletedCount(ctx context.Context) (int, error) {
	stats, err := s.Stats(ctx)
	return stats.Completed, err
}

// ActiveCount returns the number of todos not yet completed.
func (s *TodoService) ActiveCount(ctx context.Context) (int, error) {
	stats, err := s.Stats(ctx)
	return stats.Active, err
}

// logFailure logs expected domain outcomes at warn and everything else at error.
func (s *TodoService) logFailure(ctx context.Context, msg, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
	}

	args := make([]slog.Attr, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation))
	args = append(args, attrs...)
	args = append(args, slog.Any("error", err))

	logging.FromContextOr(ctx, s.logger).LogAttrs(ctx, level, msg, args...)
}
