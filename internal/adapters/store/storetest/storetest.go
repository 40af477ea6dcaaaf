// Package storetest holds the behavioral contract every [ports.TodoStore]
// implementation must satisfy. Adapter packages call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Factory returns a fresh, empty store for a single subtest.
type Factory func(t *testing.T) ports.TodoStore

// Run executes the contract against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("create assigns increasing ids", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)
		b, err := s.Create(ctx, &todo.Todo{Title: "B"})
		require.NoError(t, err)

		assert.Positive(t, a.ID)
		assert.Greater(t, b.ID, a.ID)
		assert.False(t, a.Completed)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("create does not alias input", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		in := &todo.Todo{Title: "A"}
		created, err := s.Create(ctx, in)
		require.NoError(t, err)

		in.Title = "mutated"
		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(context.Background(), 404)
		require.ErrorIs(t, err, domain.ErrNotFound)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(404), nf.ID)
	})

	t.Run("list keeps insertion order and filters", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for i, title := range []string{"work one", "play", "work two"} {
			_, err := s.Create(ctx, &todo.Todo{Title: title, Completed: i == 1})
			require.NoError(t, err)
		}

		all, err := s.List(ctx, todo.Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"work one", "play", "work two"}, titles(all))

		work, err := s.List(ctx, todo.Filter{Keyword: "work"})
		require.NoError(t, err)
		assert.Equal(t, []string{"work one", "work two"}, titles(work))

		done, err := s.List(ctx, todo.ByCompleted(true))
		require.NoError(t, err)
		assert.Equal(t, []string{"play"}, titles(done))

		active, err := s.List(ctx, todo.ByCompleted(false))
		require.NoError(t, err)
		assert.Equal(t, []string{"work one", "work two"}, titles(active))
	})

	t.Run("keyword match is case sensitive", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Create(ctx, &todo.Todo{Title: "Work"})
		require.NoError(t, err)
		_, err = s.Create(ctx, &todo.Todo{Title: "homework"})
		require.NoError(t, err)

		got, err := s.List(ctx, todo.Filter{Keyword: "work"})
		require.NoError(t, err)
		assert.Equal(t, []string{"homework"}, titles(got))
	})

	t.Run("update applies mutation", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)

		updated, err := s.Update(ctx, created.ID, func(td *todo.Todo) error {
			td.Title = "B"
			td.Completed = true
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "B", updated.Title)
		assert.True(t, updated.Completed)

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Title)
		assert.True(t, got.Completed)
	})

	t.Run("update rejected by mutate leaves record unchanged", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)

		errReject := errors.New("rejected")
		_, err = s.Update(ctx, created.ID, func(td *todo.Todo) error {
			td.Title = "changed"
			return errReject
		})
		require.ErrorIs(t, err, errReject)

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
	})

	t.Run("update unknown id is not found and skips mutate", func(t *testing.T) {
		s := newStore(t)

		called := false
		_, err := s.Update(context.Background(), 9, func(*todo.Todo) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, called)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)

		existed, err := s.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, existed)

		existed, err = s.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, existed)

		_, err = s.Get(ctx, created.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)
		_, err = s.Delete(ctx, a.ID)
		require.NoError(t, err)

		b, err := s.Create(ctx, &todo.Todo{Title: "B"})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("delete completed removes only completed", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Create(ctx, &todo.Todo{Title: "done", Completed: true})
		require.NoError(t, err)
		_, err = s.Create(ctx, &todo.Todo{Title: "open"})
		require.NoError(t, err)

		n, err := s.DeleteCompleted(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		all, err := s.List(ctx, todo.Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"open"}, titles(all))

		n, err = s.DeleteCompleted(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("stats", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, todo.Stats{}, stats)

		_, err = s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)
		_, err = s.Create(ctx, &todo.Todo{Title: "B", Completed: true})
		require.NoError(t, err)

		stats, err = s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, todo.Stats{Total: 2, Completed: 1, Active: 1}, stats)
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const n = 32
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				created, err := s.Create(ctx, &todo.Todo{Title: fmt.Sprintf("t%d", i)})
				if err == nil {
					ids <- created.ID
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool, n)
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
	})

	t.Run("toggle racing delete stays consistent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := s.Create(ctx, &todo.Todo{Title: "A"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := s.Update(ctx, created.ID, func(td *todo.Todo) error {
					td.Toggle()
					return nil
				})
				if err != nil {
					assert.ErrorIs(t, err, domain.ErrNotFound)
				}
			}()
			go func() {
				defer wg.Done()
				_, _ = s.Delete(ctx, created.ID)
			}()
		}
		wg.Wait()

		_, err = s.Get(ctx, created.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
	})
}

func titles(todos []todo.Todo) []string {
	out := make([]string, len(todos))
	for i := range todos {
		out[i] = todos[i].Title
	}
	return out
}
