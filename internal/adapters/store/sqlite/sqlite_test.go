package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

func openStore(t *testing.T, opts ...sqlite.Option) *sqlite.Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "todos.db")
	s, err := sqlite.Open(context.Background(), dsn, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(t *testing.T) ports.TodoStore {
		return openStore(t)
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "todos.db")

	s, err := sqlite.Open(ctx, dsn)
	require.NoError(t, err)
	created, err := s.Create(ctx, &todo.Todo{Title: "persist me", Description: "d"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := sqlite.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "persist me", got.Title)
	assert.Equal(t, "d", got.Description)
}

func TestStore_TimestampsRoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 9, 0, 0, 123, time.UTC)
	now := created
	s := openStore(t, sqlite.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	td, err := s.Create(ctx, &todo.Todo{Title: "A"})
	require.NoError(t, err)

	now = created.Add(time.Minute)
	_, err = s.Update(ctx, td.ID, func(cur *todo.Todo) error {
		cur.Toggle()
		return nil
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, td.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(now))
	assert.True(t, got.Completed)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	assert.Equal(t, "sqlite", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	require.NoError(t, s.Close())
	assert.Error(t, s.HealthCheck(context.Background()))
}
