// Package sqlite provides a [ports.TodoStore] backed by an embedded SQLite
// database through the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT '',
	completed   INTEGER NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
)`

const selectColumns = `SELECT id, title, description, completed, created_at, updated_at FROM todos`

// Store persists todos in a single SQLite table. Timestamps are stored as
// Unix nanoseconds in UTC.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open opens (or creates) the database at dsn and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection serializes writers and keeps ":memory:" databases
	// shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating todos table: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name returns the health check name.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// List returns the todos matching filter in ascending ID order. The keyword
// test uses instr so matching stays case-sensitive.
func (s *Store) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	query := selectColumns + ` WHERE 1=1`
	var args []any

	if filter.Completed != nil {
		query += ` AND completed = ?`
		args = append(args, *filter.Completed)
	}
	if filter.Keyword != "" {
		query += ` AND instr(title, ?) > 0`
		args = append(args, filter.Keyword)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	return todos, nil
}

// Get returns the todo with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	return getTodo(ctx, s.db, id)
}

// Create inserts td and returns the stored row.
func (s *Store) Create(ctx context.Context, td *todo.Todo) (*todo.Todo, error) {
	now := s.now().UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (title, description, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		td.Title, td.Description, td.Completed, now.UnixNano(), now.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	out := *td
	out.ID = id
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

// Update runs load, mutate and write inside one transaction.
func (s *Store) Update(ctx context.Context, id int64, mutate func(*todo.Todo) error) (*todo.Todo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := getTodo(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(t); err != nil {
		return nil, err
	}

	t.ID = id
	t.UpdatedAt = s.now().UTC()

	if _, err := tx.ExecContext(ctx,
		`UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ? WHERE id = ?`,
		t.Title, t.Description, t.Completed, t.UpdatedAt.UnixNano(), id,
	); err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing todo %d: %w", id, err)
	}
	return t, nil
}

// Delete removes the todo and reports whether a row was deleted.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting todo %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting todo %d: %w", id, err)
	}
	return n > 0, nil
}

// DeleteCompleted removes every completed todo.
func (s *Store) DeleteCompleted(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE completed = 1`)
	if err != nil {
		return 0, fmt.Errorf("deleting completed todos: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting completed todos: %w", err)
	}
	return int(n), nil
}

// Stats counts todos with a single aggregate query.
func (s *Store) Stats(ctx context.Context) (todo.Stats, error) {
	var total, completed int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM todos`,
	).Scan(&total, &completed)
	if err != nil {
		return todo.Stats{}, fmt.Errorf("counting todos: %w", err)
	}
	return todo.Stats{Total: total, Completed: completed, Active: total - completed}, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func getTodo(ctx context.Context, q queryer, id int64) (*todo.Todo, error) {
	t, err := scanTodo(q.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, todo.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading todo %d: %w", id, err)
	}
	return t, nil
}

func scanTodo(row scanner) (*todo.Todo, error) {
	var (
		t                todo.Todo
		created, updated int64
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &created, &updated); err != nil {
		return nil, err
	}
	t.CreatedAt = time.Unix(0, created).UTC()
	t.UpdatedAt = time.Unix(0, updated).UTC()
	return &t, nil
}
