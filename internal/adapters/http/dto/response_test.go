package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Completed:   true,
		CreatedAt:   testTime,
		UpdatedAt:   testTime.Add(time.Hour),
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	td := validTodo()
	got := dto.ToTodoResponse(&td)

	want := dto.TodoResponse{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Completed:   true,
		CreatedAt:   "2026-02-12T15:04:05Z",
		UpdatedAt:   "2026-02-12T16:04:05Z",
	}
	if got != want {
		t.Errorf("ToTodoResponse() = %+v, want %+v", got, want)
	}
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		todos     []todo.Todo
		wantCount int
	}{
		{name: "nil slice", todos: nil, wantCount: 0},
		{name: "two todos", todos: []todo.Todo{validTodo(), {ID: 2, Title: "Walk"}}, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.ToTodoListResponse(tt.todos)
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if got.Todos == nil {
				t.Error("Todos = nil, want empty slice so JSON encodes []")
			}
			if len(got.Todos) != tt.wantCount {
				t.Errorf("len(Todos) = %d, want %d", len(got.Todos), tt.wantCount)
			}
		})
	}
}

func TestToStatsResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToStatsResponse(todo.Stats{Total: 3, Completed: 1, Active: 2})
	if got != (dto.StatsResponse{Total: 3, Completed: 1, Active: 2}) {
		t.Errorf("ToStatsResponse() = %+v", got)
	}
}

func TestTodoListResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToTodoListResponse(nil))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"todos":[],"count":0}` {
		t.Errorf("json = %s, want %s", data, `{"todos":[],"count":0}`)
	}
}

func TestToHealthResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantReady  bool
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "no checkers is ready",
			results:    map[string]error{},
			wantReady:  true,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{},
		},
		{
			name:       "all healthy",
			results:    map[string]error{"sqlite": nil, "todo-store": nil},
			wantReady:  true,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{"sqlite": "ok", "todo-store": "ok"},
		},
		{
			name:       "one failing",
			results:    map[string]error{"sqlite": nil, "todo-store": errors.New("circuit breaker is open")},
			wantReady:  false,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]string{"sqlite": "ok", "todo-store": "circuit breaker is open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ready := dto.ToHealthResponse(tt.results)
			if ready != tt.wantReady {
				t.Errorf("ready = %v, want %v", ready, tt.wantReady)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if len(got.Checks) != len(tt.wantChecks) {
				t.Fatalf("Checks = %v, want %v", got.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if got.Checks[name] != want {
					t.Errorf("Checks[%q] = %q, want %q", name, got.Checks[name], want)
				}
			}
		})
	}
}
