// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the JSON API.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// TodoListResponse represents a list of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoListResponse converts a slice of domain Todo entities to an HTTP
// list response DTO. An empty input yields an empty, non-nil array.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// StatsResponse carries the list page counters.
type StatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}

// ToStatsResponse converts domain counts to an HTTP response DTO.
func ToStatsResponse(s todo.Stats) StatsResponse {
	return StatsResponse{
		Total:     s.Total,
		Completed: s.Completed,
		Active:    s.Active,
	}
}

// DeleteCompletedResponse reports how many todos a bulk delete removed.
type DeleteCompletedResponse struct {
	Deleted int `json:"deleted"`
}

// Health check states.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints. Checks
// maps each component to "ok" or its failure message and is omitted for
// liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse summarizes checker results keyed by component name.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
