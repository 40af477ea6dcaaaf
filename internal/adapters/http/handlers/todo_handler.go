package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// TodoHandler serves the JSON API under /api/v1/todos.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /api/v1/todos. The optional completed and keyword
// query parameters narrow the result.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	todos, err := h.list(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

func (h *TodoHandler) list(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	switch {
	case filter.Keyword == "" && filter.Completed == nil:
		return h.svc.ListTodos(ctx)
	case filter.Keyword == "":
		return h.svc.ListTodosByCompleted(ctx, *filter.Completed)
	}

	todos, err := h.svc.SearchTodos(ctx, filter.Keyword)
	if err != nil || filter.Completed == nil {
		return todos, err
	}
	matched := todos[:0]
	for i := range todos {
		if filter.Matches(&todos[i]) {
			matched = append(matched, todos[i])
		}
	}
	return matched, nil
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/todos/"+formatID(created.ID))
	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// Stats handles GET /api/v1/todos/stats.
func (h *TodoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStatsResponse(stats))
}

// DeleteCompleted handles DELETE /api/v1/todos/completed.
func (h *TodoHandler) DeleteCompleted(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteCompletedTodos(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteCompletedResponse{Deleted: n})
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PATCH /api/v1/todos/{id}. Omitted fields keep their
// current value.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.PatchTodo(r.Context(), id, req.ToPatch())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}. Deleting an absent todo
// still returns 204.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTodo handles POST /api/v1/todos/{id}/toggle.
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	toggled, err := h.svc.ToggleCompleted(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(toggled))
}
