// Package http provides the inbound HTTP adapter: the HTML pages under
// /todos, the JSON API under /api/v1, health probes and the metrics
// endpoint, plus server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/handlers"
)

// MetricsEndpoint mounts a scrape handler at Path. A nil Handler disables it.
type MetricsEndpoint struct {
	Path    string
	Handler http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	pageHandler *handlers.TodoPageHandler,
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	metrics MetricsEndpoint,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	if metrics.Handler != nil {
		r.Method(http.MethodGet, metrics.Path, metrics.Handler)
	}

	r.Get("/", pageHandler.Index)

	// HTML pages. Fixed paths are registered before /{id}.
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", pageHandler.List)
		r.Post("/", pageHandler.Create)
		r.Get("/new", pageHandler.New)
		r.Get("/search", pageHandler.Search)
		r.Get("/active", pageHandler.Active)
		r.Get("/completed", pageHandler.Completed)
		r.Get("/delete-completed", pageHandler.DeleteCompleted)

		r.Get("/{id}", pageHandler.Detail)
		r.Get("/{id}/delete", pageHandler.Delete)
		r.Get("/{id}/update", pageHandler.Edit)
		r.Post("/{id}/update", pageHandler.Update)
		r.Get("/{id}/toggle", pageHandler.Toggle)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Get("/todos/stats", todoHandler.Stats)
		r.Delete("/todos/completed", todoHandler.DeleteCompleted)
		r.Get("/todos/{id}", todoHandler.GetTodo)
		r.Patch("/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)
		r.Post("/todos/{id}/toggle", todoHandler.ToggleTodo)
	})

	return r
}
