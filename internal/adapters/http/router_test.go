package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/go-todo-web/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/view"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/mocks"
)

type routerDeps struct {
	svc      *mocks.MockTodoService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, metrics adapthttp.MetricsEndpoint, mws ...func(http.Handler) http.Handler) (http.Handler, routerDeps) {
	t.Helper()

	renderer, err := view.New()
	require.NoError(t, err)

	deps := routerDeps{
		svc:      mocks.NewMockTodoService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}
	router := adapthttp.NewRouter(
		handlers.NewTodoPageHandler(deps.svc, renderer),
		handlers.NewTodoHandler(deps.svc),
		handlers.NewHealthHandler(deps.registry),
		metrics,
		mws...,
	)
	return router, deps
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.MetricsEndpoint{Path: "/metrics", Handler: http.NotFoundHandler()})

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /metrics",
		"GET /",
		"GET /todos/",
		"POST /todos/",
		"GET /todos/new",
		"GET /todos/search",
		"GET /todos/active",
		"GET /todos/completed",
		"GET /todos/delete-completed",
		"GET /todos/{id}",
		"GET /todos/{id}/delete",
		"GET /todos/{id}/update",
		"POST /todos/{id}/update",
		"GET /todos/{id}/toggle",
		"GET /api/v1/todos",
		"POST /api/v1/todos",
		"GET /api/v1/todos/stats",
		"DELETE /api/v1/todos/completed",
		"GET /api/v1/todos/{id}",
		"PATCH /api/v1/todos/{id}",
		"DELETE /api/v1/todos/{id}",
		"POST /api/v1/todos/{id}/toggle",
	}

	chiRouter, ok := router.(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, key := range expectedRoutes {
		assert.True(t, registered[key], "route %s not registered", key)
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.MetricsEndpoint{Path: "/metrics"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, deps := newTestRouter(t, adapthttp.MetricsEndpoint{}, testMW)
	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.True(t, called, "middleware was not called")
}

func TestRouter_FixedPathsWinOverID(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, adapthttp.MetricsEndpoint{})
	deps.svc.EXPECT().ListTodosByCompleted(mock.Anything, true).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos/completed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListPage(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, adapthttp.MetricsEndpoint{})
	deps.svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{}, nil)
	deps.svc.EXPECT().Stats(mock.Anything).Return(todo.Stats{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
}

func TestRouter_APIList(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, adapthttp.MetricsEndpoint{})
	deps.svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"todos":[],"count":0}`, rec.Body.String())
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.MetricsEndpoint{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.MetricsEndpoint{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/todos", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
