package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/flash"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/view"
	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Flash texts shown after page actions.
const (
	MsgCreated          = "할 일이 생성되었습니다."
	MsgUpdated          = "할 일이 수정되었습니다."
	MsgDeleted          = "할일이 삭제되었습니다."
	MsgNotFound         = "없는 할일입니다."
	MsgCompletedDeleted = "완료된 할일 삭제"
)

// Error page texts.
const (
	msgInternalError = "요청을 처리하지 못했습니다."
	msgUnavailable   = "잠시 후 다시 시도해주세요."
)

const listPath = "/todos"

// maxFormBytes bounds the urlencoded form body.
const maxFormBytes = 64 << 10

// TodoPageHandler serves the HTML pages under /todos. Mutations answer with
// a 303 redirect and a flash message; reads render a template.
type TodoPageHandler struct {
	svc      ports.TodoService
	renderer *view.Renderer
}

// NewTodoPageHandler creates a TodoPageHandler.
func NewTodoPageHandler(svc ports.TodoService, renderer *view.Renderer) *TodoPageHandler {
	return &TodoPageHandler{svc: svc, renderer: renderer}
}

// Index handles GET /.
func (h *TodoPageHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

// List handles GET /todos: every todo plus the counters.
func (h *TodoPageHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	todos, err := h.svc.ListTodos(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageList, &view.ListPage{
		Common: h.common(w, r),
		Todos:  todos,
		Stats:  &stats,
		Filter: view.FilterAll,
	})
}

// Search handles GET /todos/search?keyword=K. A missing keyword matches
// every todo.
func (h *TodoPageHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	todos, err := h.svc.SearchTodos(r.Context(), keyword)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageList, &view.ListPage{
		Common:  h.common(w, r),
		Todos:   todos,
		Filter:  view.FilterSearch,
		Keyword: keyword,
	})
}

// Active handles GET /todos/active.
func (h *TodoPageHandler) Active(w http.ResponseWriter, r *http.Request) {
	h.listByCompleted(w, r, false, view.FilterActive)
}

// Completed handles GET /todos/completed.
func (h *TodoPageHandler) Completed(w http.ResponseWriter, r *http.Request) {
	h.listByCompleted(w, r, true, view.FilterCompleted)
}

func (h *TodoPageHandler) listByCompleted(w http.ResponseWriter, r *http.Request, completed bool, filter string) {
	todos, err := h.svc.ListTodosByCompleted(r.Context(), completed)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageList, &view.ListPage{
		Common: h.common(w, r),
		Todos:  todos,
		Filter: filter,
	})
}

// New handles GET /todos/new.
func (h *TodoPageHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageForm, &view.FormPage{
		Common: h.common(w, r),
		IsNew:  true,
	})
}

// Create handles POST /todos.
func (h *TodoPageHandler) Create(w http.ResponseWriter, r *http.Request) {
	td, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	_, err := h.svc.CreateTodo(r.Context(), td)
	var verr *domain.ValidationError
	switch {
	case err == nil:
		redirect(w, r, listPath, flash.Info(MsgCreated))
	case errors.As(err, &verr):
		redirect(w, r, "/todos/new", flash.Error(verr.Message()))
	default:
		h.fail(w, r, err)
	}
}

// Detail handles GET /todos/{id}. An unknown id returns to the list.
func (h *TodoPageHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	td, err := h.svc.GetTodo(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Redirect(w, r, listPath, http.StatusSeeOther)
	case err != nil:
		h.fail(w, r, err)
	default:
		h.render(w, r, http.StatusOK, view.PageDetail, &view.DetailPage{
			Common: h.common(w, r),
			Todo:   *td,
		})
	}
}

// Edit handles GET /todos/{id}/update. An unknown id returns to the list.
func (h *TodoPageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	td, err := h.svc.GetTodo(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Redirect(w, r, listPath, http.StatusSeeOther)
	case err != nil:
		h.fail(w, r, err)
	default:
		h.render(w, r, http.StatusOK, view.PageForm, &view.FormPage{
			Common: h.common(w, r),
			Todo:   *td,
		})
	}
}

// Update handles POST /todos/{id}/update.
func (h *TodoPageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}
	td, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	_, err := h.svc.UpdateTodo(r.Context(), id, td)
	var verr *domain.ValidationError
	switch {
	case err == nil:
		redirect(w, r, "/todos/"+formatID(id), flash.Info(MsgUpdated))
	case errors.Is(err, domain.ErrNotFound):
		redirect(w, r, listPath, flash.Info(MsgNotFound))
	case errors.As(err, &verr):
		redirect(w, r, "/todos/"+formatID(id)+"/update", flash.Error(verr.Message()))
	default:
		h.fail(w, r, err)
	}
}

// Delete handles GET /todos/{id}/delete. Deleting an unknown id still
// reports success.
func (h *TodoPageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, listPath, flash.Message{Message: MsgDeleted, Status: flash.StatusDelete})
}

// Toggle handles GET /todos/{id}/toggle.
func (h *TodoPageHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	_, err := h.svc.ToggleCompleted(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Redirect(w, r, listPath, http.StatusSeeOther)
	case err != nil:
		h.fail(w, r, err)
	default:
		http.Redirect(w, r, "/todos/"+formatID(id), http.StatusSeeOther)
	}
}

// DeleteCompleted handles GET /todos/delete-completed.
func (h *TodoPageHandler) DeleteCompleted(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.DeleteCompletedTodos(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	redirect(w, r, listPath, flash.Info(MsgCompletedDeleted))
}

// parseForm reads title, description and completed from an urlencoded body.
func (h *TodoPageHandler) parseForm(w http.ResponseWriter, r *http.Request) (*todo.Todo, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, view.PageError, &view.ErrorPage{
			Status:    http.StatusBadRequest,
			Message:   http.StatusText(http.StatusBadRequest),
			RequestID: middleware.RequestIDFromContext(r.Context()),
		})
		return nil, false
	}

	return &todo.Todo{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Completed:   isChecked(r.PostFormValue("completed")),
	}, true
}

// isChecked interprets an HTML checkbox value.
func isChecked(v string) bool {
	return v == "on" || v == "true"
}

// pageID parses the {id} path parameter. A malformed id is treated like an
// unknown one and redirects to the list.
func pageID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return 0, false
	}
	return id, true
}

// redirect stores m as the flash message and answers 303.
func redirect(w http.ResponseWriter, r *http.Request, path string, m flash.Message) {
	flash.Set(w, m)
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// common consumes the pending flash message.
func (h *TodoPageHandler) common(w http.ResponseWriter, r *http.Request) view.Common {
	return view.Common{Flash: flash.Pop(w, r)}
}

func (h *TodoPageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	err := h.renderer.Render(w, status, page, data)
	if err == nil {
		return
	}

	logger := logging.FromContext(r.Context())
	if errors.Is(err, view.ErrWrite) {
		logger.WarnContext(r.Context(), "writing page failed",
			slog.String("page", page),
			slog.Any("error", err),
		)
		return
	}
	logger.ErrorContext(r.Context(), "rendering page failed",
		slog.String("page", page),
		slog.Any("error", err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// fail logs an unexpected error and renders the error page. An open store
// circuit yields 503, anything else 500.
func (h *TodoPageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, msgInternalError
	if errors.Is(err, domain.ErrUnavailable) {
		status, msg = http.StatusServiceUnavailable, msgUnavailable
	}

	logging.FromContext(r.Context()).ErrorContext(r.Context(), "page request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	h.render(w, r, status, view.PageError, &view.ErrorPage{
		Common:    h.common(w, r),
		Status:    status,
		Message:   msg,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}
