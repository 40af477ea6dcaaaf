// Package view renders the server-side HTML pages. Templates are embedded in
// the binary and parsed once; each page is executed into a buffer first so a
// template error never produces a half-written response.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/flash"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrWrite marks a failure to write an already started response. The status
// line has been sent, so callers must not write another one.
var ErrWrite = errors.New("writing response")

// Page names.
const (
	PageList   = "todos"
	PageForm   = "form"
	PageDetail = "detail"
	PageError  = "error"
)

// List filters shown as the active tab.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
	FilterSearch    = "search"
)

// Common holds fields every page shares.
type Common struct {
	Flash flash.Message
}

// ListPage is the data for the todo list. Stats is nil on filtered and
// search views.
type ListPage struct {
	Common
	Todos   []todo.Todo
	Stats   *todo.Stats
	Filter  string
	Keyword string
}

// FormPage is the data for the create and edit form.
type FormPage struct {
	Common
	Todo  todo.Todo
	IsNew bool
}

// DetailPage is the data for a single todo.
type DetailPage struct {
	Common
	Todo todo.Todo
}

// ErrorPage is the data for the generic error page.
type ErrorPage struct {
	Common
	Status    int
	Message   string
	RequestID string
}

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("2006-01-02 15:04")
	},
}

// Renderer executes the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{PageList, PageForm, PageDetail, PageError} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page with the given status code.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("executing %s template: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
