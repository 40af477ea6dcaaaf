package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgNoFields     = "at least one of title, description, completed is required"
)

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Validate checks that required fields are present. Length rules are
// enforced by the domain entity.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields[todo.FieldTitle] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a new, unsaved todo.
func (r *CreateTodoRequest) ToDomain() *todo.Todo {
	return &todo.Todo{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// UpdateTodoRequest represents the JSON body for a partial todo update.
// All fields are optional; nil means "do not change this field.".
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate checks that at least one field is present and that a provided
// title is not blank.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.ToPatch().IsEmpty() {
		fields["body"] = msgNoFields
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields[todo.FieldTitle] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}
