// Package todo holds the Todo entity, its validation rules, and the
// read-side helpers (filters and counts) shared by stores and services.
package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
)

// Entity is the name used in not-found errors for todos.
const Entity = "todo"

// Length limits, counted in characters (Unicode code points).
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 500
)

// Validated field names.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// User-facing validation messages.
const (
	MsgTitleRequired      = "제목을 입력해주세요."
	MsgTitleTooLong       = "제목은 50자를 초과할 수 없습니다."
	MsgDescriptionTooLong = "설명은 500자를 초과할 수 없습니다."
)

// Todo is a single task record.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(t.Title)
	switch {
	case title == "":
		fields[FieldTitle] = MsgTitleRequired
	case utf8.RuneCountInString(title) > MaxTitleLength:
		fields[FieldTitle] = MsgTitleTooLong
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		fields[FieldDescription] = MsgDescriptionTooLong
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Normalize trims surrounding whitespace from the free-text fields.
func (t *Todo) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
}

// Toggle flips the completed flag.
func (t *Todo) Toggle() {
	t.Completed = !t.Completed
}

// Apply overwrites the mutable fields with those of src. ID and CreatedAt
// are never touched.
func (t *Todo) Apply(src *Todo) {
	t.Title = src.Title
	t.Description = src.Description
	t.Completed = src.Completed
}

// Patch is a partial change to a todo. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// ApplyTo overlays the non-nil fields onto t.
func (p Patch) ApplyTo(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// NotFound returns the typed not-found error for the given todo ID.
func NotFound(id int64) error {
	return &domain.NotFoundError{Entity: Entity, ID: id}
}
