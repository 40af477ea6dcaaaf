package todo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if !verr.Has(field) {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validTodo() Todo {
	return Todo{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Todo)
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{
			name:    "valid todo passes",
			modify:  func(_ *Todo) {},
			wantErr: false,
		},
		{
			name:      "empty title fails",
			modify:    func(td *Todo) { td.Title = "" },
			wantErr:   true,
			wantField: FieldTitle,
			wantMsg:   MsgTitleRequired,
		},
		{
			name:      "whitespace-only title fails",
			modify:    func(td *Todo) { td.Title = " \t " },
			wantErr:   true,
			wantField: FieldTitle,
			wantMsg:   MsgTitleRequired,
		},
		{
			name:    "title at 50 characters passes",
			modify:  func(td *Todo) { td.Title = strings.Repeat("a", MaxTitleLength) },
			wantErr: false,
		},
		{
			name:      "title at 51 characters fails",
			modify:    func(td *Todo) { td.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantErr:   true,
			wantField: FieldTitle,
			wantMsg:   MsgTitleTooLong,
		},
		{
			name:    "multibyte title counted in characters",
			modify:  func(td *Todo) { td.Title = strings.Repeat("할", MaxTitleLength) },
			wantErr: false,
		},
		{
			name:      "multibyte title over limit fails",
			modify:    func(td *Todo) { td.Title = strings.Repeat("할", MaxTitleLength+1) },
			wantErr:   true,
			wantField: FieldTitle,
			wantMsg:   MsgTitleTooLong,
		},
		{
			name:    "surrounding whitespace not counted",
			modify:  func(td *Todo) { td.Title = "  " + strings.Repeat("a", MaxTitleLength) + "  " },
			wantErr: false,
		},
		{
			name:    "empty description passes",
			modify:  func(td *Todo) { td.Description = "" },
			wantErr: false,
		},
		{
			name:      "description over limit fails",
			modify:    func(td *Todo) { td.Description = strings.Repeat("d", MaxDescriptionLength+1) },
			wantErr:   true,
			wantField: FieldDescription,
			wantMsg:   MsgDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td := validTodo()
			tt.modify(&td)
			err := td.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			requireValidationField(t, err, tt.wantField)
			var verr *domain.ValidationError
			if errors.As(err, &verr) && verr.Fields[tt.wantField] != tt.wantMsg {
				t.Errorf("Fields[%q] = %q, want %q", tt.wantField, verr.Fields[tt.wantField], tt.wantMsg)
			}
		})
	}
}

func TestTodo_Normalize(t *testing.T) {
	t.Parallel()

	td := Todo{Title: "  write report ", Description: "\tdraft\n"}
	td.Normalize()

	if td.Title != "write report" {
		t.Errorf("Title = %q, want %q", td.Title, "write report")
	}
	if td.Description != "draft" {
		t.Errorf("Description = %q, want %q", td.Description, "draft")
	}
}

func TestTodo_Toggle(t *testing.T) {
	t.Parallel()

	td := validTodo()

	td.Toggle()
	if !td.Completed {
		t.Fatal("Completed = false after one toggle, want true")
	}

	td.Toggle()
	if td.Completed {
		t.Fatal("Completed = true after two toggles, want false")
	}
}

func TestTodo_ApplyKeepsIdentity(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	td := Todo{ID: 7, Title: "old", CreatedAt: created}
	td.Apply(&Todo{ID: 99, Title: "new", Description: "d", Completed: true})

	if td.ID != 7 {
		t.Errorf("ID = %d, want 7", td.ID)
	}
	if !td.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", td.CreatedAt, created)
	}
	if td.Title != "new" || td.Description != "d" || !td.Completed {
		t.Errorf("Apply() did not copy mutable fields, got %+v", td)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	err := NotFound(3)

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("errors.As(err, *NotFoundError) = false, got %T", err)
	}
	if nf.Entity != Entity || nf.ID != 3 {
		t.Errorf("NotFoundError = %+v, want {todo 3}", nf)
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	done := Todo{Title: "work report", Completed: true}
	open := Todo{Title: "Work out", Completed: false}

	tests := []struct {
		name   string
		filter Filter
		todo   Todo
		want   bool
	}{
		{"zero filter matches active", Filter{}, open, true},
		{"zero filter matches completed", Filter{}, done, true},
		{"completed filter keeps completed", ByCompleted(true), done, true},
		{"completed filter drops active", ByCompleted(true), open, false},
		{"active filter keeps active", ByCompleted(false), open, true},
		{"keyword substring matches", Filter{Keyword: "work"}, done, true},
		{"keyword is case sensitive", Filter{Keyword: "work"}, open, false},
		{"keyword and status combine", Filter{Keyword: "work", Completed: boolPtr(false)}, done, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(&tt.todo); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func boolPtr(v bool) *bool { return &v }

func TestPatch_ApplyTo(t *testing.T) {
	t.Parallel()

	title := "new"
	td := Todo{ID: 2, Title: "old", Description: "keep", Completed: true}
	Patch{Title: &title}.ApplyTo(&td)

	if td.Title != "new" || td.Description != "keep" || !td.Completed {
		t.Errorf("ApplyTo() = %+v, want only title changed", td)
	}
	if !(Patch{}).IsEmpty() {
		t.Error("zero Patch IsEmpty() = false, want true")
	}
	if (Patch{Completed: boolPtr(false)}).IsEmpty() {
		t.Error("Patch with Completed IsEmpty() = true, want false")
	}
}
