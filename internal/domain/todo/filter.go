package todo

import "strings"

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Completed *bool
	Keyword   string
}

// ByCompleted returns a Filter matching todos with the given completed flag.
func ByCompleted(completed bool) Filter {
	return Filter{Completed: &completed}
}

// Matches reports whether t satisfies every set criterion. Keyword matching
// is a case-sensitive substring test on the title.
func (f Filter) Matches(t *Todo) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Keyword != "" && !strings.Contains(t.Title, f.Keyword) {
		return false
	}
	return true
}
