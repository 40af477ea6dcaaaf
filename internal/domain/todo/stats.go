package todo

// Stats holds aggregate counts over the full collection.
type Stats struct {
	Total     int
	Completed int
	Active    int
}

// CalculateStats derives the counts from a snapshot of todos.
func CalculateStats(todos []Todo) Stats {
	var s Stats
	for i := range todos {
		if todos[i].Completed {
			s.Completed++
		}
	}
	s.Total = len(todos)
	s.Active = s.Total - s.Completed
	return s
}
