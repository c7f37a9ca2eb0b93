package domain

import "strings"

// Filter narrows the visible tasks by a title substring
type Filter struct {
	Query string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{}
}

// IsActive returns true if a query is set
func (f *Filter) IsActive() bool {
	return f.Query != ""
}

// Apply returns the tasks that match, in their original order.
// The input slice is never modified.
func (f *Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the title contains the query, ignoring case
func (f *Filter) Matches(t Task) bool {
	if f.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Query))
}

// Clear resets the filter
func (f *Filter) Clear() {
	f.Query = ""
}
