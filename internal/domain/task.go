// Package domain contains the core task board types.
package domain

import (
	"encoding/json"
	"fmt"
)

// Task is a unit of work on the board
type Task struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
}

// Status is a stage in the fixed forward-only pipeline
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
)

// Statuses is the pipeline order. Columns are rendered in this order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

var statusLabels = [...]string{"Todo", "In Progress", "Done"}

// String returns the display and persisted label
func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

// Valid reports whether s is one of the pipeline stages
func (s Status) Valid() bool {
	return s >= StatusTodo && s <= StatusDone
}

// Column returns the kanban column index for this status
func (s Status) Column() int {
	if !s.Valid() {
		return 0
	}
	return int(s)
}

// IsTerminal reports whether no further transition exists
func (s Status) IsTerminal() bool {
	return s == Statuses[len(Statuses)-1]
}

// Next returns the status one step further along the pipeline.
// The terminal status returns itself.
func (s Status) Next() Status {
	if !s.Valid() || s.IsTerminal() {
		return s
	}
	return Statuses[s.Column()+1]
}

// ParseStatus converts a persisted label back into a Status
func ParseStatus(label string) (Status, error) {
	for i, l := range statusLabels {
		if l == label {
			return Status(i), nil
		}
	}
	return StatusTodo, fmt.Errorf("unknown status %q", label)
}

// MarshalJSON encodes the status as its label
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status label
func (s *Status) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseStatus(label)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
