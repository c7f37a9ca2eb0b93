// Package storage persists the task list as a single named entry in a local
// key-value store.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// DefaultKey is the entry name the task list is stored under
const DefaultKey = "tasks"

// Storage is the I/O boundary consumed by the task store.
//
// Load never fails: a missing or unparseable entry yields an empty list.
// Save overwrites the entry with the full sequence.
type Storage interface {
	Load() []domain.Task
	Save(tasks []domain.Task) error
}

func encode(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return json.Marshal(tasks)
}

func decode(data []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	if err := validate(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// validate rejects entries the store could never have written: ids must be
// positive and unique (0 means "no selection" to the cursor) and titles
// non-blank
func validate(tasks []domain.Task) error {
	seen := make(map[int64]bool, len(tasks))
	for i, task := range tasks {
		if task.ID <= 0 {
			return fmt.Errorf("entry %d: invalid id %d", i, task.ID)
		}
		if seen[task.ID] {
			return fmt.Errorf("entry %d: duplicate id %d", i, task.ID)
		}
		seen[task.ID] = true
		if strings.TrimSpace(task.Title) == "" {
			return fmt.Errorf("entry %d: %w", i, domain.ErrEmptyTitle)
		}
	}
	return nil
}
