package board

import "github.com/riordanpawley/taskboard/internal/domain"

// Column represents a kanban column with tasks
type Column struct {
	Status domain.Status
	Title  string
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// BuildColumns partitions the tasks that pass filter into one column per
// pipeline stage, in pipeline order. Tasks keep their relative order.
// A nil filter shows every task.
func BuildColumns(tasks []domain.Task, filter *domain.Filter) []Column {
	visible := tasks
	if filter != nil {
		visible = filter.Apply(tasks)
	}

	columns := make([]Column, len(domain.Statuses))
	for i, status := range domain.Statuses {
		columns[i] = Column{
			Status: status,
			Title:  status.String(),
			Tasks:  []domain.Task{},
		}
	}

	for _, task := range visible {
		if !task.Status.Valid() {
			continue
		}
		col := task.Status.Column()
		columns[col].Tasks = append(columns[col].Tasks, task)
	}

	return columns
}

// CountTasks returns the number of tasks across all columns
func CountTasks(columns []Column) int {
	n := 0
	for _, col := range columns {
		n += len(col.Tasks)
	}
	return n
}
