// Package navigation tracks the board cursor by task id so the selection
// survives filtering and tasks moving between columns.
package navigation

import (
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/board"
)

// Position represents a computed position in the board
type Position struct {
	Column int  // 0=Todo, 1=InProgress, 2=Done
	Task   int  // Index within the column
	Valid  bool // Whether a task is under the cursor
}

// Cursor tracks the selected task by ID. A zero TaskID means no selection.
type Cursor struct {
	TaskID         int64
	FallbackColumn int // Column to use when TaskID is not visible
}

// FindPosition computes the position of the cursor's task in the given columns
func (c *Cursor) FindPosition(columns []board.Column) Position {
	if c.TaskID != 0 {
		for colIdx, col := range columns {
			for taskIdx, task := range col.Tasks {
				if task.ID == c.TaskID {
					return Position{Column: colIdx, Task: taskIdx, Valid: true}
				}
			}
		}
	}

	// Nothing selected or task filtered out: first task of the fallback column
	col := c.FallbackColumn
	if col < 0 || col >= len(columns) {
		col = 0
	}
	if col < len(columns) && len(columns[col].Tasks) > 0 {
		return Position{Column: col, Task: 0, Valid: true}
	}
	return Position{Column: col, Task: 0, Valid: false}
}

// SetTask updates the cursor to point to a specific task
func (c *Cursor) SetTask(taskID int64, column int) {
	c.TaskID = taskID
	c.FallbackColumn = column
}

// MoveVertical moves up or down within a column, returns new task ID
func (c *Cursor) MoveVertical(columns []board.Column, delta int) int64 {
	pos := c.FindPosition(columns)
	if !pos.Valid || pos.Column >= len(columns) {
		return c.TaskID
	}

	col := columns[pos.Column]
	newIdx := min(max(pos.Task+delta, 0), len(col.Tasks)-1)

	c.TaskID = col.Tasks[newIdx].ID
	c.FallbackColumn = pos.Column
	return c.TaskID
}

// MoveHorizontal moves left or right to adjacent column
func (c *Cursor) MoveHorizontal(columns []board.Column, delta int) int64 {
	pos := c.FindPosition(columns)
	return c.JumpToColumn(columns, pos.Column+delta)
}

// JumpToStart moves to first task in current column
func (c *Cursor) JumpToStart(columns []board.Column) int64 {
	pos := c.FindPosition(columns)
	if pos.Valid {
		c.SetTask(columns[pos.Column].Tasks[0].ID, pos.Column)
	}
	return c.TaskID
}

// JumpToEnd moves to last task in current column
func (c *Cursor) JumpToEnd(columns []board.Column) int64 {
	pos := c.FindPosition(columns)
	if pos.Valid {
		tasks := columns[pos.Column].Tasks
		c.SetTask(tasks[len(tasks)-1].ID, pos.Column)
	}
	return c.TaskID
}

// JumpToColumn moves to a specific column, keeping relative row position
func (c *Cursor) JumpToColumn(columns []board.Column, colIdx int) int64 {
	if len(columns) == 0 {
		return c.TaskID
	}
	colIdx = min(max(colIdx, 0), len(columns)-1)

	pos := c.FindPosition(columns)
	c.FallbackColumn = colIdx

	if tasks := columns[colIdx].Tasks; len(tasks) > 0 {
		// Keep the same row, or clamp to column size
		taskIdx := min(pos.Task, len(tasks)-1)
		c.TaskID = tasks[taskIdx].ID
	} else {
		c.TaskID = 0
	}
	return c.TaskID
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		cursor: Cursor{},
	}
}

// GetPosition returns the computed position of the cursor in the given columns
func (s *Service) GetPosition(columns []board.Column) Position {
	return s.cursor.FindPosition(columns)
}

// GetCurrentTask returns the task under the cursor, or nil
func (s *Service) GetCurrentTask(columns []board.Column) *domain.Task {
	pos := s.cursor.FindPosition(columns)
	if !pos.Valid {
		return nil
	}

	task := columns[pos.Column].Tasks[pos.Task]
	return &task
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(columns []board.Column) {
	s.cursor.MoveVertical(columns, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(columns []board.Column) {
	s.cursor.MoveVertical(columns, -1)
}

// MoveLeft moves cursor to left column
func (s *Service) MoveLeft(columns []board.Column) {
	s.cursor.MoveHorizontal(columns, -1)
}

// MoveRight moves cursor to right column
func (s *Service) MoveRight(columns []board.Column) {
	s.cursor.MoveHorizontal(columns, 1)
}

// GotoTop moves cursor to first task in column
func (s *Service) GotoTop(columns []board.Column) {
	s.cursor.JumpToStart(columns)
}

// GotoBottom moves cursor to last task in column
func (s *Service) GotoBottom(columns []board.Column) {
	s.cursor.JumpToEnd(columns)
}

// SelectTask directly sets the cursor to a specific task
func (s *Service) SelectTask(taskID int64, column int) {
	s.cursor.SetTask(taskID, column)
}
