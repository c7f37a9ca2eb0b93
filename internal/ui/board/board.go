// Package board renders the three-column task board.
package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Render renders the entire kanban board, one column per pipeline stage
func Render(
	columns []Column,
	cursor Cursor,
	s *styles.Styles,
	width int,
	height int,
) string {
	if len(columns) == 0 {
		return ""
	}

	// Columns share the width evenly
	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := -1
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, columnWidth, height, s)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
