// Package compact renders the board as a single table, one row per task,
// for terminals too narrow for three columns.
package compact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/board"
)

// CompactView is the list alternative to the kanban board
type CompactView struct {
	tasks    []domain.Task
	cursorID int64
	styles   *Styles
	width    int
	height   int

	scrollOffset int
}

// NewCompactView creates a view over the given columns, flattened in
// pipeline order
func NewCompactView(columns []board.Column, width, height int) *CompactView {
	var tasks []domain.Task
	for _, col := range columns {
		tasks = append(tasks, col.Tasks...)
	}

	return &CompactView{
		tasks:  tasks,
		styles: NewStyles(),
		width:  width,
		height: height,
	}
}

// SetCursor highlights the task with the given id and scrolls to it
func (cv *CompactView) SetCursor(taskID int64) {
	cv.cursorID = taskID
	cv.ensureCursorVisible()
}

// Render renders the full compact view
func (cv *CompactView) Render() string {
	if len(cv.tasks) == 0 {
		return cv.renderEmptyState()
	}

	var b strings.Builder

	b.WriteString(cv.renderHeader())
	b.WriteString("\n")
	b.WriteString(cv.styles.Separator.Render(strings.Repeat("─", cv.width)))

	visibleRows := cv.calculateVisibleRows()
	startIdx := cv.scrollOffset
	endIdx := min(startIdx+visibleRows, len(cv.tasks))

	for i := startIdx; i < endIdx; i++ {
		b.WriteString("\n")
		b.WriteString(cv.renderRow(i, cv.tasks[i]))
	}

	if endIdx < len(cv.tasks) {
		b.WriteString("\n")
		b.WriteString(cv.styles.Separator.Render(
			fmt.Sprintf(" ↓ %d more tasks ↓ ", len(cv.tasks)-endIdx),
		))
	}

	return b.String()
}

func (cv *CompactView) renderEmptyState() string {
	return cv.styles.Empty.
		Width(cv.width).
		Render("No tasks to display\n\nPress 'a' to add a task or '/' to filter")
}

func (cv *CompactView) renderHeader() string {
	widths := cv.calculateColumnWidths()

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cv.styles.HeaderCell.Width(widths.number).Render("#"),
		cv.styles.HeaderCell.Width(widths.title).Render("Title"),
		cv.styles.HeaderCell.Width(widths.status).Render("Status"),
	)
}

func (cv *CompactView) renderRow(index int, task domain.Task) string {
	isActive := task.ID == cv.cursorID

	rowStyle := cv.styles.Row
	indicator := "  "
	if isActive {
		rowStyle = cv.styles.RowActive
		indicator = cv.styles.Cursor.Render("▶ ")
	}

	widths := cv.calculateColumnWidths()
	title := ansi.Truncate(task.Title, widths.title-1, "…")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		rowStyle.Width(widths.number).Render(fmt.Sprintf("%s%2d", indicator, index+1)),
		rowStyle.Width(widths.title).Render(title),
		cv.styles.Status(task.Status).Width(widths.status).Render(task.Status.String()),
	)
}

type columnWidths struct {
	number int
	title  int
	status int
}

// calculateColumnWidths gives the title whatever the fixed columns leave
func (cv *CompactView) calculateColumnWidths() columnWidths {
	const (
		numberWidth = 6
		statusWidth = 13
	)

	return columnWidths{
		number: numberWidth,
		title:  max(10, cv.width-numberWidth-statusWidth),
		status: statusWidth,
	}
}

// calculateVisibleRows leaves room for the header, separator and the
// scroll indicator
func (cv *CompactView) calculateVisibleRows() int {
	rows := cv.height - 2
	if len(cv.tasks) > rows {
		rows--
	}
	return max(rows, 1)
}

func (cv *CompactView) cursorIndex() int {
	for i, t := range cv.tasks {
		if t.ID == cv.cursorID {
			return i
		}
	}
	return -1
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible
func (cv *CompactView) ensureCursorVisible() {
	cursor := cv.cursorIndex()
	if cursor < 0 {
		cv.scrollOffset = 0
		return
	}

	visibleRows := cv.calculateVisibleRows()
	if cursor < cv.scrollOffset {
		cv.scrollOffset = cursor
	}
	if cursor >= cv.scrollOffset+visibleRows {
		cv.scrollOffset = cursor - visibleRows + 1
	}

	maxOffset := max(0, len(cv.tasks)-visibleRows)
	cv.scrollOffset = min(max(cv.scrollOffset, 0), maxOffset)
}
