package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// cardHeight is the rendered height of one card: two content lines plus border
const cardHeight = 4

// renderColumn renders a kanban column with header and task cards
func renderColumn(
	col Column,
	cursorTask int,
	isActive bool,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Header, e.g. "─ Todo (3) ─────"
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Tasks))
	remainingWidth := width - ansi.StringWidth(headerText) - 2 // header padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	// Box height excluding the header line and the top/bottom border
	innerHeight := max(height-3, 0)
	cardWidth := max(width-4, 4)

	start, end := visibleRange(len(col.Tasks), cursorTask, innerHeight)

	var lines []string
	if start > 0 {
		lines = append(lines, s.ColumnEmpty.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, renderCard(col.Tasks[i], i == cursorTask, cardWidth, s))
	}
	if end < len(col.Tasks) {
		lines = append(lines, s.ColumnEmpty.Render(fmt.Sprintf("↓ %d more", len(col.Tasks)-end)))
	}

	content := ""
	if len(col.Tasks) == 0 {
		content = s.ColumnEmpty.Render("no tasks")
	} else {
		content = strings.Join(lines, "\n")
	}

	columnStyle := s.Column.Width(max(width-2, 0)).Height(innerHeight).MaxHeight(innerHeight + 2)
	columnContent := columnStyle.Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}

// visibleRange returns the window of cards that fits in height, scrolled so
// the cursor card is shown. Lines for the "more" markers are reserved when
// the column overflows.
func visibleRange(total, cursor, height int) (start, end int) {
	capacity := height / cardHeight
	if total <= capacity {
		return 0, total
	}

	// Reserve two lines for the scroll markers
	capacity = max((height-2)/cardHeight, 1)

	if cursor >= capacity {
		start = cursor - capacity + 1
	}
	end = min(start+capacity, total)
	return start, end
}
