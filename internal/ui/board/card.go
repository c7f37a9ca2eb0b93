package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// renderCard renders a task card. width is the total card width including
// its border.
func renderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(max(width-2, 1))

	// Cursor indicator
	marker := "  "
	if isCursor {
		marker = "▶ "
	}

	// Account for border (2), padding (2) and the marker
	maxTitleLen := max(width-4-ansi.StringWidth(marker), 1)
	title := ansi.Truncate(task.Title, maxTitleLen, "…")

	titleStyle := s.TaskTitle
	if task.Status.IsTerminal() {
		titleStyle = s.TaskDone
	}
	titleLine := marker + titleStyle.Render(title)

	// Non-terminal cards advertise the move-right action
	var actionLine string
	if task.Status.IsTerminal() {
		actionLine = s.StatusBadge(task.Status).Render("✓")
	} else {
		actionLine = s.AdvanceHint.Render("→ " + task.Status.Next().String())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, actionLine)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, width, s)
}
