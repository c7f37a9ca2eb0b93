// Package statusbar renders the single-line bar at the bottom of the board.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	width   int
	styles  *styles.Styles
	query   string
	visible int
	total   int
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithFilter returns a copy showing the active query and visible/total counts
func (sb StatusBar) WithFilter(query string, visible, total int) StatusBar {
	sb.query = query
	sb.visible = visible
	sb.total = total
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())

	left := modeBadge
	if hints := GetHints(sb.mode); hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		left = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))
	}

	right := sb.renderCounts()

	// Status bar padding takes two cells
	inner := sb.width - 2
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		// Too narrow: drop the hints before the counts
		left = modeBadge
		gap = max(inner-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	}

	content := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}

func (sb StatusBar) renderCounts() string {
	if sb.query == "" {
		return sb.styles.StatusInfo.Render(fmt.Sprintf("%d tasks", sb.total))
	}

	filter := sb.styles.StatusFilter.Render(fmt.Sprintf("filter: %q", sb.query))
	counts := sb.styles.StatusInfo.Render(fmt.Sprintf(" %d/%d", sb.visible, sb.total))
	return filter + counts
}
