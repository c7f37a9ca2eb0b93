// Package toast draws the notification stack in the corner of the board.
package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

const (
	minWidth = 10
	maxWidth = 40
)

var glyphs = map[types.ToastLevel]string{
	types.ToastInfo:    "•",
	types.ToastSuccess: "✓",
}

// View renders toasts oldest first as one right-aligned block. It returns ""
// when there is nothing to show.
func View(toasts []types.Toast, st *styles.Styles, termWidth int) string {
	if len(toasts) == 0 {
		return ""
	}

	w := boxWidth(termWidth)
	boxes := make([]string, len(toasts))
	for i, t := range toasts {
		boxes[i] = styleFor(st, t.Level).Width(w).Render(label(t))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

// boxWidth is a third of the terminal, clamped to [minWidth, maxWidth]
func boxWidth(termWidth int) int {
	return max(minWidth, min(termWidth/3, maxWidth))
}

func label(t types.Toast) string {
	if g, ok := glyphs[t.Level]; ok {
		return g + " " + t.Message
	}
	return t.Message
}

func styleFor(st *styles.Styles, level types.ToastLevel) lipgloss.Style {
	if level == types.ToastSuccess {
		return st.ToastSuccess
	}
	return st.ToastInfo
}
