package compact

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Styles holds the styling for the compact list view
type Styles struct {
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style
	Empty      lipgloss.Style

	Row       lipgloss.Style
	RowActive lipgloss.Style
	Cursor    lipgloss.Style

	statuses map[domain.Status]lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	statuses := make(map[domain.Status]lipgloss.Style, len(styles.StatusColors))
	for status, color := range styles.StatusColors {
		statuses[status] = lipgloss.NewStyle().Foreground(color)
	}

	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface2),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true).
			Align(lipgloss.Center),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Mauve).
			Bold(true),

		statuses: statuses,
	}
}

// Status returns the text style for a pipeline stage
func (s *Styles) Status(status domain.Status) lipgloss.Style {
	if style, ok := s.statuses[status]; ok {
		return style
	}
	return s.Row
}
