package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Styles holds overlay-specific styles
type Styles struct {
	Label     lipgloss.Style
	Input     lipgloss.Style
	Category  lipgloss.Style
	MenuItem  lipgloss.Style
	MenuKey   lipgloss.Style
	Separator lipgloss.Style
	Footer    lipgloss.Style
	Count     lipgloss.Style
}

// New creates overlay styles from the shared palette
func New() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		Category: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Count: lipgloss.NewStyle().
			Foreground(styles.Overlay1),
	}
}
