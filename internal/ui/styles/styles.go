package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style
	ColumnEmpty        lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	TaskTitle   lipgloss.Style
	TaskDone    lipgloss.Style
	AdvanceHint lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	StatusMode   lipgloss.Style
	StatusHint   lipgloss.Style
	StatusInfo   lipgloss.Style
	StatusFilter lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1),

		ColumnEmpty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TaskDone: lipgloss.NewStyle().
			Foreground(Overlay1).
			Strikethrough(true),

		AdvanceHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusFilter: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),
	}
}

// StatusBadge returns the badge style for a pipeline stage
func (s *Styles) StatusBadge(status domain.Status) lipgloss.Style {
	color, ok := StatusColors[status]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(color).
		Padding(0, 1).
		Bold(true)
}
