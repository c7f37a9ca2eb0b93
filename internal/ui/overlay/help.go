package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles *Styles
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update closes the overlay on esc, q or ?
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return h, closeOverlay
		}
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range Categories() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.Category.Render(cat.Name + ":"))
		content.WriteString("\n")

		for _, binding := range cat.Bindings {
			key := h.styles.MenuKey.Width(10).Render(binding.Key)
			content.WriteString("  " + key + h.styles.MenuItem.Render(binding.Description) + "\n")
		}
	}
	return strings.TrimRight(content.String(), "\n")
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, 20
}

// Categories returns all keybinding categories
func Categories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Navigation",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Move between columns"},
				{Key: "j/k", Description: "Move up/down in column"},
				{Key: "g/G", Description: "Top/bottom of column"},
			},
		},
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "a", Description: "Add a task"},
				{Key: "Enter/m", Description: "Move task right"},
			},
		},
		{
			Name: "Filter",
			Bindings: []KeyBinding{
				{Key: "/", Description: "Filter by title"},
				{Key: "Esc", Description: "Clear filter"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "v", Description: "Toggle compact view"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
