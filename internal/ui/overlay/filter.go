package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// FilterInputMsg carries the raw filter text after every keystroke.
// It is not applied directly; the app debounces it first.
type FilterInputMsg struct {
	Query string
}

// FilterClearedMsg asks for the filter to be dropped immediately
type FilterClearedMsg struct{}

// FilterBar is the single-line filter input shown under the board
type FilterBar struct {
	input      textinput.Model
	matchCount int
	total      int
}

var filterBarStyle = lipgloss.NewStyle().
	Foreground(styles.Text).
	Background(styles.Surface0)

var matchCountStyle = lipgloss.NewStyle().
	Foreground(styles.Overlay1).
	Background(styles.Surface0)

// NewFilterBar creates a filter bar pre-filled with the active query
func NewFilterBar(query string) *FilterBar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter tasks..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50
	ti.SetValue(query)

	return &FilterBar{input: ti}
}

// SetMatchCount updates the "visible of total" display
func (f *FilterBar) SetMatchCount(visible, total int) {
	f.matchCount = visible
	f.total = total
}

// Value returns the current input text
func (f *FilterBar) Value() string {
	return f.input.Value()
}

// Init implements tea.Model
func (f *FilterBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (f *FilterBar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			// Keep the filter, hide the bar
			return f, closeOverlay

		case tea.KeyEsc:
			f.input.SetValue("")
			return f, tea.Batch(
				func() tea.Msg { return FilterClearedMsg{} },
				closeOverlay,
			)
		}
	}

	prevValue := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if value := f.input.Value(); value != prevValue {
		return f, tea.Batch(
			cmd,
			func() tea.Msg { return FilterInputMsg{Query: value} },
		)
	}

	return f, cmd
}

// View implements tea.Model
func (f *FilterBar) View() string {
	view := f.input.View()
	if f.input.Value() != "" {
		view += matchCountStyle.Render(fmt.Sprintf(" (%d of %d)", f.matchCount, f.total))
	}
	return filterBarStyle.Render(view)
}

// Title implements Overlay (the bar has no title)
func (f *FilterBar) Title() string {
	return ""
}

// Size implements Overlay: full width, single line
func (f *FilterBar) Size() (width, height int) {
	return 0, 1
}
