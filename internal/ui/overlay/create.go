package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TaskSubmittedMsg is emitted when the user submits a non-blank title
type TaskSubmittedMsg struct {
	Title string
}

// AddTaskOverlay is the single-field form for a new task
type AddTaskOverlay struct {
	input  textinput.Model
	styles *Styles
}

// NewAddTaskOverlay creates a new add-task overlay
func NewAddTaskOverlay() *AddTaskOverlay {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	return &AddTaskOverlay{
		input:  ti,
		styles: New(),
	}
}

// Init initializes the overlay
func (a *AddTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (a *AddTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			return a, closeOverlay
		case tea.KeyEnter:
			return a, a.submit()
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit emits the title and closes. A blank title is ignored and the
// overlay stays open.
func (a *AddTaskOverlay) submit() tea.Cmd {
	title := strings.TrimSpace(a.input.Value())
	if title == "" {
		return nil
	}

	a.input.SetValue("")
	return tea.Batch(
		func() tea.Msg { return TaskSubmittedMsg{Title: title} },
		closeOverlay,
	)
}

// Value returns the current input text
func (a *AddTaskOverlay) Value() string {
	return a.input.Value()
}

// View renders the form
func (a *AddTaskOverlay) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Label.Render("Title:"))
	b.WriteString("  ")
	b.WriteString(a.input.View())
	b.WriteString("\n")

	hints := []string{
		a.styles.MenuKey.Render("Enter") + " " + a.styles.Footer.UnsetMarginTop().Render("Add task"),
		a.styles.MenuKey.Render("Esc") + " " + a.styles.Footer.UnsetMarginTop().Render("Cancel"),
	}
	b.WriteString(a.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (a *AddTaskOverlay) Title() string {
	return "Add Task"
}

// Size returns the overlay dimensions
func (a *AddTaskOverlay) Size() (width, height int) {
	return 64, 6
}
