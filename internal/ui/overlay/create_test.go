package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewAddTaskOverlay(t *testing.T) {
	o := NewAddTaskOverlay()
	require.NotNil(t, o)
	assert.Equal(t, "", o.Value())
	assert.Equal(t, "Add Task", o.Title())
	assert.NotNil(t, o.Init())
}

func TestAddTaskOverlay_Size(t *testing.T) {
	width, height := NewAddTaskOverlay().Size()
	assert.Equal(t, 64, width)
	assert.Equal(t, 6, height)
}

func TestAddTaskOverlay_View(t *testing.T) {
	view := NewAddTaskOverlay().View()
	assert.Contains(t, view, "Title:")
	assert.Contains(t, view, "Add task")
}

func TestAddTaskOverlay_Typing(t *testing.T) {
	o := NewAddTaskOverlay()
	typeInto(o, "Write spec")
	assert.Equal(t, "Write spec", o.Value())
}

func TestAddTaskOverlay_Submit(t *testing.T) {
	o := NewAddTaskOverlay()
	typeInto(o, "  Write spec  ")

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := batchMsgs(cmd)

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs, TaskSubmittedMsg{Title: "Write spec"})
	assert.Contains(t, msgs, CloseOverlayMsg{})
	assert.Equal(t, "", o.Value(), "input should reset after submit")
}

func TestAddTaskOverlay_SubmitBlankIgnored(t *testing.T) {
	for _, input := range []string{"", "   "} {
		o := NewAddTaskOverlay()
		typeInto(o, input)

		_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd, "input %q", input)
	}
}

func TestAddTaskOverlay_EscapeCloses(t *testing.T) {
	o := NewAddTaskOverlay()
	typeInto(o, "draft")

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}
