package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open overlays; only the top one receives input
type Stack struct {
	overlays []Overlay
}

// NewStack creates a new empty overlay stack
func NewStack() *Stack {
	return &Stack{}
}

// Push opens o on top of the stack and returns its Init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes the top overlay. Returns nil if the stack is empty.
func (s *Stack) Pop() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}

	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top
}

// Current returns the top overlay, or nil
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty returns true if no overlay is open
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Len returns the number of open overlays
func (s *Stack) Len() int {
	return len(s.overlays)
}

// Update forwards msg to the top overlay, replacing it with the returned model
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	current := s.Current()
	if current == nil {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	newModel, cmd := current.Update(msg)
	if next, ok := newModel.(Overlay); ok {
		s.overlays[len(s.overlays)-1] = next
	}
	return cmd
}
