// Package overlay contains the modal and inline overlays drawn over the board.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

func closeOverlay() tea.Msg {
	return CloseOverlayMsg{}
}
