// Package types contains shared types used across the application.
package types

// Mode represents the current input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeFilter
	ModeHelp
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeAdd:
		return "ADD"
	case ModeFilter:
		return "FILTER"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}
