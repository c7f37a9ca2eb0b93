package statusbar

import "github.com/riordanpawley/taskboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: columns  j/k: tasks  a: add  Enter: move right  /: filter  ?: help  q: quit"
	case types.ModeAdd:
		return "Enter: add  Esc: cancel"
	case types.ModeFilter:
		return "Type to filter  Enter: keep  Esc: clear"
	case types.ModeHelp:
		return "Esc: close"
	default:
		return ""
	}
}
