package types

import "time"

// DefaultToastDuration is how long a toast stays on screen
const DefaultToastDuration = 3 * time.Second

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
)

// NewToast creates a toast that expires DefaultToastDuration after now
func NewToast(level ToastLevel, message string, now time.Time) Toast {
	return Toast{
		Level:   level,
		Message: message,
		Expires: now.Add(DefaultToastDuration),
	}
}

// Expired reports whether the toast should no longer be shown at now
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}

// PruneToasts returns the toasts still live at now, keeping their order
func PruneToasts(toasts []Toast, now time.Time) []Toast {
	live := toasts[:0:0]
	for _, t := range toasts {
		if !t.Expired(now) {
			live = append(live, t)
		}
	}
	return live
}
