// Package debounce delays rapidly repeated input until a quiet period
// elapses, so only the last value in a burst is applied.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period applied to filter input
const DefaultDelay = 500 * time.Millisecond

// Msg is delivered when a debounce timer fires
type Msg struct {
	ID    string
	Tag   int
	Value string
}

// Debouncer tracks the generation of the latest pending timer. Each Trigger
// starts a new generation, which cancels every earlier pending timer: their
// messages still arrive but Accept rejects them.
type Debouncer struct {
	id    string
	delay time.Duration
	tag   int
}

// New creates a debouncer. The id distinguishes messages from several
// debouncers sharing one program.
func New(id string, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{id: id, delay: delay}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger starts a new timer for value and returns the command that fires it
func (d *Debouncer) Trigger(value string) tea.Cmd {
	d.tag++
	id, tag := d.id, d.tag
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return Msg{ID: id, Tag: tag, Value: value}
	})
}

// Accept returns the value carried by msg if it belongs to this debouncer and
// is from the latest generation
func (d *Debouncer) Accept(msg Msg) (string, bool) {
	if msg.ID != d.id || msg.Tag != d.tag {
		return "", false
	}
	return msg.Value, true
}

// Cancel discards any pending timer
func (d *Debouncer) Cancel() {
	d.tag++
}

