package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultDelay(t *testing.T) {
	d := New("filter", 0)
	assert.Equal(t, DefaultDelay, d.Delay())
	assert.Equal(t, 500*time.Millisecond, d.Delay())
}

func TestTrigger_FiresAfterDelay(t *testing.T) {
	d := New("filter", 10*time.Millisecond)

	cmd := d.Trigger("fix")
	require.NotNil(t, cmd)

	start := time.Now()
	msg := cmd()
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	dm, ok := msg.(Msg)
	require.True(t, ok)
	value, accepted := d.Accept(dm)
	assert.True(t, accepted)
	assert.Equal(t, "fix", value)
}

func TestAccept_LastInputWins(t *testing.T) {
	d := New("filter", time.Millisecond)

	first := d.Trigger("f")().(Msg)
	second := d.Trigger("fi")().(Msg)
	third := d.Trigger("fix")().(Msg)

	_, ok := d.Accept(first)
	assert.False(t, ok, "superseded input must be discarded")
	_, ok = d.Accept(second)
	assert.False(t, ok, "superseded input must be discarded")

	value, ok := d.Accept(third)
	assert.True(t, ok)
	assert.Equal(t, "fix", value)
}

func TestAccept_OutOfOrderDelivery(t *testing.T) {
	d := New("filter", time.Millisecond)

	stale := d.Trigger("a")().(Msg)
	latest := d.Trigger("ab")().(Msg)

	value, ok := d.Accept(latest)
	require.True(t, ok)
	assert.Equal(t, "ab", value)

	_, ok = d.Accept(stale)
	assert.False(t, ok)
}

func TestCancel(t *testing.T) {
	d := New("filter", time.Millisecond)

	msg := d.Trigger("pending")().(Msg)
	d.Cancel()

	_, ok := d.Accept(msg)
	assert.False(t, ok)
}

func TestAccept_ForeignID(t *testing.T) {
	a := New("a", time.Millisecond)
	b := New("b", time.Millisecond)

	msg := a.Trigger("x")().(Msg)
	b.Trigger("y")

	_, ok := b.Accept(msg)
	assert.False(t, ok)
}

