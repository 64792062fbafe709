package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FiresOnInterval(t *testing.T) {
	m := NewManual()
	n := 0
	m.Every(400*time.Millisecond, func() { n++ })

	m.Advance(399 * time.Millisecond)
	assert.Equal(t, 0, n)
	m.Advance(time.Millisecond)
	assert.Equal(t, 1, n)
	m.Advance(1200 * time.Millisecond)
	assert.Equal(t, 4, n)
	assert.Equal(t, 1600*time.Millisecond, m.Now())
}

func TestManual_CancelIsIdempotent(t *testing.T) {
	m := NewManual()
	n := 0
	cancel := m.Every(100*time.Millisecond, func() { n++ })
	m.Tick()
	cancel()
	cancel()
	m.Advance(time.Second)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_InterleavesTimers(t *testing.T) {
	m := NewManual()
	var order []string
	m.Every(200*time.Millisecond, func() { order = append(order, "a") })
	m.Every(300*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(600 * time.Millisecond)
	// ties go to the timer created first
	assert.Equal(t, []string{"a", "b", "a", "a", "b"}, order)
}

func TestManual_CallbackCancelsItself(t *testing.T) {
	m := NewManual()
	n := 0
	var cancel Cancel
	cancel = m.Every(100*time.Millisecond, func() {
		n++
		if n == 2 {
			cancel()
		}
	})
	m.Advance(time.Second)
	assert.Equal(t, 2, n)
}

func TestLoop_RunsCallbacksOnRunGoroutine(t *testing.T) {
	l := NewLoop()
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	n := 0
	var stop Cancel
	stop = l.Every(5*time.Millisecond, func() {
		n++
		if n == 3 {
			stop()
			cancelCtx()
		}
	})

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, l.Active())
}
