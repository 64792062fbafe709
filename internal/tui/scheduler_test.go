package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_HandleRearmsLiveTimers(t *testing.T) {
	s := NewScheduler()
	assert.Nil(t, s.Flush())

	calls := 0
	cancel := s.Every(50*time.Millisecond, func() { calls++ })
	require.NotNil(t, s.Flush())
	assert.Nil(t, s.Flush(), "queued ticks are handed out once")

	assert.NotNil(t, s.Handle(timerMsg{id: 1}))
	assert.Equal(t, 1, calls)

	cancel()
	cancel()
	assert.Nil(t, s.Handle(timerMsg{id: 1}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Active())
}

func TestScheduler_CallbackCancellingItself(t *testing.T) {
	s := NewScheduler()
	var cancel func()
	cancel = s.Every(time.Second, func() { cancel() })
	assert.Nil(t, s.Handle(timerMsg{id: 1}))
	assert.Equal(t, 0, s.Active())
}
