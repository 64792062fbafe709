package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbr1/matrix-editor/internal/schedule"
)

// timerMsg fires timer id. Ticks for cancelled ids are dropped.
type timerMsg struct{ id int }

type teaTimer struct {
	interval time.Duration
	fn       func()
}

// Scheduler runs repeating timers through the bubbletea event loop, so every
// callback executes inside Update.
type Scheduler struct {
	next   int
	timers map[int]*teaTimer
	queued []tea.Cmd
}

var _ schedule.Scheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*teaTimer)}
}

func (s *Scheduler) Every(interval time.Duration, fn func()) schedule.Cancel {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	s.next++
	id := s.next
	s.timers[id] = &teaTimer{interval: interval, fn: fn}
	s.queued = append(s.queued, arm(id, interval))
	return func() { delete(s.timers, id) }
}

func arm(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} })
}

// Handle runs the timer behind msg and re-arms it if it is still live.
func (s *Scheduler) Handle(msg timerMsg) tea.Cmd {
	t, ok := s.timers[msg.id]
	if !ok {
		return nil
	}
	t.fn()
	if _, ok := s.timers[msg.id]; !ok {
		return nil
	}
	return arm(msg.id, t.interval)
}

// Flush returns the first ticks of timers created since the last call.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *Scheduler) Active() int { return len(s.timers) }
