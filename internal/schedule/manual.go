package schedule

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler for tests. Time only moves when Advance
// is called.
type Manual struct {
	now    time.Duration
	nextID int
	timers map[int]*manualTimer
}

type manualTimer struct {
	id       int
	interval time.Duration
	due      time.Duration
	fn       func()
}

func NewManual() *Manual {
	return &Manual{timers: make(map[int]*manualTimer)}
}

func (m *Manual) Every(interval time.Duration, fn func()) Cancel {
	if interval <= 0 {
		interval = time.Millisecond
	}
	m.nextID++
	id := m.nextID
	m.timers[id] = &manualTimer{id: id, interval: interval, due: m.now + interval, fn: fn}
	return func() { delete(m.timers, id) }
}

// Advance moves the clock forward by d and fires every tick that falls due,
// in time order. Timers cancelled by a callback do not fire again.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		t := m.nextDue(end)
		if t == nil {
			break
		}
		m.now = t.due
		t.due += t.interval
		t.fn()
	}
	m.now = end
}

// Tick advances by exactly one interval of the earliest pending timer.
func (m *Manual) Tick() {
	t := m.nextDue(-1)
	if t == nil {
		return
	}
	m.Advance(t.due - m.now)
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	ids := make([]int, 0, len(m.timers))
	for id := range m.timers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var best *manualTimer
	for _, id := range ids {
		t := m.timers[id]
		if limit >= 0 && t.due > limit {
			continue
		}
		if best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}

// Pending reports how many timers are live.
func (m *Manual) Pending() int { return len(m.timers) }

// Now returns the simulated elapsed time.
func (m *Manual) Now() time.Duration { return m.now }
