package schedule

import (
	"context"
	"sync"
	"time"
)

// Loop is a real-time Scheduler. Tickers run in their own goroutines but only
// post to a channel; every callback executes on the goroutine calling Run.
type Loop struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func()
	fire   chan int
}

func NewLoop() *Loop {
	return &Loop{fns: make(map[int]func()), fire: make(chan int, 16)}
}

func (l *Loop) Every(interval time.Duration, fn func()) Cancel {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.fns[id] = fn
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				select {
				case l.fire <- id:
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// Run dispatches ticks until ctx is done. Ticks for timers cancelled in the
// meantime are dropped.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-l.fire:
			l.mu.Lock()
			fn := l.fns[id]
			l.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}

// Active reports how many timers have not been cancelled.
func (l *Loop) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
