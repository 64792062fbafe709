package storyboard

import (
	"time"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/schedule"
)

const DefaultInterval = 400 * time.Millisecond

// PlaybackState is the transient position of a Player.
type PlaybackState struct {
	Active bool
	Index  int
}

// Player cycles the storyboard's frames into a grid on a repeating timer.
type Player struct {
	board  *Storyboard
	grid   *grid.Grid
	sched  schedule.Scheduler
	cancel schedule.Cancel
	index  int

	// OnFrame, when set, runs after every applied frame.
	OnFrame func(index int)
}

func NewPlayer(board *Storyboard, g *grid.Grid, sched schedule.Scheduler) *Player {
	return &Player{board: board, grid: g, sched: sched}
}

// Start begins playback from the first frame. It does nothing and returns
// false when the storyboard is empty. A running playback is stopped first.
func (p *Player) Start(interval time.Duration) bool {
	p.Stop()
	if p.board.Len() == 0 {
		return false
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	p.index = 0
	p.cancel = p.sched.Every(interval, p.tick)
	return true
}

// Stop cancels playback; it is a no-op when idle.
func (p *Player) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
	p.index = 0
}

// Toggle is the play/stop button: it stops a running playback, otherwise it
// starts one. It reports whether playback is running afterwards.
func (p *Player) Toggle(interval time.Duration) bool {
	if p.Active() {
		p.Stop()
		return false
	}
	return p.Start(interval)
}

func (p *Player) Active() bool { return p.cancel != nil }

func (p *Player) State() PlaybackState {
	return PlaybackState{Active: p.Active(), Index: p.index}
}

func (p *Player) tick() {
	n := p.board.Len()
	if n == 0 {
		p.Stop()
		return
	}
	if p.index >= n {
		p.index %= n
	}
	applied := p.index
	if err := p.board.Apply(applied, p.grid); err != nil {
		p.Stop()
		return
	}
	p.index = (p.index + 1) % n
	if p.OnFrame != nil {
		p.OnFrame(applied)
	}
}
