package session

import (
	"context"
	"math/rand"

	"github.com/gbr1/matrix-editor/internal/clipboard"
	"github.com/gbr1/matrix-editor/internal/config"
	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/logging"
	"github.com/gbr1/matrix-editor/internal/schedule"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/words"
)

// Mode is what the shared timer slot is currently doing.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAnimate
	ModePlayback
)

func (m Mode) String() string {
	switch m {
	case ModeAnimate:
		return "animate"
	case ModePlayback:
		return "playback"
	default:
		return "idle"
	}
}

// Deps are the collaborators a Session is built from. Nil fields get
// defaults: DefaultConfig, the None clipboard, a Manual scheduler, a
// time-seeded rng and a notifier that drops everything.
type Deps struct {
	Config    *config.Config
	Clipboard clipboard.Clipboard
	Scheduler schedule.Scheduler
	Rand      *rand.Rand
	Notifier  Notifier
}

type Session struct {
	Grid  *grid.Grid
	Board *storyboard.Storyboard

	cfg      *config.Config
	cb       clipboard.Clipboard
	sched    schedule.Scheduler
	rng      *rand.Rand
	notifier Notifier

	player  *storyboard.Player
	animate schedule.Cancel
	wrap    bool
	last    Notice
}

func New(d Deps) *Session {
	if d.Config == nil {
		d.Config = config.DefaultConfig()
	}
	if d.Clipboard == nil {
		d.Clipboard = clipboard.None{}
	}
	if d.Scheduler == nil {
		d.Scheduler = schedule.NewManual()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(d.Config.SeedOrNow()))
	}
	if d.Notifier == nil {
		d.Notifier = NotifyFunc(func(Notice) {})
	}
	s := &Session{
		Grid:     grid.New(),
		Board:    storyboard.New(),
		cfg:      d.Config,
		cb:       d.Clipboard,
		sched:    d.Scheduler,
		rng:      d.Rand,
		notifier: d.Notifier,
		wrap:     d.Config.Wrap,
	}
	s.player = storyboard.NewPlayer(s.Board, s.Grid, s.sched)
	if d.Config.Preset != "" {
		if p := config.GetPreset(d.Config.Preset); p != nil {
			_ = s.Grid.Load(p.State())
		}
	}
	return s
}

func (s *Session) notify(n Notice) Notice {
	s.last = n
	s.notifier.Notify(n)
	return n
}

// LastNotice returns the most recent notice.
func (s *Session) LastNotice() Notice { return s.last }

func (s *Session) Config() *config.Config { return s.cfg }
func (s *Session) Clipboard() clipboard.Clipboard { return s.cb }

// Words returns the current grid encoded as four 32-bit words.
func (s *Session) Words() [words.WordCount]words.Word {
	return words.Encode(s.Grid.Bits())
}

func (s *Session) Hex() [words.WordCount]string {
	return words.Hex(s.Words())
}

// Binary returns the grid's bits grouped by eight.
func (s *Session) Binary() string {
	return words.BinaryDisplay(s.Grid.State())
}

func (s *Session) Mode() Mode {
	switch {
	case s.animate != nil:
		return ModeAnimate
	case s.player.Active():
		return ModePlayback
	default:
		return ModeIdle
	}
}

func (s *Session) Playback() storyboard.PlaybackState { return s.player.State() }

func (s *Session) Wrap() bool { return s.wrap }

// ToggleWrap flips the wrap policy used by Shift.
func (s *Session) ToggleWrap() bool {
	s.wrap = !s.wrap
	logging.Infof("session: wrap=%v", s.wrap)
	return s.wrap
}

// SetPlaybackFrameHook registers fn to run after each frame playback applies.
func (s *Session) SetPlaybackFrameHook(fn func(index int)) {
	s.player.OnFrame = fn
}

// Grid commands

func (s *Session) ToggleCell(r, c int) error {
	return s.Grid.Toggle(r, c)
}

func (s *Session) SetCell(r, c int, v bool) error {
	return s.Grid.Set(r, c, v)
}

func (s *Session) Clear() {
	logging.Infof("session: clear")
	s.Grid.Clear()
}

func (s *Session) Invert() {
	logging.Infof("session: invert")
	s.Grid.Invert()
}

func (s *Session) Randomize() {
	logging.Infof("session: randomize")
	s.Grid.Randomize(s.rng)
}

// Shift moves every row one cell using the session's wrap policy.
func (s *Session) Shift(dir grid.Direction) {
	s.Grid.ShiftRows(dir, s.wrap)
}

// LoadPreset replaces the grid with a named preset.
func (s *Session) LoadPreset(name string) bool {
	p := config.GetPreset(name)
	if p == nil {
		return false
	}
	_ = s.Grid.Load(p.State())
	logging.Infof("session: preset %s", name)
	return true
}

// Storyboard commands

func (s *Session) SaveFrame() storyboard.Frame {
	f := s.Board.Save(s.Grid)
	logging.Infof("session: saved frame %d (%s)", s.Board.Len(), f.ID)
	s.notify(Notice{Text: msgFrameSaved, Kind: KindInfo})
	return f
}

// ClearStoryboard drops every frame and stops playback.
func (s *Session) ClearStoryboard() {
	if s.player.Active() {
		s.player.Stop()
	}
	s.Board.Clear()
	logging.Infof("session: storyboard cleared")
	s.notify(Notice{Text: msgBoardCleared, Kind: KindInfo})
}

func (s *Session) RemoveFrame(i int) error {
	if err := s.Board.Remove(i); err != nil {
		return err
	}
	if s.Board.Len() == 0 && s.player.Active() {
		s.player.Stop()
	}
	return nil
}

// LoadFrame restores frame i into the grid.
func (s *Session) LoadFrame(i int) error {
	return s.Board.Apply(i, s.Grid)
}

// Timer commands

// ToggleAnimate starts or stops the shift-left animation. Starting it stops
// playback.
func (s *Session) ToggleAnimate() Mode {
	if s.animate != nil {
		s.stopAnimate()
		return s.Mode()
	}
	s.player.Stop()
	s.animate = s.sched.Every(s.cfg.AnimateInterval(), func() {
		s.Grid.ShiftRows(grid.Left, true)
	})
	logging.Infof("session: animate every %v", s.cfg.AnimateInterval())
	return s.Mode()
}

// TogglePlayback starts or stops storyboard playback. Starting it stops the
// animation; with no frames it only stops whatever was running.
func (s *Session) TogglePlayback() Mode {
	if s.player.Active() {
		s.player.Stop()
		return s.Mode()
	}
	s.stopAnimate()
	if !s.player.Start(s.cfg.PlaybackInterval()) {
		s.notify(Notice{Text: msgNoFrames, Kind: KindWarn})
		return s.Mode()
	}
	logging.Infof("session: playing %d frames every %v", s.Board.Len(), s.cfg.PlaybackInterval())
	return s.Mode()
}

// Stop halts any running timer.
func (s *Session) Stop() {
	s.stopAnimate()
	s.player.Stop()
}

func (s *Session) stopAnimate() {
	if s.animate == nil {
		return
	}
	s.animate()
	s.animate = nil
}

// Clipboard commands. The *Result methods apply the outcome of a clipboard
// call made elsewhere, so a UI can run the I/O asynchronously.

// CopyText is what CopyFrame puts on the clipboard: the linear state.
func (s *Session) CopyText() string { return s.Grid.State() }

// ExportText is what ExportFrame puts on the clipboard: the hex words.
func (s *Session) ExportText() string { return storyboard.ExportFrame(s.Grid) }

func (s *Session) CopyFrame(ctx context.Context) Notice {
	text := s.CopyText()
	return s.CopyResult(text, s.cb.WriteText(ctx, text))
}

func (s *Session) CopyResult(text string, err error) Notice {
	if err != nil {
		logging.Warnf("session: copy failed: %v", err)
		return s.notify(Notice{Text: msgWriteFailed + err.Error(), Kind: KindError})
	}
	return s.notify(Notice{Text: msgCopied + text, Kind: KindSuccess})
}

func (s *Session) ExportFrame(ctx context.Context) Notice {
	text := s.ExportText()
	return s.ExportResult(text, s.cb.WriteText(ctx, text))
}

func (s *Session) ExportResult(text string, err error) Notice {
	if err != nil {
		logging.Warnf("session: export failed: %v", err)
		return s.notify(Notice{Text: msgWriteFailed + err.Error(), Kind: KindError})
	}
	return s.notify(Notice{Text: msgExported + text, Kind: KindSuccess})
}

func (s *Session) PasteFrame(ctx context.Context) Notice {
	text, err := s.cb.ReadText(ctx)
	return s.PasteResult(text, err)
}

// PasteResult imports text into the grid unless the read failed or the text
// does not reduce to exactly one frame of bits.
func (s *Session) PasteResult(text string, err error) Notice {
	if err != nil {
		logging.Warnf("session: paste failed: %v", err)
		return s.notify(Notice{Text: msgReadFailed + err.Error(), Kind: KindError})
	}
	if err := storyboard.ImportFrame(text, s.Grid); err != nil {
		logging.Warnf("session: paste rejected: %v", err)
		return s.notify(Notice{Text: msgInvalid, Kind: KindWarn})
	}
	return s.notify(Notice{Text: msgPasted, Kind: KindSuccess})
}
