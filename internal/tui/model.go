// Package tui is the interactive terminal editor.
package tui

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbr1/matrix-editor/internal/clipboard"
	"github.com/gbr1/matrix-editor/internal/config"
	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/logging"
	"github.com/gbr1/matrix-editor/internal/session"
	"github.com/gbr1/matrix-editor/internal/viz"
)

type Options struct {
	Config    *config.Config
	Clipboard clipboard.Clipboard
	Rand      *rand.Rand
}

type Model struct {
	sess   *session.Session
	sched  *Scheduler
	keys   Keymap
	help   help.Model
	theme  viz.Theme
	styles viz.Styles

	row, col int
	selected int
	playing  int
	preset   int

	width, height int

	notice    session.Notice
	noticeSeq int
	pending   *session.Notice
}

func New(opts Options) *Model {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	m := &Model{
		sched:   NewScheduler(),
		keys:    Keys,
		help:    help.New(),
		theme:   viz.GetTheme(opts.Config.Theme),
		playing: -1,
		width:   80,
		height:  24,
	}
	m.styles = viz.NewStyles(m.theme)
	m.sess = session.New(session.Deps{
		Config:    opts.Config,
		Clipboard: opts.Clipboard,
		Scheduler: m.sched,
		Rand:      opts.Rand,
		Notifier: session.NotifyFunc(func(n session.Notice) {
			m.pending = &n
		}),
	})
	m.sess.SetPlaybackFrameHook(func(i int) { m.playing = i })
	for i, name := range config.ListPresets() {
		if name == opts.Config.Preset {
			m.preset = i
		}
	}
	return m
}

func (m *Model) Session() *session.Session { return m.sess }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.sess.Stop()
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
	case timerMsg:
		cmds = append(cmds, m.sched.Handle(msg))
	case clipboardMsg:
		m.applyClipboard(msg)
	case clearNoticeMsg:
		if msg.id == m.noticeSeq {
			m.notice = session.Notice{}
		}
	}
	if !m.sess.Playback().Active {
		m.playing = -1
	}
	cmds = append(cmds, m.sched.Flush(), m.flushNotice())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.row = (m.row + grid.Rows - 1) % grid.Rows
	case key.Matches(msg, k.Down):
		m.row = (m.row + 1) % grid.Rows
	case key.Matches(msg, k.Left):
		m.col = (m.col + grid.Cols - 1) % grid.Cols
	case key.Matches(msg, k.Right):
		m.col = (m.col + 1) % grid.Cols
	case key.Matches(msg, k.Toggle):
		_ = m.sess.ToggleCell(m.row, m.col)
	case key.Matches(msg, k.Clear):
		m.sess.Clear()
	case key.Matches(msg, k.Randomize):
		m.sess.Randomize()
	case key.Matches(msg, k.Invert):
		m.sess.Invert()
	case key.Matches(msg, k.ShiftLeft):
		m.sess.Shift(grid.Left)
	case key.Matches(msg, k.ShiftRight):
		m.sess.Shift(grid.Right)
	case key.Matches(msg, k.Wrap):
		m.sess.ToggleWrap()
	case key.Matches(msg, k.Preset):
		names := config.ListPresets()
		m.preset = (m.preset + 1) % len(names)
		m.sess.LoadPreset(names[m.preset])
	case key.Matches(msg, k.Animate):
		m.sess.ToggleAnimate()
	case key.Matches(msg, k.Play):
		m.sess.TogglePlayback()
	case key.Matches(msg, k.Save):
		m.sess.SaveFrame()
		m.selected = m.sess.Board.Len() - 1
	case key.Matches(msg, k.ClearBoard):
		m.sess.ClearStoryboard()
		m.selected = 0
	case key.Matches(msg, k.Delete):
		if err := m.sess.RemoveFrame(m.selected); err != nil {
			logging.Warnf("tui: delete frame %d: %v", m.selected, err)
		}
		m.clampSelected()
	case key.Matches(msg, k.NextFrame):
		m.moveSelected(1)
	case key.Matches(msg, k.PrevFrame):
		m.moveSelected(-1)
	case key.Matches(msg, k.LoadFrame):
		if err := m.sess.LoadFrame(m.selected); err != nil {
			logging.Warnf("tui: load frame %d: %v", m.selected, err)
		}
	case key.Matches(msg, k.Copy):
		return writeCmd(m.sess.Clipboard(), opCopy, m.sess.CopyText())
	case key.Matches(msg, k.Export):
		return writeCmd(m.sess.Clipboard(), opExport, m.sess.ExportText())
	case key.Matches(msg, k.Paste):
		return readCmd(m.sess.Clipboard())
	case key.Matches(msg, k.Theme):
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) moveSelected(delta int) {
	n := m.sess.Board.Len()
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *Model) clampSelected() {
	if n := m.sess.Board.Len(); m.selected >= n {
		m.selected = max(n-1, 0)
	}
}

// Run starts the editor on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
