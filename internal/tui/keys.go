package tui

import "github.com/charmbracelet/bubbles/key"

type Keymap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	Clear      key.Binding
	Randomize  key.Binding
	Invert     key.Binding
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	Wrap       key.Binding
	Preset     key.Binding
	Animate    key.Binding
	Play       key.Binding
	Save       key.Binding
	ClearBoard key.Binding
	Delete     key.Binding
	NextFrame  key.Binding
	PrevFrame  key.Binding
	LoadFrame  key.Binding
	Copy       key.Binding
	Paste      key.Binding
	Export     key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var Keys = Keymap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "toggle cell"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Randomize: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "randomize"),
	),
	Invert: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "invert"),
	),
	ShiftLeft: key.NewBinding(
		key.WithKeys("<", ","),
		key.WithHelp("<", "shift left"),
	),
	ShiftRight: key.NewBinding(
		key.WithKeys(">", "."),
		key.WithHelp(">", "shift right"),
	),
	Wrap: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle wrap"),
	),
	Preset: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next preset"),
	),
	Animate: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "animate"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/stop"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save frame"),
	),
	ClearBoard: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear storyboard"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete frame"),
	),
	NextFrame: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next frame"),
	),
	PrevFrame: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous frame"),
	),
	LoadFrame: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "load frame"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Paste: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "paste"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export hex"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Play, k.Animate, k.Copy, k.Paste, k.Help, k.Quit}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.Clear, k.Randomize, k.Invert, k.ShiftLeft, k.ShiftRight, k.Wrap, k.Preset},
		{k.Save, k.ClearBoard, k.Delete, k.NextFrame, k.PrevFrame, k.LoadFrame},
		{k.Animate, k.Play, k.Copy, k.Paste, k.Export, k.Theme, k.Help, k.Quit},
	}
}
