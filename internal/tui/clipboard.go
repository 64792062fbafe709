package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbr1/matrix-editor/internal/clipboard"
)

const clipboardTimeout = 3 * time.Second

type clipboardOp int

const (
	opCopy clipboardOp = iota
	opExport
	opPaste
)

// clipboardMsg carries the outcome of a clipboard call back into Update.
type clipboardMsg struct {
	op   clipboardOp
	text string
	err  error
}

func writeCmd(cb clipboard.Clipboard, op clipboardOp, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()
		return clipboardMsg{op: op, text: text, err: cb.WriteText(ctx, text)}
	}
}

func readCmd(cb clipboard.Clipboard) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()
		text, err := cb.ReadText(ctx)
		return clipboardMsg{op: opPaste, text: text, err: err}
	}
}

func (m *Model) applyClipboard(msg clipboardMsg) {
	switch msg.op {
	case opCopy:
		m.sess.CopyResult(msg.text, msg.err)
	case opExport:
		m.sess.ExportResult(msg.text, msg.err)
	case opPaste:
		m.sess.PasteResult(msg.text, msg.err)
	}
}
