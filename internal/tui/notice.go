package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbr1/matrix-editor/internal/session"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func (m *Model) startNotice(n session.Notice, d time.Duration) tea.Cmd {
	m.notice = n

	// bump sequence to invalidate older timers
	m.noticeSeq++
	id := m.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

// flushNotice shows the latest notice the session produced during this
// update, if any.
func (m *Model) flushNotice() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	n := *m.pending
	m.pending = nil
	return m.startNotice(n, noticeDuration)
}
