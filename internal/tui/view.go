package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gbr1/matrix-editor/internal/session"
	"github.com/gbr1/matrix-editor/internal/viz"
)

var titleCase = cases.Title(language.English)

func (m *Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(viz.GradientText("MATRIX EDITOR", m.theme.Primary, m.theme.Secondary))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render("8×13 → 4 words"))
	b.WriteString("\n")
	b.WriteString(viz.Separator(m.width-2, s))
	b.WriteString("\n")

	gridPanel := s.Panel.Render(viz.RenderGrid(m.sess.Grid, m.row, m.col, s))
	wordsPanel := viz.RenderWords(m.sess.Words(), s)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, gridPanel, " ", wordsPanel))
	b.WriteString("\n")
	b.WriteString(viz.RenderBinary(m.sess.Grid.State(), s))
	b.WriteString("\n\n")

	b.WriteString(s.Title.Render(fmt.Sprintf("Storyboard (%d)", m.sess.Board.Len())))
	b.WriteString("\n")
	frames := m.sess.Board.Frames()
	b.WriteString(viz.RenderThumbnails(frames, m.selected, m.playing, m.width, s))
	b.WriteString("\n")
	if graph := viz.DensityGraph(frames); graph != "" {
		b.WriteString(s.Muted.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.notice.Text != "" {
		b.WriteString(viz.RenderNotice(m.notice.Text, m.notice.Kind.String(), min(m.width, 60), m.theme))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) statusLine() string {
	s := m.styles
	mode := m.sess.Mode()
	modeText := s.Muted.Render(mode.String())
	if mode != session.ModeIdle {
		modeText = s.Status.Render("● " + mode.String())
	}
	if mode == session.ModePlayback && m.playing >= 0 {
		modeText += s.Muted.Render(fmt.Sprintf(" #%d", m.playing+1))
	}
	wrap := "off"
	if m.sess.Wrap() {
		wrap = "on"
	}
	parts := []string{
		modeText,
		s.Label.Render("wrap ") + s.Value.Render(wrap),
		s.Label.Render("cursor ") + s.Value.Render(fmt.Sprintf("%d,%d", m.row, m.col)),
		s.Label.Render("theme ") + s.Value.Render(titleCase.String(m.theme.Name)),
		s.Label.Render("clipboard ") + s.Value.Render(m.sess.Clipboard().Name()),
	}
	return strings.Join(parts, s.Muted.Render(" │ "))
}
