package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
)

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	On       lipgloss.Style
	Off      lipgloss.Style
	Cursor   lipgloss.Style
	Chip     lipgloss.Style
	Panel    lipgloss.Style
	Thumb    lipgloss.Style
	Selected lipgloss.Style
	Playing  lipgloss.Style
	Status   lipgloss.Style
	KeyHint  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Label: lipgloss.NewStyle().Foreground(t.Muted),
		Value: lipgloss.NewStyle().Foreground(t.Text),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		On:    lipgloss.NewStyle().Foreground(t.On),
		Off:   lipgloss.NewStyle().Foreground(t.Off),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Cursor),
		Chip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Foreground(t.Text).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1),
		Thumb: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Muted).
			Foreground(t.On).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Cursor).
			Foreground(t.On).
			Padding(0, 1),
		Playing: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Success).
			Foreground(t.On).
			Padding(0, 1),
		Status:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// GradientText colors each rune of text along a Lab blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var out strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := a.BlendLab(b, t).Clamped()
		out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return out.String()
}

// Separator draws a decorative rule of the given width.
func Separator(width int, s Styles) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Muted.Render(left + " ◆ " + right)
}

// NoticeIcon mirrors the severity of a notice.
func NoticeIcon(kind string) string {
	switch kind {
	case "info":
		return "ℹ"
	case "success":
		return "✓"
	case "warn":
		return "!"
	case "error":
		return "×"
	}
	return ""
}

// RenderNotice wraps msg to width and frames it in the color for kind.
func RenderNotice(msg, kind string, width int, t Theme) string {
	if msg == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	color := t.Secondary
	switch kind {
	case "success":
		color = t.Success
	case "warn":
		color = t.Warning
	case "error":
		color = t.Error
	}
	if icon := NoticeIcon(kind); icon != "" {
		msg = icon + " " + msg
	}
	body := wordwrap.String(msg, width-4)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1).
		Render(body)
}
