package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/words"
)

const (
	cellOn      = "██"
	cellOff     = "░░"
	thumbWidth  = 13 // braille cells + border + padding
	graphHeight = 4
	graphWidth  = 30
)

// RenderGrid draws the matrix. The cursor is hidden when (cr, cc) is outside
// the grid.
func RenderGrid(g *grid.Grid, cr, cc int, s Styles) string {
	var b strings.Builder
	for r := 0; r < grid.Rows; r++ {
		for c, on := range g.Row(r) {
			cell, style := cellOff, s.Off
			if on {
				cell, style = cellOn, s.On
			}
			if r == cr && c == cc {
				style = s.Cursor
				if !on {
					cell = "▒▒"
				}
			}
			b.WriteString(style.Render(cell))
		}
		if r < grid.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PlainGrid draws the matrix with '#' and '.', one line per row, without
// any styling.
func PlainGrid(g *grid.Grid) string {
	var b strings.Builder
	for r := 0; r < grid.Rows; r++ {
		for _, on := range g.Row(r) {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WordLabel is the chip text for word i: "#i: value (0x........)".
func WordLabel(i int, w words.Word) string {
	return fmt.Sprintf("#%d: %d (%s)", i, w.Value, w.Hex())
}

// RenderWords lays the words out as chips under a count header.
func RenderWords(ws [words.WordCount]words.Word, s Styles) string {
	chips := make([]string, len(ws))
	for i, w := range ws {
		chips[i] = s.Chip.Render(WordLabel(i, w))
	}
	header := s.Label.Render("words ") + s.Value.Render(fmt.Sprint(len(ws)))
	top := lipgloss.JoinHorizontal(lipgloss.Top, chips[0], chips[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, chips[2], chips[3])
	return lipgloss.JoinVertical(lipgloss.Left, header, top, bottom)
}

// RenderBinary shows the grouped bit string.
func RenderBinary(state string, s Styles) string {
	return s.Label.Render("binary ") + s.Value.Render(words.BinaryDisplay(state))
}

// Thumbnail renders one frame as a labelled braille block.
func Thumbnail(i int, f storyboard.Frame) string {
	c := NewGridCanvas()
	c.Plot(f.State)
	return fmt.Sprintf("#%d\n%s", i+1, c.String())
}

// RenderThumbnails lays frames out left to right, wrapping to width. The
// selected frame gets a double border and the playing one a thick border;
// pass -1 for none.
func RenderThumbnails(frames []storyboard.Frame, selected, playing, width int, s Styles) string {
	if len(frames) == 0 {
		return s.Muted.Render("no frames (s to save)")
	}
	perLine := width / thumbWidth
	if perLine < 1 {
		perLine = 1
	}
	var lines []string
	var line []string
	for i, f := range frames {
		style := s.Thumb
		switch i {
		case playing:
			style = s.Playing
		case selected:
			style = s.Selected
		}
		line = append(line, style.Render(Thumbnail(i, f)))
		if len(line) == perLine {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line = nil
		}
	}
	if len(line) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// DensityGraph plots how many cells are on in each frame. It needs at least
// two frames.
func DensityGraph(frames []storyboard.Frame) string {
	if len(frames) < 2 {
		return ""
	}
	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = float64(strings.Count(f.State, "1"))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("cells on per frame"))
}
