// Package export writes grids and storyboards to image formats.
package export

import (
	"fmt"
	"strings"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/viz"
)

const background = "#0a0a0a"

// GridToSVG draws one frame as square cells, scale pixels per side.
func GridToSVG(g *grid.Grid, scale int, theme viz.Theme) string {
	if g == nil {
		return ""
	}
	if scale < 1 {
		scale = 1
	}
	width := grid.Cols * scale
	height := grid.Rows * scale
	inset := float64(scale) * 0.1
	side := float64(scale) - 2*inset

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	for r := 0; r < grid.Rows; r++ {
		for c, on := range g.Row(r) {
			fill := theme.Off
			if on {
				fill = theme.On
			}
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>
`, float64(c*scale)+inset, float64(r*scale)+inset, side, side, inset, fill)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to dots, offset by (x, y).
func CanvasToSVG(sb *strings.Builder, canvas *viz.Canvas, x, y, scale float64) {
	if canvas == nil {
		return
	}
	pixelMap := [4][2]rune{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := r - 0x2800

			baseX := x + float64(col)*scale*2
			baseY := y + float64(row)*scale*4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius)
					}
				}
			}
		}
	}
}

// StoryboardSheetSVG lays every frame out left to right as a contact sheet
// of dot thumbnails.
func StoryboardSheetSVG(frames []storyboard.Frame, scale float64, theme viz.Theme) string {
	if len(frames) == 0 {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}
	cellW := float64(grid.Cols+1) * scale // one dot column of gutter
	cellH := float64(grid.Rows) * scale
	width := cellW * float64(len(frames))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, cellH, width, cellH, background, theme.On)

	c := viz.NewGridCanvas()
	for i, f := range frames {
		c.Plot(f.State)
		CanvasToSVG(&sb, c, float64(i)*cellW, 0, scale)
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
