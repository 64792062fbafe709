package viz

import (
	"strings"

	"github.com/gbr1/matrix-editor/internal/grid"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas packs pixels into braille characters, 2 wide by 4 tall per cell.
type Canvas struct {
	Width, Height int // in characters
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// NewGridCanvas returns a canvas just large enough for one grid frame.
func NewGridCanvas() *Canvas {
	return NewCanvas((grid.Cols+1)/2, (grid.Rows+3)/4)
}

// Set lights the sub-pixel (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Plot draws a linear grid state, one sub-pixel per cell.
func (c *Canvas) Plot(state string) {
	c.Clear()
	for i := 0; i < len(state) && i < grid.Size; i++ {
		if state[i] == '1' {
			c.Set(i%grid.Cols, i/grid.Cols)
		}
	}
}

// Lines returns one string per character row.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		out[i] = string(row)
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
