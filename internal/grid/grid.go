package grid

import (
	"math/rand"
	"strings"
)

const (
	Rows = 8
	Cols = 13
	Size = Rows * Cols
)

// Direction selects which way ShiftRows moves the cells.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Grid is the 8×13 bit matrix.
type Grid struct {
	cells [Size]bool
}

func New() *Grid {
	return &Grid{}
}

// FromState builds a grid from a linear '0'/'1' state.
func FromState(s string) (*Grid, error) {
	g := New()
	if err := g.Load(s); err != nil {
		return nil, err
	}
	return g, nil
}

func index(r, c int) (int, error) {
	if r < 0 || r >= Rows || c < 0 || c >= Cols {
		return 0, &IndexError{Row: r, Col: c}
	}
	return r*Cols + c, nil
}

func (g *Grid) Get(r, c int) (bool, error) {
	i, err := index(r, c)
	if err != nil {
		return false, err
	}
	return g.cells[i], nil
}

func (g *Grid) Set(r, c int, v bool) error {
	i, err := index(r, c)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

func (g *Grid) Toggle(r, c int) error {
	i, err := index(r, c)
	if err != nil {
		return err
	}
	g.cells[i] = !g.cells[i]
	return nil
}

func (g *Grid) Clear() {
	g.cells = [Size]bool{}
}

func (g *Grid) Invert() {
	for i := range g.cells {
		g.cells[i] = !g.cells[i]
	}
}

// Randomize turns each cell on with probability 0.5.
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() > 0.5
	}
}

// ShiftRows moves every row one cell in dir. With wrap the bit pushed off one
// end re-enters at the other, otherwise the vacated cell is cleared. Rows are
// shifted independently.
func (g *Grid) ShiftRows(dir Direction, wrap bool) {
	for r := 0; r < Rows; r++ {
		var row [Cols]bool
		copy(row[:], g.cells[r*Cols:(r+1)*Cols])
		out := g.cells[r*Cols : (r+1)*Cols]
		switch dir {
		case Left:
			copy(out, row[1:])
			out[Cols-1] = wrap && row[0]
		case Right:
			copy(out[1:], row[:Cols-1])
			out[0] = wrap && row[Cols-1]
		}
	}
}

// State returns the row-major linear form, one '0' or '1' per cell.
func (g *Grid) State() string {
	var b strings.Builder
	b.Grow(Size)
	for _, on := range g.cells {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (g *Grid) String() string { return g.State() }

// Load overwrites every cell from a linear state. The grid is left untouched
// when s is rejected.
func (g *Grid) Load(s string) error {
	if len(s) != Size {
		return &ValidationError{Got: len(s), Want: Size}
	}
	var next [Size]bool
	for i := 0; i < Size; i++ {
		switch s[i] {
		case '0':
		case '1':
			next[i] = true
		default:
			return &ValidationError{Got: len(s), Want: Size, Reason: "unexpected character " + string(s[i])}
		}
	}
	g.cells = next
	return nil
}

// Bits returns a row-major copy of the cells.
func (g *Grid) Bits() []bool {
	out := make([]bool, Size)
	copy(out, g.cells[:])
	return out
}

// Row returns a copy of row r; it panics on an invalid row like a slice index would.
func (g *Grid) Row(r int) []bool {
	out := make([]bool, Cols)
	copy(out, g.cells[r*Cols:(r+1)*Cols])
	return out
}

// Count returns the number of cells that are on.
func (g *Grid) Count() int {
	n := 0
	for _, on := range g.cells {
		if on {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

func (g *Grid) Equal(o *Grid) bool {
	return o != nil && g.cells == o.cells
}
