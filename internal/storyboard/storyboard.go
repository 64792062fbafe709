// Package storyboard records grid snapshots and plays them back in order.
package storyboard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/words"
)

var ErrNoFrame = errors.New("storyboard: no such frame")

// Frame is an immutable snapshot of the grid's linear state.
type Frame struct {
	ID    uuid.UUID
	State string
}

// Grid materialises the frame.
func (f Frame) Grid() *grid.Grid {
	g, err := grid.FromState(f.State)
	if err != nil {
		// frames are only built from grid.State
		panic(err)
	}
	return g
}

// Storyboard is the ordered list of saved frames; order is playback order.
type Storyboard struct {
	frames []Frame
}

func New() *Storyboard {
	return &Storyboard{}
}

// Save appends the grid's current state. Duplicates are kept.
func (s *Storyboard) Save(g *grid.Grid) Frame {
	f := Frame{ID: uuid.New(), State: g.State()}
	s.frames = append(s.frames, f)
	return f
}

func (s *Storyboard) Clear() {
	s.frames = nil
}

func (s *Storyboard) Len() int { return len(s.frames) }

// Frames returns a copy of the frame list.
func (s *Storyboard) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

func (s *Storyboard) At(i int) (Frame, error) {
	if i < 0 || i >= len(s.frames) {
		return Frame{}, fmt.Errorf("%w: index %d of %d", ErrNoFrame, i, len(s.frames))
	}
	return s.frames[i], nil
}

func (s *Storyboard) Remove(i int) error {
	if _, err := s.At(i); err != nil {
		return err
	}
	s.frames = append(s.frames[:i], s.frames[i+1:]...)
	return nil
}

// Apply loads frame i into g.
func (s *Storyboard) Apply(i int, g *grid.Grid) error {
	f, err := s.At(i)
	if err != nil {
		return err
	}
	return g.Load(f.State)
}

// ExportFrame renders the grid's current words in the clipboard export
// format, e.g. 0x00000000,0x00000000,0x00000000,0x00000000.
func ExportFrame(g *grid.Grid) string {
	return words.ExportText(words.Encode(g.Bits()))
}

// ImportFrame keeps only the '0' and '1' characters of raw and loads them
// into g. Anything other than exactly grid.Size bits is rejected with a
// *grid.ValidationError and g is left as it was.
func ImportFrame(raw string, g *grid.Grid) error {
	clean := words.Clean(raw)
	if len(clean) != grid.Size {
		return &grid.ValidationError{Got: len(clean), Want: grid.Size}
	}
	return g.Load(clean)
}
