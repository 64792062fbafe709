package grid

import (
	"errors"
	"fmt"
)

// Domain errors for grid operations.
var (
	// ErrOutOfBounds indicates a row or column outside the matrix.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidFrame indicates a linear state that cannot be loaded.
	ErrInvalidFrame = errors.New("grid: invalid frame")
)

// IndexError reports the offending coordinate.
type IndexError struct {
	Row, Col int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid: cell (%d,%d) outside %dx%d", e.Row, e.Col, Rows, Cols)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}

// ValidationError reports why a linear state was rejected.
type ValidationError struct {
	Got    int
	Want   int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrInvalidFrame, e.Reason)
	}
	return fmt.Sprintf("%s: got %d bits, want %d", ErrInvalidFrame, e.Got, e.Want)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFrame
}
