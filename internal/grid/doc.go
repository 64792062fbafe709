// Package grid implements the fixed 8×13 bit matrix edited by matrixed.
//
// The matrix is stored row-major: cell (r, c) lives at index r*Cols+c. The
// linear '0'/'1' string form returned by [Grid.State] uses the same order and
// is what the storyboard and the clipboard exchange.
//
//   - [Grid]: the mutable matrix (toggle, set, clear, invert, randomize, shift)
//   - [IndexError]: coordinate outside the matrix
//   - [ValidationError]: a linear state of the wrong length or alphabet
//
// # Thread Safety
//
// Grid is NOT safe for concurrent use. All mutations are expected to happen on
// a single event loop (see package schedule).
package grid
