// Package viz renders the editor's state for the terminal with lipgloss.
//
//   - [RenderGrid]: the 8×13 matrix with a cursor
//   - [RenderWords]: the four encoded words as chips
//   - [RenderThumbnails]: storyboard frames as braille thumbnails
//   - [DensityGraph]: set cells per frame across the storyboard
//   - Theme selection with 5 built-in color schemes
package viz
