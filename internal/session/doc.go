// Package session owns the editor state and exposes every user action as a
// synchronous command handler.
//
// A [Session] holds the one grid, the storyboard, the playback controller and
// the single timer slot shared by animation and playback. The two timer modes
// are mutually exclusive: starting one stops the other.
//
// Clipboard and validation failures never escape as errors; they are turned
// into a [Notice] and leave the grid in its last valid state.
//
// # Thread Safety
//
// Session is NOT safe for concurrent use. Drive it from one goroutine and give
// it a scheduler whose callbacks run on that goroutine.
package session
