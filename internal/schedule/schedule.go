// Package schedule provides the repeating timer that drives animation and
// storyboard playback.
//
// Callbacks are always invoked on a single goroutine: [Manual] runs them from
// Advance, [Loop] runs them from Run. Code mutated by a callback therefore
// needs no locking as long as it is only touched from that goroutine.
package schedule

import "time"

// Cancel stops a repeating timer. Calling it more than once is harmless.
type Cancel func()

// Scheduler starts repeating timers.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
}
