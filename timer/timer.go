// Package timer provides the timer services gesture recognizers schedule their disambiguation deadlines on.
//
// All implementations share one contract: callbacks run on the same goroutine that delivers input events,
// never from inside AfterFunc or Every, and a cancelled handle never fires again, even if its deadline has
// already passed and the firing is queued.
package timer

import "time"

// Handle identifies a scheduled timer. The zero Handle never refers to a timer and can be used to mean
// "nothing scheduled".
type Handle uint64

// Func is called when a timer fires. now is the scheduler's time at the deadline, on the same time base as
// [Scheduler.Now].
type Func func(now time.Duration)

type Scheduler interface {
	// AfterFunc schedules f to run once, d from now.
	AfterFunc(d time.Duration, f Func) Handle
	// Every schedules f to run every interval until cancelled.
	Every(interval time.Duration, f Func) Handle
	// Cancel stops the timer. Cancelling a timer that has fired or that was already cancelled is a no-op.
	Cancel(h Handle)
	// Now returns the current time, relative to an arbitrary but fixed epoch.
	Now() time.Duration
}
