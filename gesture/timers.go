package gesture

import (
	"fmt"
	"time"

	"honnef.co/go/gestures/debug"
	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/io/pointer"
	"honnef.co/go/gestures/timer"
)

// Purpose names what a recognizer timer is for. A recognizer has at most one outstanding timer per purpose.
type Purpose uint8

const (
	PurposeLongPress Purpose = iota
	PurposeTap
	PurposeSwipe
	PurposeVelocity

	numPurposes
)

func (p Purpose) String() string {
	switch p {
	case PurposeLongPress:
		return "long-press"
	case PurposeTap:
		return "tap"
	case PurposeSwipe:
		return "swipe-preempt"
	case PurposeVelocity:
		return "velocity-sample"
	default:
		return fmt.Sprintf("Purpose(%d)", uint8(p))
	}
}

// TimerEvent is the message a recognizer receives when one of its timers fires. It carries a snapshot of the
// contact that scheduled it; the recognizer still looks the contact up before acting on it.
type TimerEvent struct {
	Purpose Purpose
	Handle  timer.Handle
	Contact pointer.ID
	Origin  f32.Point
	// Start is when the contact went down, Time when the timer fired.
	Start time.Duration
	Time  time.Duration
}

func (TimerEvent) ImplementsEvent() {}

func (r *Recognizer) schedule(p Purpose, d time.Duration, c Contact) {
	debug.Assertf(d > 0, "%s timer with delay %v", p, d)
	if r.timers[p] != 0 {
		// Never two timers of one purpose.
		r.cancel(p)
	}
	var h timer.Handle
	fire := func(now time.Duration) {
		r.HandleEvent(TimerEvent{
			Purpose: p,
			Handle:  h,
			Contact: c.ID,
			Origin:  c.Origin,
			Start:   c.Start,
			Time:    now,
		})
	}
	if p == PurposeVelocity {
		h = r.timer.Every(d, fire)
	} else {
		h = r.timer.AfterFunc(d, fire)
	}
	r.timers[p] = h
}

func (r *Recognizer) cancel(p Purpose) {
	if h := r.timers[p]; h != 0 {
		r.timer.Cancel(h)
		r.timers[p] = 0
	}
}

func (r *Recognizer) pending(p Purpose) bool {
	return r.timers[p] != 0
}

func (r *Recognizer) cancelAll() {
	for p := range numPurposes {
		r.cancel(p)
	}
}
