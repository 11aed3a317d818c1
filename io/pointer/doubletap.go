package pointer

import (
	"time"

	"honnef.co/go/gestures/f32"
)

// DoubleTapper sets Event.DoubleTap for hosts that don't detect double taps themselves. A press is the second
// half of a double tap if it starts within Window of the previous press and within Distance of it. The flag
// is set on that press and on its release.
type DoubleTapper struct {
	Window   time.Duration
	Distance float32

	last    Event
	hasLast bool
	pending map[ID]bool
}

// Filter returns ev with DoubleTap filled in. Wheel events pass through unchanged and don't count as taps.
func (dt *DoubleTapper) Filter(ev Event) Event {
	if ev.Wheel != WheelNone {
		return ev
	}
	switch ev.Kind {
	case Press:
		double := dt.hasLast &&
			ev.Time-dt.last.Time <= dt.Window &&
			f32.DistanceSquared(ev.Position, dt.last.Position) <= dt.Distance*dt.Distance
		if double {
			// A third press starts over instead of forming another double tap with the second.
			dt.hasLast = false
		} else {
			dt.last = ev
			dt.hasLast = true
		}
		if dt.pending == nil {
			dt.pending = make(map[ID]bool)
		}
		dt.pending[ev.PointerID] = double
		ev.DoubleTap = ev.DoubleTap || double
	case Release:
		ev.DoubleTap = ev.DoubleTap || dt.pending[ev.PointerID]
		delete(dt.pending, ev.PointerID)
	case Cancel:
		clear(dt.pending)
		dt.hasLast = false
	}
	return ev
}
