package timer

import (
	"time"

	"honnef.co/go/gestures/debug"
)

var _ Scheduler = (*Manual)(nil)

// Manual is a Scheduler driven by a virtual clock. Time only moves when Advance or AdvanceTo is called, which
// makes it suitable for tests and for hosts that replay input with known timestamps.
type Manual struct {
	now     time.Duration
	last    Handle
	pending []*manualTimer
}

type manualTimer struct {
	h        Handle
	due      time.Duration
	interval time.Duration
	f        Func
}

func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, f Func) Handle {
	return m.add(d, 0, f)
}

func (m *Manual) Every(interval time.Duration, f Func) Handle {
	debug.Assert(interval > 0)
	return m.add(interval, interval, f)
}

func (m *Manual) add(d, interval time.Duration, f Func) Handle {
	m.last++
	m.pending = append(m.pending, &manualTimer{
		h:        m.last,
		due:      m.now + max(d, 0),
		interval: interval,
		f:        f,
	})
	return m.last
}

func (m *Manual) Cancel(h Handle) {
	for i, t := range m.pending {
		if t.h == h {
			copy(m.pending[i:], m.pending[i+1:])
			m.pending[len(m.pending)-1] = nil
			m.pending = m.pending[:len(m.pending)-1]
			return
		}
	}
}

// Pending returns the number of outstanding timers.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves the clock forward by d, running every timer that becomes due, in deadline order. Timers
// scheduled or cancelled by a callback take effect immediately.
func (m *Manual) Advance(d time.Duration) {
	m.AdvanceTo(m.now + d)
}

// AdvanceTo moves the clock forward to t. It does nothing if t is in the past.
func (m *Manual) AdvanceTo(t time.Duration) {
	for {
		next := m.next(t)
		if next == nil {
			break
		}
		m.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			m.Cancel(next.h)
		}
		next.f(m.now)
	}
	m.now = max(m.now, t)
}

// next returns the earliest timer due at or before t. Timers with equal deadlines run in scheduling order.
func (m *Manual) next(t time.Duration) *manualTimer {
	var best *manualTimer
	for _, tm := range m.pending {
		if tm.due > t {
			continue
		}
		if best == nil || tm.due < best.due || (tm.due == best.due && tm.h < best.h) {
			best = tm
		}
	}
	return best
}
