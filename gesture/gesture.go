/*
Package gesture turns contact events into high-level gestures: taps, double taps, secondary taps, long
presses, moves, swipes, pinch scaling, and wheel steps.

A Recognizer serves one surface. It holds exactly one State at a time and decides between competing
interpretations of the same input with timers instead of blocking:

  - A press starts a long-press timer and, unless one is already running, a tap timer as long as the double
    tap window. The press is Undetermined until one of them fires, the contact moves, or a second contact
    goes down.

  - A tap is only reported when the tap window has passed without the long-press timer still pending. That
    way a tap never fires underneath a long press, and a double tap reported by the host cancels the tap
    that would have been reported for the same presses.

  - A move starts a short swipe timer. If the contact has been fast enough when it fires, the move is ended
    where it started and a swipe is reported instead. Swipes are thus a reclassification of moves, not a
    separate detector.

  - Moves sample their velocity on a repeating timer. Each sample covers one interval only.

  - A second contact while Undetermined turns the gesture into scaling. A third contact is tolerated as a
    duplicate some hosts deliver, and ignored.

Timers fire as TimerEvents on the same goroutine as input events, so the recognizer is a plain state machine
with no locking. A fired timer whose handle no longer matches the recognizer's bookkeeping was cancelled
after its firing was queued and is ignored.

Every completed gesture ends with a reset: all timers are cancelled, all contacts forgotten, and the state
returns to StateIdle before another gesture can start.
*/
package gesture

import (
	"fmt"
	"time"

	"honnef.co/go/gestures/debug"
	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/io/pointer"
	"honnef.co/go/gestures/surface"
	"honnef.co/go/gestures/timer"

	"gioui.org/io/event"
)

type State uint8

const (
	// StateIdle is the state between gestures.
	StateIdle State = iota
	// StateUndetermined is a single contact that could still become a tap, long press, move or scale.
	StateUndetermined
	// StateSecondary is a press of the secondary button.
	StateSecondary
	StateMove
	StateLongPressed
	StateLongPressMove
	StateScale
	// StateSwipe is a move that has been reclassified as a swipe. It ignores everything until release.
	StateSwipe
	StateWheel
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateUndetermined:
		return "StateUndetermined"
	case StateSecondary:
		return "StateSecondary"
	case StateMove:
		return "StateMove"
	case StateLongPressed:
		return "StateLongPressed"
	case StateLongPressMove:
		return "StateLongPressMove"
	case StateScale:
		return "StateScale"
	case StateSwipe:
		return "StateSwipe"
	case StateWheel:
		return "StateWheel"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Modifiers reports the modifier keys that reroute wheel steps. It is implemented by key.Tracker.
type Modifiers interface {
	Ctrl() bool
	Shift() bool
}

// Recognizer is the gesture state machine of one surface. It is not safe for concurrent use; all events,
// including timer firings, must be delivered on one goroutine.
type Recognizer struct {
	cfg       Config
	surface   surface.Surface
	timer     timer.Scheduler
	modifiers Modifiers
	handler   Handler

	state    State
	contacts Tracker
	timers   [numPurposes]timer.Handle
	velocity velocitySample
	// distance is the distance between the two scaling contacts at the last scale report.
	distance float32
	// lifted is the contact that lifted while a tap was pending.
	lifted Contact
}

// NewRecognizer returns a recognizer for surf that schedules its timers on sched and reports to h.
// mods may be nil, in which case wheel steps are never rerouted.
func NewRecognizer(cfg Config, surf surface.Surface, sched timer.Scheduler, mods Modifiers, h Handler) *Recognizer {
	if h == nil {
		h = &Callbacks{}
	}
	r := &Recognizer{
		cfg:       cfg,
		surface:   surf,
		timer:     sched,
		modifiers: mods,
		handler:   h,
	}
	r.contacts.Contains = surf.Contains
	return r
}

// State returns the current state.
func (r *Recognizer) State() State {
	return r.state
}

// Contacts returns the number of tracked contacts.
func (r *Recognizer) Contacts() int {
	return r.contacts.Len()
}

// Reset abandons the current gesture without reporting anything.
func (r *Recognizer) Reset() {
	r.cancelAll()
	r.contacts.Reset()
	r.velocity = velocitySample{}
	r.distance = 0
	r.lifted = Contact{}
	r.setState(StateIdle)
}

func (r *Recognizer) setState(s State) {
	if s != r.state {
		debug.Logf("gesture: %s -> %s", r.state, s)
	}
	r.state = s
}

// HandleEvent processes a pointer.Event or a TimerEvent. Other events are ignored.
func (r *Recognizer) HandleEvent(ev event.Event) {
	switch ev := ev.(type) {
	case pointer.Event:
		switch ev.Kind {
		case pointer.Press:
			r.press(ev)
		case pointer.Move:
			r.move(ev)
		case pointer.Release:
			r.release(ev)
		case pointer.Cancel:
			r.abort()
		}
	case TimerEvent:
		r.fire(ev)
	}
}

func (r *Recognizer) press(ev pointer.Event) {
	pos := r.surface.Local(ev.Position)
	c := Contact{
		ID:       ev.PointerID,
		Source:   ev.Source,
		Position: pos,
		Origin:   pos,
		Start:    ev.Time,
		Time:     ev.Time,
	}

	if ev.Wheel != pointer.WheelNone {
		r.pressWheel(c, ev.Wheel)
		return
	}

	switch {
	case r.state == StateIdle, r.state == StateUndetermined && r.contacts.Len() == 0:
		if !r.contacts.Add(c) {
			return
		}
		if ev.Source == pointer.Mouse && ev.Buttons&pointer.ButtonSecondary != 0 && ev.Buttons&pointer.ButtonPrimary == 0 {
			r.cancelAll()
			r.setState(StateSecondary)
			return
		}
		r.schedule(PurposeLongPress, r.cfg.LongPress, c)
		if !r.pending(PurposeTap) {
			r.schedule(PurposeTap, r.cfg.DoubleTapTime, c)
		}
		r.setState(StateUndetermined)

	case r.state == StateUndetermined:
		if !r.contacts.Add(c) {
			return
		}
		// Two contacts can't be a tap, long press or swipe.
		r.cancel(PurposeLongPress)
		r.cancel(PurposeTap)
		r.cancel(PurposeSwipe)
		c0, c1 := r.contacts.First(), r.contacts.Second()
		r.distance = f32.Distance(c0.Position, c1.Position)
		r.setState(StateScale)
		r.handler.ScaleStart(c0, c1, f32.Midpoint(c0.Position, c1.Position))

	case r.state == StateScale:
		// A spurious extra contact. It takes a slot so that its release is recognized, nothing more.
		r.contacts.Add(c)
	}
}

func (r *Recognizer) pressWheel(c Contact, w pointer.Wheel) {
	if r.state == StateUndetermined && r.contacts.Len() == 0 {
		// The wheel settles a pending tap early.
		r.fireTap(r.lifted)
	}
	if r.state != StateIdle {
		return
	}
	if !r.contacts.Add(c) {
		return
	}
	r.setState(StateWheel)

	scale := r.cfg.WheelSensitivity
	if w == pointer.WheelUp || w == pointer.WheelLeft {
		scale = 1 / scale
	}
	ctrl, shift := false, false
	if r.modifiers != nil {
		ctrl, shift = r.modifiers.Ctrl(), r.modifiers.Shift()
	}
	switch {
	case w.Horizontal():
		r.handler.ShiftWheel(c, scale, c.Position)
	case ctrl:
		r.handler.CtrlWheel(c, scale, c.Position)
	case shift:
		r.handler.ShiftWheel(c, scale, c.Position)
	default:
		r.handler.Wheel(c, scale, c.Position)
	}
}

func (r *Recognizer) move(ev pointer.Event) {
	old, ok := r.contacts.Lookup(ev.PointerID)
	if !ok {
		return
	}
	pos := r.surface.Local(ev.Position)
	if pos == old.Position {
		return
	}
	c, _ := r.contacts.Update(ev.PointerID, pos, ev.Time)
	inside := r.surface.Contains(pos)

	switch r.state {
	case StateUndetermined:
		if !inside {
			r.drop(c)
			return
		}
		if !r.beyondSlop(c) {
			return
		}
		r.cancel(PurposeLongPress)
		r.cancel(PurposeTap)
		r.schedule(PurposeSwipe, r.cfg.SwipeDelay, c)
		r.setState(StateMove)
		r.startVelocity(c)
		r.handler.MoveStart(c, c.Origin)
		r.handler.MoveTo(c, c.Position, r.velocity.value)

	case StateLongPressed:
		if !r.beyondSlop(c) {
			return
		}
		r.cancel(PurposeLongPress)
		r.cancel(PurposeTap)
		r.setState(StateLongPressMove)
		r.startVelocity(c)
		r.handler.LongPressMoveStart(c, c.Origin)
		if inside {
			r.handler.LongPressMoveTo(c, c.Position, r.velocity.value)
		}

	case StateMove:
		if inside {
			r.handler.MoveTo(c, c.Position, r.velocity.value)
		}

	case StateLongPressMove:
		if inside {
			r.handler.LongPressMoveTo(c, c.Position, r.velocity.value)
		}

	case StateScale:
		if r.contacts.Len() < 2 {
			return
		}
		c0, c1 := r.contacts.First(), r.contacts.Second()
		d := f32.Distance(c0.Position, c1.Position)
		if r.distance > 0 {
			if ratio := d / r.distance; ratio != 1 {
				// The focus, not the contacts, has to be inside, so fat fingers may stray.
				if focus := f32.Midpoint(c0.Position, c1.Position); r.surface.Contains(focus) {
					r.handler.Scale(c0, c1, ratio, focus)
				}
			}
		}
		r.distance = d
	}
}

func (r *Recognizer) beyondSlop(c Contact) bool {
	return f32.DistanceSquared(c.Origin, c.Position) > r.cfg.MoveSlop*r.cfg.MoveSlop
}

// drop forgets an undetermined contact that left the surface. Nothing is reported for it.
func (r *Recognizer) drop(c Contact) {
	r.contacts.Remove(c.ID)
	r.cancel(PurposeLongPress)
	if r.contacts.Len() == 0 {
		r.Reset()
	}
}

func (r *Recognizer) startVelocity(c Contact) {
	r.velocity.start(c.Position, c.Time)
	r.schedule(PurposeVelocity, r.cfg.VelocitySample, c)
}

func (r *Recognizer) release(ev pointer.Event) {
	if (ev.Wheel != pointer.WheelNone) != (r.state == StateWheel) {
		// Wheel releases only end wheel gestures, and wheel gestures only end with wheel releases.
		return
	}
	c, ok := r.contacts.Lookup(ev.PointerID)
	if !ok {
		return
	}
	if r.contacts.Len() == 1 {
		// With several contacts down, event positions may be in another contact's coordinate space. Trust the
		// tracker instead.
		c, _ = r.contacts.Update(ev.PointerID, r.surface.Local(ev.Position), ev.Time)
	}
	r.cancel(PurposeLongPress)
	r.cancel(PurposeSwipe)

	switch r.state {
	case StateUndetermined:
		if ev.DoubleTap {
			r.cancel(PurposeTap)
			r.handler.DoubleTap(c, c.Position)
			r.Reset()
			return
		}
		r.contacts.Remove(c.ID)
		r.lifted = c
		if r.contacts.Len() == 0 && !r.pending(PurposeTap) {
			r.Reset()
		}

	case StateSecondary:
		r.handler.SecondaryTap(c, c.Position)
		r.Reset()

	case StateScale:
		r.handler.ScaleEnd(r.contacts.First(), r.contacts.Second())
		r.Reset()

	case StateLongPressMove:
		r.cancel(PurposeVelocity)
		r.handler.LongPressMoveEnd(c, c.Position)
		r.Reset()

	case StateMove:
		r.cancel(PurposeVelocity)
		r.handler.MoveEnd(c, c.Position)
		r.Reset()

	case StateLongPressed:
		r.handler.LongPressEnd(c, c.Position)
		r.Reset()

	case StateWheel, StateSwipe:
		r.Reset()
	}
}

// abort handles a cancelled pointer stream. Gestures that have reported a start are ended so that handlers
// always see matching start and end calls.
func (r *Recognizer) abort() {
	if r.contacts.Len() > 0 {
		c := r.contacts.First()
		switch r.state {
		case StateMove:
			r.cancel(PurposeVelocity)
			r.handler.MoveEnd(c, c.Position)
		case StateLongPressMove:
			r.cancel(PurposeVelocity)
			r.handler.LongPressMoveEnd(c, c.Position)
		case StateLongPressed:
			r.handler.LongPressEnd(c, c.Position)
		case StateScale:
			r.handler.ScaleEnd(c, r.contacts.Second())
		}
	}
	r.Reset()
}

func (r *Recognizer) fire(ev TimerEvent) {
	if ev.Purpose >= numPurposes || ev.Handle == 0 || r.timers[ev.Purpose] != ev.Handle {
		// Cancelled after the firing was queued.
		return
	}
	if ev.Purpose != PurposeVelocity {
		r.timers[ev.Purpose] = 0
	}
	debug.Logf("gesture: %s timer fired in %s", ev.Purpose, r.state)

	switch ev.Purpose {
	case PurposeLongPress:
		if r.state != StateUndetermined {
			return
		}
		c, ok := r.contacts.Lookup(ev.Contact)
		if !ok {
			return
		}
		if f32.DistanceSquared(c.Origin, c.Position) < r.cfg.DoubleTapDistance*r.cfg.DoubleTapDistance {
			r.setState(StateLongPressed)
			r.handler.LongPress(c, c.Position)
		}

	case PurposeTap:
		if r.state != StateUndetermined || r.pending(PurposeLongPress) {
			return
		}
		c, ok := r.contacts.Lookup(ev.Contact)
		if !ok {
			c = r.lifted
		}
		r.fireTap(c)

	case PurposeSwipe:
		if r.state != StateMove {
			return
		}
		c, ok := r.contacts.Lookup(ev.Contact)
		if !ok {
			return
		}
		r.swipe(c, ev.Time)

	case PurposeVelocity:
		if r.state != StateMove && r.state != StateLongPressMove {
			return
		}
		if c, ok := r.contacts.Lookup(ev.Contact); ok {
			r.velocity.sample(c.Position, ev.Time, r.cfg.Density)
		}
	}
}

func (r *Recognizer) fireTap(c Contact) {
	r.handler.Tap(c, c.Position)
	r.Reset()
}

// swipe reclassifies the current move as a swipe if the contact has been fast enough since it went down. The
// velocity is taken over the whole time from the press until now, so a short twitch followed by holding still
// stays a move.
func (r *Recognizer) swipe(c Contact, now time.Duration) {
	d := c.Displacement()
	v := f32.Velocity(f32.Magnitude(d), now-c.Start, r.cfg.Density)
	if v <= r.cfg.SwipeVelocity {
		return
	}
	// Undo the move for handlers that already started acting on it.
	r.cancel(PurposeVelocity)
	r.handler.MoveTo(c, c.Origin, r.velocity.value)
	r.handler.MoveEnd(c, c.Origin)
	r.setState(StateSwipe)
	if f32.Horizontal(d) {
		r.handler.SwipeHorizontal(c, d.X > 0)
	} else {
		r.handler.SwipeVertical(c, d.Y > 0)
	}
}
