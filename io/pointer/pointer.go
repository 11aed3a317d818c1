package pointer

import (
	"fmt"
	"time"

	"honnef.co/go/gestures/f32"

	"gioui.org/io/key"
	giopointer "gioui.org/io/pointer"
)

// Event is a contact event as consumed by gesture recognizers. Positions are in the host's coordinate space;
// recognizers transform them into surface-local coordinates.
type Event struct {
	Kind      Kind
	Source    Source
	PointerID ID
	Time      time.Duration
	Buttons   Buttons
	Position  f32.Point
	// Wheel is set on Press and Release events that represent a wheel step rather than a contact.
	Wheel Wheel
	// DoubleTap is set by the host on Press and Release events of a press that completes a double tap. See
	// DoubleTapper for hosts that don't detect double taps themselves.
	DoubleTap bool
	Modifiers key.Modifiers
}

func (Event) ImplementsEvent() {}

func (ev Event) String() string {
	return fmt.Sprintf("%s{id: %d, pos: %v, time: %v, wheel: %s, double: %t}",
		ev.Kind, ev.PointerID, ev.Position, ev.Time, ev.Wheel, ev.DoubleTap)
}

// FromRaw converts a Gio pointer event. now is the timestamp to use, on the time base of the scheduler the
// recognizers use; Gio's own timestamps use an unspecified epoch.
//
// Drags become Move events, hover moves are dropped, and a scroll becomes a Press and Release pair of wheel
// events, one pair per scrolled axis.
func FromRaw(ev giopointer.Event, now time.Duration) []Event {
	base := Event{
		PointerID: ID(ev.PointerID),
		Time:      now,
		Buttons:   Buttons(ev.Buttons),
		Position:  ev.Position,
		Modifiers: ev.Modifiers,
	}
	switch ev.Source {
	case giopointer.Touch:
		base.Source = Touch
	default:
		base.Source = Mouse
	}

	switch ev.Kind {
	case giopointer.Press:
		base.Kind = Press
	case giopointer.Release:
		base.Kind = Release
	case giopointer.Drag:
		base.Kind = Move
	case giopointer.Cancel:
		base.Kind = Cancel
	case giopointer.Scroll:
		var out []Event
		for _, w := range wheelsFromScroll(ev.Scroll) {
			press := base
			press.Kind = Press
			press.Wheel = w
			release := press
			release.Kind = Release
			out = append(out, press, release)
		}
		return out
	default:
		return nil
	}
	return []Event{base}
}

// wheelsFromScroll maps a scroll vector to wheel steps. Gio reports positive Y when scrolling down and
// positive X when scrolling right.
func wheelsFromScroll(s f32.Point) []Wheel {
	var ws []Wheel
	switch {
	case s.Y < 0:
		ws = append(ws, WheelUp)
	case s.Y > 0:
		ws = append(ws, WheelDown)
	}
	switch {
	case s.X < 0:
		ws = append(ws, WheelLeft)
	case s.X > 0:
		ws = append(ws, WheelRight)
	}
	return ws
}

type Kind uint8

const (
	Cancel Kind = 1 << iota
	Press
	Release
	Move
)

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		return fmt.Sprintf("Kind(%#x)", uint8(k))
	}
}

type ID uint16

type Source uint8

const (
	Mouse Source = iota
	Touch
)

type Buttons uint32

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Wheel discriminates wheel steps by direction.
type Wheel uint8

const (
	WheelNone Wheel = iota
	WheelUp
	WheelDown
	// WheelLeft and WheelRight are native horizontal wheel steps, from tilting wheels or touchpads.
	WheelLeft
	WheelRight
)

func (w Wheel) Horizontal() bool {
	return w == WheelLeft || w == WheelRight
}

func (w Wheel) String() string {
	switch w {
	case WheelNone:
		return "none"
	case WheelUp:
		return "up"
	case WheelDown:
		return "down"
	case WheelLeft:
		return "left"
	case WheelRight:
		return "right"
	default:
		return fmt.Sprintf("Wheel(%d)", uint8(w))
	}
}
