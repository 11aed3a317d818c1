package gesture

import "honnef.co/go/gestures/f32"

// Handler receives the gestures a Recognizer detects. All positions are surface-local. Contacts are copies;
// a handler can keep them but changing them has no effect on recognition.
//
// Implementations that only care about a few gestures can embed Callbacks, which provides no-op methods, and
// override the rest.
type Handler interface {
	Tap(c Contact, pos f32.Point)
	DoubleTap(c Contact, pos f32.Point)
	// SecondaryTap is a press and release of the secondary mouse button.
	SecondaryTap(c Contact, pos f32.Point)
	LongPress(c Contact, pos f32.Point)
	// LongPressEnd follows LongPress if the contact lifts without moving.
	LongPressEnd(c Contact, pos f32.Point)

	MoveStart(c Contact, pos f32.Point)
	// MoveTo reports the contact's position and its velocity, in length units per second divided by
	// density, as of the latest velocity sample.
	MoveTo(c Contact, pos f32.Point, velocity float32)
	MoveEnd(c Contact, pos f32.Point)

	// LongPressMoveStart and friends report a move that began after a long press. LongPressEnd isn't called for
	// these.
	LongPressMoveStart(c Contact, pos f32.Point)
	LongPressMoveTo(c Contact, pos f32.Point, velocity float32)
	LongPressMoveEnd(c Contact, pos f32.Point)

	// SwipeHorizontal reports a fast horizontal move. right is true if the contact moved to the right.
	SwipeHorizontal(c Contact, right bool)
	// SwipeVertical reports a fast vertical move. down is true if the contact moved down, towards larger Y.
	SwipeVertical(c Contact, down bool)

	ScaleStart(c0, c1 Contact, focus f32.Point)
	// Scale reports the ratio of the current distance between the two contacts to the distance at the
	// previous report. Successive ratios multiply.
	Scale(c0, c1 Contact, ratio float32, focus f32.Point)
	ScaleEnd(c0, c1 Contact)

	// Wheel, CtrlWheel and ShiftWheel report one wheel step. scale is below 1 for steps up or left and above 1
	// for steps down or right.
	Wheel(c Contact, scale float32, pos f32.Point)
	CtrlWheel(c Contact, scale float32, pos f32.Point)
	ShiftWheel(c Contact, scale float32, pos f32.Point)
}

var _ Handler = (*Callbacks)(nil)

// Callbacks is a Handler that calls the non-nil function matching each gesture. The zero value ignores
// everything.
type Callbacks struct {
	OnTap          func(c Contact, pos f32.Point)
	OnDoubleTap    func(c Contact, pos f32.Point)
	OnSecondaryTap func(c Contact, pos f32.Point)
	OnLongPress    func(c Contact, pos f32.Point)
	OnLongPressEnd func(c Contact, pos f32.Point)

	OnMoveStart func(c Contact, pos f32.Point)
	OnMoveTo    func(c Contact, pos f32.Point, velocity float32)
	OnMoveEnd   func(c Contact, pos f32.Point)

	OnLongPressMoveStart func(c Contact, pos f32.Point)
	OnLongPressMoveTo    func(c Contact, pos f32.Point, velocity float32)
	OnLongPressMoveEnd   func(c Contact, pos f32.Point)

	OnSwipeHorizontal func(c Contact, right bool)
	OnSwipeVertical   func(c Contact, down bool)

	OnScaleStart func(c0, c1 Contact, focus f32.Point)
	OnScale      func(c0, c1 Contact, ratio float32, focus f32.Point)
	OnScaleEnd   func(c0, c1 Contact)

	OnWheel      func(c Contact, scale float32, pos f32.Point)
	OnCtrlWheel  func(c Contact, scale float32, pos f32.Point)
	OnShiftWheel func(c Contact, scale float32, pos f32.Point)
}

func (cb *Callbacks) Tap(c Contact, pos f32.Point) {
	if cb.OnTap != nil {
		cb.OnTap(c, pos)
	}
}

func (cb *Callbacks) DoubleTap(c Contact, pos f32.Point) {
	if cb.OnDoubleTap != nil {
		cb.OnDoubleTap(c, pos)
	}
}

func (cb *Callbacks) SecondaryTap(c Contact, pos f32.Point) {
	if cb.OnSecondaryTap != nil {
		cb.OnSecondaryTap(c, pos)
	}
}

func (cb *Callbacks) LongPress(c Contact, pos f32.Point) {
	if cb.OnLongPress != nil {
		cb.OnLongPress(c, pos)
	}
}

func (cb *Callbacks) LongPressEnd(c Contact, pos f32.Point) {
	if cb.OnLongPressEnd != nil {
		cb.OnLongPressEnd(c, pos)
	}
}

func (cb *Callbacks) MoveStart(c Contact, pos f32.Point) {
	if cb.OnMoveStart != nil {
		cb.OnMoveStart(c, pos)
	}
}

func (cb *Callbacks) MoveTo(c Contact, pos f32.Point, velocity float32) {
	if cb.OnMoveTo != nil {
		cb.OnMoveTo(c, pos, velocity)
	}
}

func (cb *Callbacks) MoveEnd(c Contact, pos f32.Point) {
	if cb.OnMoveEnd != nil {
		cb.OnMoveEnd(c, pos)
	}
}

func (cb *Callbacks) LongPressMoveStart(c Contact, pos f32.Point) {
	if cb.OnLongPressMoveStart != nil {
		cb.OnLongPressMoveStart(c, pos)
	}
}

func (cb *Callbacks) LongPressMoveTo(c Contact, pos f32.Point, velocity float32) {
	if cb.OnLongPressMoveTo != nil {
		cb.OnLongPressMoveTo(c, pos, velocity)
	}
}

func (cb *Callbacks) LongPressMoveEnd(c Contact, pos f32.Point) {
	if cb.OnLongPressMoveEnd != nil {
		cb.OnLongPressMoveEnd(c, pos)
	}
}

func (cb *Callbacks) SwipeHorizontal(c Contact, right bool) {
	if cb.OnSwipeHorizontal != nil {
		cb.OnSwipeHorizontal(c, right)
	}
}

func (cb *Callbacks) SwipeVertical(c Contact, down bool) {
	if cb.OnSwipeVertical != nil {
		cb.OnSwipeVertical(c, down)
	}
}

func (cb *Callbacks) ScaleStart(c0, c1 Contact, focus f32.Point) {
	if cb.OnScaleStart != nil {
		cb.OnScaleStart(c0, c1, focus)
	}
}

func (cb *Callbacks) Scale(c0, c1 Contact, ratio float32, focus f32.Point) {
	if cb.OnScale != nil {
		cb.OnScale(c0, c1, ratio, focus)
	}
}

func (cb *Callbacks) ScaleEnd(c0, c1 Contact) {
	if cb.OnScaleEnd != nil {
		cb.OnScaleEnd(c0, c1)
	}
}

func (cb *Callbacks) Wheel(c Contact, scale float32, pos f32.Point) {
	if cb.OnWheel != nil {
		cb.OnWheel(c, scale, pos)
	}
}

func (cb *Callbacks) CtrlWheel(c Contact, scale float32, pos f32.Point) {
	if cb.OnCtrlWheel != nil {
		cb.OnCtrlWheel(c, scale, pos)
	}
}

func (cb *Callbacks) ShiftWheel(c Contact, scale float32, pos f32.Point) {
	if cb.OnShiftWheel != nil {
		cb.OnShiftWheel(c, scale, pos)
	}
}
