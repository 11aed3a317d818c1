package gesture

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/io/pointer"
	"honnef.co/go/gestures/surface"
	"honnef.co/go/gestures/timer"
)

const ms = time.Millisecond

type call struct {
	Name  string
	Pos   f32.Point
	Value float32
	Flag  bool
}

type recorder struct {
	calls []call
}

func (rec *recorder) add(c call) { rec.calls = append(rec.calls, c) }

func (rec *recorder) Tap(c Contact, pos f32.Point)       { rec.add(call{Name: "tap", Pos: pos}) }
func (rec *recorder) DoubleTap(c Contact, pos f32.Point) { rec.add(call{Name: "double-tap", Pos: pos}) }
func (rec *recorder) SecondaryTap(c Contact, pos f32.Point) {
	rec.add(call{Name: "secondary-tap", Pos: pos})
}
func (rec *recorder) LongPress(c Contact, pos f32.Point) { rec.add(call{Name: "long-press", Pos: pos}) }
func (rec *recorder) LongPressEnd(c Contact, pos f32.Point) {
	rec.add(call{Name: "long-press-end", Pos: pos})
}
func (rec *recorder) MoveStart(c Contact, pos f32.Point) { rec.add(call{Name: "move-start", Pos: pos}) }
func (rec *recorder) MoveTo(c Contact, pos f32.Point, v float32) {
	rec.add(call{Name: "move-to", Pos: pos, Value: v})
}
func (rec *recorder) MoveEnd(c Contact, pos f32.Point) { rec.add(call{Name: "move-end", Pos: pos}) }
func (rec *recorder) LongPressMoveStart(c Contact, pos f32.Point) {
	rec.add(call{Name: "long-press-move-start", Pos: pos})
}
func (rec *recorder) LongPressMoveTo(c Contact, pos f32.Point, v float32) {
	rec.add(call{Name: "long-press-move-to", Pos: pos, Value: v})
}
func (rec *recorder) LongPressMoveEnd(c Contact, pos f32.Point) {
	rec.add(call{Name: "long-press-move-end", Pos: pos})
}
func (rec *recorder) SwipeHorizontal(c Contact, right bool) {
	rec.add(call{Name: "swipe-horizontal", Flag: right})
}
func (rec *recorder) SwipeVertical(c Contact, down bool) {
	rec.add(call{Name: "swipe-vertical", Flag: down})
}
func (rec *recorder) ScaleStart(c0, c1 Contact, focus f32.Point) {
	rec.add(call{Name: "scale-start", Pos: focus})
}
func (rec *recorder) Scale(c0, c1 Contact, ratio float32, focus f32.Point) {
	rec.add(call{Name: "scale", Pos: focus, Value: ratio})
}
func (rec *recorder) ScaleEnd(c0, c1 Contact) { rec.add(call{Name: "scale-end"}) }
func (rec *recorder) Wheel(c Contact, scale float32, pos f32.Point) {
	rec.add(call{Name: "wheel", Pos: pos, Value: scale})
}
func (rec *recorder) CtrlWheel(c Contact, scale float32, pos f32.Point) {
	rec.add(call{Name: "ctrl-wheel", Pos: pos, Value: scale})
}
func (rec *recorder) ShiftWheel(c Contact, scale float32, pos f32.Point) {
	rec.add(call{Name: "shift-wheel", Pos: pos, Value: scale})
}

type fakeModifiers struct {
	ctrl, shift bool
}

func (m *fakeModifiers) Ctrl() bool  { return m.ctrl }
func (m *fakeModifiers) Shift() bool { return m.shift }

type harness struct {
	t     *testing.T
	clock *timer.Manual
	mods  *fakeModifiers
	rec   *recorder
	r     *Recognizer
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.DoubleTapTime = 300 * ms
	cfg.Density = 160
	return cfg
}

func newHarness(t *testing.T, cfg Config) *harness {
	region := &surface.Region{Bounds: f32.Rect(0, 0, 1000, 1000)}
	h := &harness{
		t:     t,
		clock: &timer.Manual{},
		mods:  &fakeModifiers{},
		rec:   &recorder{},
	}
	h.r = NewRecognizer(cfg, region, h.clock, h.mods, h.rec)
	return h
}

func (h *harness) at(d time.Duration) *harness {
	h.clock.AdvanceTo(d)
	return h
}

func (h *harness) send(ev pointer.Event) {
	ev.Time = h.clock.Now()
	h.r.HandleEvent(ev)
}

func (h *harness) press(id pointer.ID, x, y float32) {
	h.send(pointer.Event{Kind: pointer.Press, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y)})
}

func (h *harness) move(id pointer.ID, x, y float32) {
	h.send(pointer.Event{Kind: pointer.Move, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y)})
}

func (h *harness) release(id pointer.ID, x, y float32) {
	h.send(pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y)})
}

func (h *harness) releaseDouble(id pointer.ID, x, y float32) {
	h.send(pointer.Event{Kind: pointer.Release, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, y), DoubleTap: true})
}

func (h *harness) wheel(w pointer.Wheel, x, y float32) {
	pos := f32.Pt(x, y)
	h.send(pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Position: pos, Wheel: w})
	h.send(pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: pos, Wheel: w})
}

// expect checks the recorded calls and that the recognizer is back to idle with no timers left.
func (h *harness) expect(want []call) {
	h.t.Helper()
	if diff := cmp.Diff(want, h.rec.calls, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		h.t.Errorf("unexpected gestures (-want +got):\n%s", diff)
	}
	if s := h.r.State(); s != StateIdle {
		h.t.Errorf("got state %s, want %s", s, StateIdle)
	}
	if n := h.clock.Pending(); n != 0 {
		h.t.Errorf("%d timers still pending", n)
	}
	if n := h.r.Contacts(); n != 0 {
		h.t.Errorf("%d contacts still tracked", n)
	}
}

func TestTap(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(100 * ms).release(1, 10, 10)
	if len(h.rec.calls) != 0 {
		t.Fatalf("tap reported before the double tap window passed: %v", h.rec.calls)
	}
	h.at(time.Second)
	h.expect([]call{{Name: "tap", Pos: f32.Pt(10, 10)}})
}

func TestTapHoldDurations(t *testing.T) {
	for hold := 10 * ms; hold < 300*ms; hold += 40 * ms {
		h := newHarness(t, testConfig())
		h.press(1, 10, 10)
		h.at(hold).release(1, 10, 10)
		h.at(2 * time.Second)
		h.expect([]call{{Name: "tap", Pos: f32.Pt(10, 10)}})
	}
}

func TestDoubleTap(t *testing.T) {
	t.Run("flagged release", func(t *testing.T) {
		h := newHarness(t, testConfig())
		h.press(1, 10, 10)
		h.at(50 * ms).releaseDouble(1, 10, 10)
		h.at(time.Second)
		h.expect([]call{{Name: "double-tap", Pos: f32.Pt(10, 10)}})
	})

	t.Run("two presses", func(t *testing.T) {
		h := newHarness(t, testConfig())
		h.press(1, 10, 10)
		h.at(50*ms).release(1, 10, 10)
		h.at(150*ms).press(2, 12, 10)
		h.at(200*ms).releaseDouble(2, 12, 10)
		h.at(time.Second)
		h.expect([]call{{Name: "double-tap", Pos: f32.Pt(12, 10)}})
	})
}

func TestLongPress(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(500 * ms)
	if diff := cmp.Diff([]call{{Name: "long-press", Pos: f32.Pt(10, 10)}}, h.rec.calls); diff != "" {
		t.Fatalf("unexpected gestures while held (-want +got):\n%s", diff)
	}
	if s := h.r.State(); s != StateLongPressed {
		t.Fatalf("got state %s, want %s", s, StateLongPressed)
	}
	h.at(600*ms).release(1, 10, 10)
	h.at(time.Second)
	h.expect([]call{
		{Name: "long-press", Pos: f32.Pt(10, 10)},
		{Name: "long-press-end", Pos: f32.Pt(10, 10)},
	})
}

func TestHeldPastTapWindow(t *testing.T) {
	// Released after the tap window but before the long press: neither fires.
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(350*ms).release(1, 10, 10)
	h.at(time.Second)
	h.expect(nil)

	// A tap window that fired while a long press was pending must not block later taps.
	h.press(1, 10, 10)
	h.at(1100*ms).release(1, 10, 10)
	h.at(2 * time.Second)
	h.expect([]call{{Name: "tap", Pos: f32.Pt(10, 10)}})
}

func TestLongPressMove(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(500*ms).move(1, 50, 10)
	h.at(600*ms).move(1, 90, 10)
	// Sampled at 700ms: 40 units in 200ms at 160 units per inch.
	h.at(800*ms).move(1, 100, 10)
	h.at(900*ms).release(1, 100, 10)
	h.at(2 * time.Second)
	h.expect([]call{
		{Name: "long-press", Pos: f32.Pt(10, 10)},
		{Name: "long-press-move-start", Pos: f32.Pt(10, 10)},
		{Name: "long-press-move-to", Pos: f32.Pt(50, 10)},
		{Name: "long-press-move-to", Pos: f32.Pt(90, 10)},
		{Name: "long-press-move-to", Pos: f32.Pt(100, 10), Value: 1.25},
		{Name: "long-press-move-end", Pos: f32.Pt(100, 10)},
	})
}

func TestMove(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(50*ms).move(1, 20, 10)
	h.at(300*ms).move(1, 30, 10)
	h.at(400*ms).release(1, 30, 10)
	h.at(2 * time.Second)
	h.expect([]call{
		{Name: "move-start", Pos: f32.Pt(10, 10)},
		{Name: "move-to", Pos: f32.Pt(20, 10)},
		{Name: "move-to", Pos: f32.Pt(30, 10)},
		{Name: "move-end", Pos: f32.Pt(30, 10)},
	})
}

func TestMoveOutside(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(50*ms).move(1, 20, 10)
	h.at(300*ms).move(1, -30, 10)
	h.at(350*ms).move(1, 40, 10)
	h.at(400*ms).release(1, 40, 10)
	h.at(2 * time.Second)
	h.expect([]call{
		{Name: "move-start", Pos: f32.Pt(10, 10)},
		{Name: "move-to", Pos: f32.Pt(20, 10)},
		{Name: "move-to", Pos: f32.Pt(40, 10)},
		{Name: "move-end", Pos: f32.Pt(40, 10)},
	})
}

func TestMoveSlop(t *testing.T) {
	cfg := testConfig()
	cfg.MoveSlop = 5
	h := newHarness(t, cfg)
	h.press(1, 10, 10)
	h.at(20*ms).move(1, 12, 12)
	h.at(100*ms).release(1, 12, 12)
	h.at(time.Second)
	h.expect([]call{{Name: "tap", Pos: f32.Pt(12, 12)}})
}

func TestSwipe(t *testing.T) {
	// The swipe timer fires 110ms after the press. 200 units by then at 160 units per inch is 11.4 inches per
	// second.
	for _, tc := range []struct {
		label    string
		from, to f32.Point
		want     call
	}{
		{"right", f32.Pt(0, 0), f32.Pt(200, 0), call{Name: "swipe-horizontal", Flag: true}},
		{"left", f32.Pt(200, 0), f32.Pt(0, 0), call{Name: "swipe-horizontal", Flag: false}},
		{"up", f32.Pt(200, 200), f32.Pt(200, 0), call{Name: "swipe-vertical", Flag: false}},
		{"down", f32.Pt(200, 200), f32.Pt(200, 400), call{Name: "swipe-vertical", Flag: true}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			h := newHarness(t, testConfig())
			h.press(1, tc.from.X, tc.from.Y)
			h.at(10*ms).move(1, tc.to.X, tc.to.Y)
			h.at(300 * ms)
			if s := h.r.State(); s != StateSwipe {
				t.Fatalf("got state %s, want %s", s, StateSwipe)
			}
			// Nothing is reported for moves after the swipe.
			h.move(1, tc.to.X+1, tc.to.Y+1)
			h.at(400*ms).release(1, tc.to.X+1, tc.to.Y+1)
			h.at(time.Second)
			h.expect([]call{
				{Name: "move-start", Pos: tc.from},
				{Name: "move-to", Pos: tc.to},
				{Name: "move-to", Pos: tc.from},
				{Name: "move-end", Pos: tc.from},
				tc.want,
			})
		})
	}
}

func TestSlowMoveIsNoSwipe(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 0, 0)
	// 100 units in 100ms is 6.25 inches per second.
	h.at(100*ms).move(1, 100, 0)
	h.at(250*ms).release(1, 100, 0)
	h.at(time.Second)
	h.expect([]call{
		{Name: "move-start", Pos: f32.Pt(0, 0)},
		{Name: "move-to", Pos: f32.Pt(100, 0)},
		{Name: "move-end", Pos: f32.Pt(100, 0)},
	})
}

func TestSwipeVelocitySincePress(t *testing.T) {
	// The swipe timer fires 100ms after the first move. The velocity covers the time since the press at that
	// moment, not the time until the last position update.
	type step struct {
		at  time.Duration
		pos f32.Point
	}
	for _, tc := range []struct {
		label string
		moves []step
		want  []call
	}{
		{
			// 30 units in 110ms is 1.7 inches per second, even though they were covered in 10ms.
			label: "twitch then hold",
			moves: []step{{10 * ms, f32.Pt(30, 0)}},
			want: []call{
				{Name: "move-start", Pos: f32.Pt(0, 0)},
				{Name: "move-to", Pos: f32.Pt(30, 0)},
				{Name: "move-end", Pos: f32.Pt(30, 0)},
			},
		},
		{
			// 250 units in 110ms is 14.2 inches per second.
			label: "slow start then late burst",
			moves: []step{{10 * ms, f32.Pt(5, 0)}, {100 * ms, f32.Pt(250, 0)}},
			want: []call{
				{Name: "move-start", Pos: f32.Pt(0, 0)},
				{Name: "move-to", Pos: f32.Pt(5, 0)},
				{Name: "move-to", Pos: f32.Pt(250, 0)},
				{Name: "move-to", Pos: f32.Pt(0, 0)},
				{Name: "move-end", Pos: f32.Pt(0, 0)},
				{Name: "swipe-horizontal", Flag: true},
			},
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			h := newHarness(t, testConfig())
			h.press(1, 0, 0)
			last := f32.Pt(0, 0)
			for _, m := range tc.moves {
				h.at(m.at).move(1, m.pos.X, m.pos.Y)
				last = m.pos
			}
			h.at(150*ms).release(1, last.X, last.Y)
			h.at(time.Second)
			h.expect(tc.want)
		})
	}
}

func TestScale(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 100, 100)
	h.at(10*ms).press(2, 200, 100)
	h.at(50*ms).move(2, 300, 100)
	h.at(60*ms).move(1, 0, 100)
	// Rotating around the other contact keeps the distance, which isn't reported.
	h.at(70*ms).move(1, 300, 400)
	h.at(80*ms).move(1, 300, 250)
	h.at(500*ms).release(2, 300, 100)
	h.release(1, 300, 250)
	h.at(2 * time.Second)
	h.expect([]call{
		{Name: "scale-start", Pos: f32.Pt(150, 100)},
		{Name: "scale", Pos: f32.Pt(200, 100), Value: 2},
		{Name: "scale", Pos: f32.Pt(150, 100), Value: 1.5},
		{Name: "scale", Pos: f32.Pt(300, 175), Value: 0.5},
		{Name: "scale-end"},
	})
}

func TestScaleSpuriousContact(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 100, 100)
	h.press(2, 200, 100)
	h.press(3, 200, 100)
	h.at(20*ms).move(3, 500, 500)
	h.at(30*ms).release(3, 500, 500)
	h.release(1, 100, 100)
	h.release(2, 200, 100)
	h.at(time.Second)
	h.expect([]call{
		{Name: "scale-start", Pos: f32.Pt(150, 100)},
		{Name: "scale-end"},
	})
}

func TestWheel(t *testing.T) {
	for _, tc := range []struct {
		label       string
		ctrl, shift bool
		wheel       pointer.Wheel
		want        call
	}{
		{"down", false, false, pointer.WheelDown, call{Name: "wheel", Pos: f32.Pt(5, 5), Value: 1.1}},
		{"up", false, false, pointer.WheelUp, call{Name: "wheel", Pos: f32.Pt(5, 5), Value: 1 / 1.1}},
		{"ctrl", true, false, pointer.WheelDown, call{Name: "ctrl-wheel", Pos: f32.Pt(5, 5), Value: 1.1}},
		{"ctrl wins over shift", true, true, pointer.WheelUp, call{Name: "ctrl-wheel", Pos: f32.Pt(5, 5), Value: 1 / 1.1}},
		{"shift", false, true, pointer.WheelDown, call{Name: "shift-wheel", Pos: f32.Pt(5, 5), Value: 1.1}},
		{"native left", true, false, pointer.WheelLeft, call{Name: "shift-wheel", Pos: f32.Pt(5, 5), Value: 1 / 1.1}},
		{"native right", false, false, pointer.WheelRight, call{Name: "shift-wheel", Pos: f32.Pt(5, 5), Value: 1.1}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			h := newHarness(t, testConfig())
			h.mods.ctrl, h.mods.shift = tc.ctrl, tc.shift
			h.wheel(tc.wheel, 5, 5)
			h.at(time.Second)
			h.expect([]call{tc.want})
		})
	}
}

func TestWheelSettlesPendingTap(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(50*ms).release(1, 10, 10)
	h.at(100*ms).wheel(pointer.WheelDown, 10, 10)
	h.at(time.Second)
	h.expect([]call{
		{Name: "tap", Pos: f32.Pt(10, 10)},
		{Name: "wheel", Pos: f32.Pt(10, 10), Value: 1.1},
	})
}

func TestWheelDuringMoveIgnored(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(50*ms).move(1, 20, 10)
	h.wheel(pointer.WheelDown, 20, 10)
	h.at(400*ms).release(1, 20, 10)
	h.at(time.Second)
	h.expect([]call{
		{Name: "move-start", Pos: f32.Pt(10, 10)},
		{Name: "move-to", Pos: f32.Pt(20, 10)},
		{Name: "move-end", Pos: f32.Pt(20, 10)},
	})
}

func TestSecondaryTap(t *testing.T) {
	h := newHarness(t, testConfig())
	h.send(pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary, Position: f32.Pt(7, 8)})
	h.at(600 * ms)
	h.send(pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: f32.Pt(7, 8)})
	h.at(time.Second)
	h.expect([]call{{Name: "secondary-tap", Pos: f32.Pt(7, 8)}})
}

func TestOutOfBounds(t *testing.T) {
	t.Run("press outside", func(t *testing.T) {
		h := newHarness(t, testConfig())
		h.press(1, -10, 10)
		h.at(100*ms).release(1, -10, 10)
		h.at(time.Second)
		h.expect(nil)
	})

	t.Run("leaves before resolution", func(t *testing.T) {
		h := newHarness(t, testConfig())
		h.press(1, 10, 10)
		h.at(20*ms).move(1, 10, -10)
		h.at(100*ms).release(1, 10, -10)
		h.at(time.Second)
		h.expect(nil)
	})
}

func TestCancel(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(50*ms).move(1, 20, 10)
	h.send(pointer.Event{Kind: pointer.Cancel})
	h.at(time.Second)
	h.expect([]call{
		{Name: "move-start", Pos: f32.Pt(10, 10)},
		{Name: "move-to", Pos: f32.Pt(20, 10)},
		{Name: "move-end", Pos: f32.Pt(20, 10)},
	})
}

func TestImpossibleEvents(t *testing.T) {
	h := newHarness(t, testConfig())
	h.release(4, 10, 10)
	h.move(4, 10, 10)
	h.r.HandleEvent(TimerEvent{Purpose: PurposeTap, Handle: 42})
	h.r.HandleEvent(TimerEvent{Purpose: PurposeLongPress})
	h.at(time.Second)
	h.expect(nil)
}

func TestExtraContactDuringMoveIgnored(t *testing.T) {
	h := newHarness(t, testConfig())
	h.press(1, 10, 10)
	h.at(50*ms).move(1, 20, 10)
	h.press(2, 100, 100)
	h.at(60*ms).release(2, 100, 100)
	h.at(400*ms).release(1, 20, 10)
	h.at(time.Second)
	h.expect([]call{
		{Name: "move-start", Pos: f32.Pt(10, 10)},
		{Name: "move-to", Pos: f32.Pt(20, 10)},
		{Name: "move-end", Pos: f32.Pt(20, 10)},
	})
}

func TestCallbacksDefaultToNoop(t *testing.T) {
	var tapped f32.Point
	cb := &Callbacks{OnTap: func(c Contact, pos f32.Point) { tapped = pos }}
	clock := &timer.Manual{}
	r := NewRecognizer(testConfig(), &surface.Region{Bounds: f32.Rect(0, 0, 100, 100)}, clock, nil, cb)

	r.HandleEvent(pointer.Event{Kind: pointer.Press, PointerID: 1, Position: f32.Pt(3, 4)})
	r.HandleEvent(pointer.Event{Kind: pointer.Release, PointerID: 1, Position: f32.Pt(3, 4), Time: 10 * ms})
	clock.Advance(time.Second)
	r.HandleEvent(pointer.Event{Kind: pointer.Press, PointerID: 1, Position: f32.Pt(3, 4), Wheel: pointer.WheelDown})
	r.HandleEvent(pointer.Event{Kind: pointer.Release, PointerID: 1, Position: f32.Pt(3, 4), Wheel: pointer.WheelDown})

	if tapped != f32.Pt(3, 4) {
		t.Errorf("got tap at %v, want (3, 4)", tapped)
	}
}
