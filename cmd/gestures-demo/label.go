package main

import (
	"fmt"
	"math"

	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/gesture"
	"honnef.co/go/gestures/io/key"
	"honnef.co/go/gestures/timer"
	"honnef.co/go/gestures/widget"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
)

// gestureLabel is a grey area that describes the last gesture made on it.
type gestureLabel struct {
	text string
	// saved is the text from before the latest move. A move that turns into a swipe shows the swipe, not the
	// undone move.
	saved    string
	detector widget.GestureDetector
}

func newGestureLabel(cfg gesture.Config, sched timer.Scheduler, keys *key.Tracker) *gestureLabel {
	l := &gestureLabel{text: "Try a gesture"}
	l.detector = widget.GestureDetector{
		Config:  cfg,
		Timers:  sched,
		Keys:    keys,
		Handler: l.callbacks(),
	}
	return l
}

func location(pos f32.Point) string {
	return fmt.Sprintf("x=%d y=%d", int(math.Round(float64(pos.X))), int(math.Round(float64(pos.Y))))
}

func (l *gestureLabel) callbacks() *gesture.Callbacks {
	return &gesture.Callbacks{
		OnTap: func(c gesture.Contact, pos f32.Point) {
			l.text = "tap " + location(pos)
		},
		OnDoubleTap: func(c gesture.Contact, pos f32.Point) {
			l.text = "double tap " + location(pos)
		},
		OnSecondaryTap: func(c gesture.Contact, pos f32.Point) {
			l.text = "secondary tap " + location(pos)
		},
		OnLongPress: func(c gesture.Contact, pos f32.Point) {
			l.text = "long press or move\n" + location(pos)
		},
		OnLongPressEnd: func(c gesture.Contact, pos f32.Point) {
			l.text = "long press " + location(pos)
		},
		OnMoveStart: func(c gesture.Contact, pos f32.Point) {
			l.saved = l.text
		},
		OnMoveTo: func(c gesture.Contact, pos f32.Point, velocity float32) {
			l.text = fmt.Sprintf("move to %s\nvelocity=%.0f", location(pos), velocity)
		},
		OnMoveEnd: func(c gesture.Contact, pos f32.Point) {
			l.text = "move end " + location(pos)
		},
		OnLongPressMoveTo: func(c gesture.Contact, pos f32.Point, velocity float32) {
			l.text = fmt.Sprintf("long press move to\n%s\nvelocity=%.0f", location(pos), velocity)
		},
		OnLongPressMoveEnd: func(c gesture.Contact, pos f32.Point) {
			l.text = "long press move end\n" + location(pos)
		},
		OnScale: func(c0, c1 gesture.Contact, ratio float32, focus f32.Point) {
			l.text = fmt.Sprintf("scale = %.3f centered\nat %s", ratio, location(focus))
		},
		OnSwipeHorizontal: func(c gesture.Contact, right bool) {
			l.text = l.saved
		},
		OnSwipeVertical: func(c gesture.Contact, down bool) {
			if down {
				l.text = "swipe down"
			} else {
				l.text = "swipe up"
			}
		},
		OnWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			if scale < 1 {
				l.text = "scroll up"
			} else {
				l.text = "scroll down"
			}
		},
		OnCtrlWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			if scale < 1 {
				l.text = "mouse wheel zoom out"
			} else {
				l.text = "mouse wheel zoom in"
			}
		},
		OnShiftWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			if scale < 1 {
				l.text = "scroll left"
			} else {
				l.text = "scroll right"
			}
		},
	}
}

func (l *gestureLabel) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return l.detector.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		paint.Fill(gtx.Ops, grey)
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.H6(th, l.text)
			lbl.Alignment = text.Middle
			return lbl.Layout(gtx)
		})
	})
}
