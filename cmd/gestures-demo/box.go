package main

import (
	"image"
	"image/color"
	"time"

	"honnef.co/go/gestures/animation"
	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/gesture"
	"honnef.co/go/gestures/io/key"
	"honnef.co/go/gestures/timer"
	"honnef.co/go/gestures/widget"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}
	blue  = color.NRGBA{R: 0x20, G: 0x40, B: 0xe0, A: 0xff}
)

const minBoxScale = 0.25

// movableBox is a square that can be dragged and zoomed within its area.
type movableBox struct {
	sched    timer.Scheduler
	detector widget.GestureDetector

	bounds f32.Rectangle
	// edge is the unscaled edge length.
	edge   float32
	center f32.Point
	scale  float32
	placed bool

	grabbed bool
	last    f32.Point
	// feedback marks a long press on the box.
	feedback    bool
	feedbackPos f32.Point
	restore     animation.Animation[float32]
}

func newMovableBox(cfg gesture.Config, sched timer.Scheduler, keys *key.Tracker) *movableBox {
	b := &movableBox{sched: sched, scale: 1}
	b.restore.Compute = animation.Lerp[float32]
	b.restore.Curve = animation.EaseOutBack
	b.detector = widget.GestureDetector{
		Config:  cfg,
		Timers:  sched,
		Keys:    keys,
		Handler: b.callbacks(),
	}
	return b
}

func (b *movableBox) callbacks() *gesture.Callbacks {
	grab := func(c gesture.Contact, pos f32.Point) {
		b.grabbed = b.inside(pos)
		b.last = pos
	}
	drag := func(c gesture.Contact, pos f32.Point, velocity float32) {
		if b.grabbed {
			b.moveBy(pos.Sub(b.last))
		}
		b.last = pos
		b.feedbackPos = pos
	}
	release := func(c gesture.Contact, pos f32.Point) {
		b.grabbed = false
		b.feedback = false
	}
	return &gesture.Callbacks{
		OnMoveStart:          grab,
		OnMoveTo:             drag,
		OnMoveEnd:            release,
		OnLongPressMoveStart: grab,
		OnLongPressMoveTo:    drag,
		OnLongPressMoveEnd:   release,
		OnLongPressEnd:       release,
		OnLongPress: func(c gesture.Contact, pos f32.Point) {
			b.feedback = b.inside(pos)
			b.feedbackPos = pos
		},
		OnScale: func(c0, c1 gesture.Contact, ratio float32, focus f32.Point) {
			if b.inside(focus) {
				b.zoom(ratio)
			}
		},
		OnCtrlWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			if b.inside(pos) {
				b.zoom(scale)
			}
		},
		OnDoubleTap: func(c gesture.Contact, pos f32.Point) {
			b.restore.Start(b.sched.Now(), 400*time.Millisecond, b.scale, 1)
		},
	}
}

func (b *movableBox) rect() f32.Rectangle {
	half := b.edge * b.scale / 2
	return f32.Rectangle{
		Min: b.center.Sub(f32.Pt(half, half)),
		Max: b.center.Add(f32.Pt(half, half)),
	}
}

func (b *movableBox) inside(p f32.Point) bool {
	return b.rect().Contains(p)
}

func (b *movableBox) moveBy(d f32.Point) {
	b.center = b.center.Add(d)
	b.constrain()
}

func (b *movableBox) zoom(ratio float32) {
	b.scale *= ratio
	b.constrain()
}

// constrain keeps the box within its area.
func (b *movableBox) constrain() {
	if b.edge <= 0 {
		return
	}
	maxScale := min(b.bounds.Dx(), b.bounds.Dy()) / b.edge
	b.scale = f32.Clamp(b.scale, minBoxScale, max(minBoxScale, maxScale))
	half := b.edge * b.scale / 2
	b.center.X = f32.Clamp(b.center.X, half, max(half, b.bounds.Dx()-half))
	b.center.Y = f32.Clamp(b.center.Y, half, max(half, b.bounds.Dy()-half))
}

func (b *movableBox) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return b.detector.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		b.bounds = f32.FRect(image.Rectangle{Max: gtx.Constraints.Max})
		b.edge = float32(gtx.Dp(unit.Dp(100)))
		if !b.placed {
			b.center = b.bounds.Max.Mul(0.5)
			b.placed = true
		}
		if b.restore.Running() {
			b.scale, _ = b.restore.Evaluate(b.sched.Now())
			gtx.Execute(op.InvalidateCmd{})
		}
		b.constrain()

		paint.Fill(gtx.Ops, white)
		r := b.rect()
		box := image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
		paint.FillShape(gtx.Ops, red, clip.Rect(box).Op())
		if b.feedback {
			radius := int(b.edge / 3)
			p := image.Pt(int(b.feedbackPos.X), int(b.feedbackPos.Y))
			circle := clip.Ellipse(image.Rectangle{
				Min: p.Sub(image.Pt(radius, radius)),
				Max: p.Add(image.Pt(radius, radius)),
			})
			paint.FillShape(gtx.Ops, blue, clip.Stroke{Path: circle.Path(gtx.Ops), Width: 4}.Op())
		}
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
}
