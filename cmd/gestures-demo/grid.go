package main

import (
	"image"
	"image/color"
	"time"

	"honnef.co/go/gestures/animation"
	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/gesture"
	"honnef.co/go/gestures/io/key"
	"honnef.co/go/gestures/surface"
	"honnef.co/go/gestures/timer"
	"honnef.co/go/gestures/widget"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

const (
	gridCells = 8
	maxZoom   = 8
)

var (
	lightCell  = color.NRGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}
	darkCell   = color.NRGBA{R: 0x40, G: 0x48, B: 0x60, A: 0xff}
	markedCell = color.NRGBA{R: 0xf0, G: 0xa0, B: 0x20, A: 0xff}
)

// zoomGrid is a checkerboard that can be zoomed and panned, but never shows anything outside the board.
type zoomGrid struct {
	sched    timer.Scheduler
	detector widget.GestureDetector

	size f32.Point
	// The board is drawn at origin, scaled by zoom.
	origin f32.Point
	zoom   float32
	last   f32.Point

	marked  image.Point
	hasMark bool

	// zoomOut animates from fromZoom and fromOrigin to the full board.
	zoomOut    animation.Animation[float32]
	fromZoom   float32
	fromOrigin f32.Point
}

func newZoomGrid(cfg gesture.Config, sched timer.Scheduler, keys *key.Tracker) *zoomGrid {
	g := &zoomGrid{sched: sched, zoom: 1}
	g.zoomOut.Compute = animation.Lerp[float32]
	g.zoomOut.Curve = animation.EaseOutCubic
	g.detector = widget.GestureDetector{
		Config:  cfg,
		Timers:  sched,
		Keys:    keys,
		Handler: g.callbacks(),
	}
	return g
}

func (g *zoomGrid) callbacks() *gesture.Callbacks {
	reset := func(c gesture.Contact, pos f32.Point) {
		g.fromZoom, g.fromOrigin = g.zoom, g.origin
		g.zoomOut.Start(g.sched.Now(), 300*time.Millisecond, 0, 1)
	}
	return &gesture.Callbacks{
		OnTap: func(c gesture.Contact, pos f32.Point) {
			g.mark(pos)
		},
		OnDoubleTap: reset,
		OnLongPress: reset,
		OnMoveStart: func(c gesture.Contact, pos f32.Point) {
			g.last = pos
		},
		OnMoveTo: func(c gesture.Contact, pos f32.Point, velocity float32) {
			g.pan(pos.Sub(g.last))
			g.last = pos
		},
		OnScale: func(c0, c1 gesture.Contact, ratio float32, focus f32.Point) {
			g.zoomAt(focus, ratio)
		},
		OnCtrlWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			g.zoomAt(pos, scale)
		},
		OnWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			g.pan(f32.Pt(0, (1-scale)*g.size.Y/2))
		},
		OnShiftWheel: func(c gesture.Contact, scale float32, pos f32.Point) {
			g.pan(f32.Pt((1-scale)*g.size.X/2, 0))
		},
	}
}

func (g *zoomGrid) view() f32.Affine2D {
	return f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(g.zoom, g.zoom)).Offset(g.origin)
}

// mark highlights the cell under pos.
func (g *zoomGrid) mark(pos f32.Point) {
	var board surface.Region
	board.Bounds = f32.Rectangle{Max: g.size}
	board.PushTransform(g.view().Invert())
	p := board.Local(pos)
	if !board.Contains(p) {
		return
	}
	g.marked = image.Pt(int(p.X*gridCells/g.size.X), int(p.Y*gridCells/g.size.Y))
	g.hasMark = true
}

func (g *zoomGrid) zoomAt(focus f32.Point, ratio float32) {
	z := f32.Clamp(g.zoom*ratio, 1, maxZoom)
	// Keep the board point under focus where it is.
	p := focus.Sub(g.origin).Mul(1 / g.zoom)
	g.origin = focus.Sub(p.Mul(z))
	g.zoom = z
	g.constrain()
}

func (g *zoomGrid) pan(d f32.Point) {
	g.origin = g.origin.Add(d)
	g.constrain()
}

func (g *zoomGrid) constrain() {
	g.origin.X = f32.Clamp(g.origin.X, g.size.X-g.size.X*g.zoom, 0)
	g.origin.Y = f32.Clamp(g.origin.Y, g.size.Y-g.size.Y*g.zoom, 0)
}

func (g *zoomGrid) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return g.detector.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		g.size = f32.FPt(gtx.Constraints.Max)
		if g.zoomOut.Running() {
			t, _ := g.zoomOut.Evaluate(g.sched.Now())
			g.zoom = animation.Lerp(g.fromZoom, 1, float64(t))
			g.origin = g.fromOrigin.Mul(1 - t)
			gtx.Execute(op.InvalidateCmd{})
		}
		g.constrain()

		defer op.Affine(g.view()).Push(gtx.Ops).Pop()
		cell := image.Pt(gtx.Constraints.Max.X/gridCells, gtx.Constraints.Max.Y/gridCells)
		for y := range gridCells {
			for x := range gridCells {
				c := lightCell
				if (x+y)%2 == 1 {
					c = darkCell
				}
				if g.hasMark && g.marked == image.Pt(x, y) {
					c = markedCell
				}
				r := image.Rect(x*cell.X, y*cell.Y, (x+1)*cell.X, (y+1)*cell.Y)
				paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
			}
		}
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
}
