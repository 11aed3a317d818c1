package main

import (
	"image"
	"image/color"
	"time"

	"honnef.co/go/gestures/animation"
	"honnef.co/go/gestures/gesture"
	"honnef.co/go/gestures/io/key"
	"honnef.co/go/gestures/timer"
	"honnef.co/go/gestures/widget"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

const slideDuration = 300 * time.Millisecond

var (
	background = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	grey       = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

type themedWidget interface {
	Layout(gtx layout.Context, th *material.Theme) layout.Dimensions
}

// pager shows one screen at a time. A horizontal swipe anywhere slides in the neighboring screen.
type pager struct {
	loop *timer.Loop
	keys key.Tracker

	screens  []themedWidget
	current  int
	previous int
	// slide is the offset of the current screen, in screen widths, while it slides in.
	slide    animation.Animation[float32]
	detector widget.GestureDetector
}

func newPager(cfg gesture.Config, loop *timer.Loop) *pager {
	p := &pager{loop: loop}
	p.slide.Compute = animation.Lerp[float32]
	p.slide.Curve = animation.EaseOutCubic
	p.detector = widget.GestureDetector{
		Config: cfg,
		Timers: loop,
		Keys:   &p.keys,
		Handler: &gesture.Callbacks{
			OnSwipeHorizontal: func(c gesture.Contact, right bool) { p.swipe(right) },
		},
	}

	p.screens = []themedWidget{
		&textScreen{
			title: "First screen",
			body: "Swipe to the left to pull the next screen in from the right.\n\n" +
				"On the screens after this one you can also swipe right to pull in the previous screen.\n\n" +
				"There are five screens.\n\n" +
				"Mouse users hold the left button and swipe the mouse.",
		},
		&textScreen{
			title: "Second screen",
			body: "The grey area is gesture sensitive. Try a tap, a double tap, a long press, a move, " +
				"a secondary click, the scroll wheel, or a pinch.\n\n" +
				"The coordinates are those of the grey area.\n\n" +
				"Zoom with ctrl and the scroll wheel (command on macOS), scroll sideways with shift.",
			content: newGestureLabel(cfg, loop, &p.keys),
		},
		&textScreen{
			title: "Third screen",
			body: "Vertical swipes are reported by the grey area, horizontal ones change the screen.\n\n" +
				"A move that is fast enough becomes a swipe: the move is undone and only the swipe remains.",
			content: newGestureLabel(cfg, loop, &p.keys),
		},
		&textScreen{
			title: "Fourth screen",
			body: "Drag or pinch the box. Mouse users zoom with ctrl and the scroll wheel.\n\n" +
				"Long press the box and wait for the circle, then move to drag it.\n\n" +
				"Double tap to restore its size.",
			content: newMovableBox(cfg, loop, &p.keys),
		},
		&textScreen{
			title: "Last screen",
			body: "Zoom, scroll, and (slowly) pan the grid. Tap a cell to mark it.\n\n" +
				"Double tap or long press to zoom out fully.\n\n" +
				"Mouse users zoom with ctrl and the scroll wheel, pan with shift and the scroll wheel, " +
				"and scroll with the scroll wheel.",
			content: newZoomGrid(cfg, loop, &p.keys),
		},
	}
	return p
}

// swipe moves to the previous screen for a swipe to the right and to the next one otherwise.
func (p *pager) swipe(right bool) {
	next, from := p.current+1, float32(1)
	if right {
		next, from = p.current-1, -1
	}
	if next < 0 || next >= len(p.screens) {
		return
	}
	p.previous, p.current = p.current, next
	p.slide.Start(p.loop.Now(), slideDuration, from, 0)
}

func (p *pager) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return p.detector.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		paint.Fill(gtx.Ops, background)
		if !p.slide.Running() {
			return p.screens[p.current].Layout(gtx, th)
		}
		off, done := p.slide.Evaluate(p.loop.Now())
		width := float32(gtx.Constraints.Max.X)
		if !done {
			p.layoutAt(gtx, th, p.previous, (off-p.slide.StartValue)*width)
			gtx.Execute(op.InvalidateCmd{})
		}
		p.layoutAt(gtx, th, p.current, off*width)
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
}

func (p *pager) layoutAt(gtx layout.Context, th *material.Theme, i int, x float32) {
	defer op.Offset(image.Pt(int(x), 0)).Push(gtx.Ops).Pop()
	p.screens[i].Layout(gtx, th)
}

// textScreen shows a title and an explanation, below optional content that takes the upper half.
type textScreen struct {
	title   string
	body    string
	content themedWidget
}

func (s *textScreen) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	text := func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.H5(th, s.title).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
				layout.Rigid(material.Body1(th, s.body).Layout),
			)
		})
	}
	if s.content == nil {
		return text(gtx)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(0.5, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return s.content.Layout(gtx, th)
			})
		}),
		layout.Flexed(0.5, text),
	)
}
