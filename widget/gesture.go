// Package widget connects gesture recognizers to Gio windows.
package widget

import (
	"image"
	"math"

	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/gesture"
	"honnef.co/go/gestures/io/key"
	"honnef.co/go/gestures/io/pointer"
	"honnef.co/go/gestures/surface"
	"honnef.co/go/gestures/timer"

	"gioui.org/io/event"
	giokey "gioui.org/io/key"
	giopointer "gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// GestureDetector makes the area it is laid out in gesture sensitive. It converts the Gio pointer events of
// that area and feeds them to a recognizer, which reports to Handler.
//
// Config, Handler, Keys and Timers are read on the first call to Layout and must not change afterwards.
type GestureDetector struct {
	Config  gesture.Config
	Handler gesture.Handler
	// Keys tracks modifiers. It should be shared by all detectors of a window. A nil Keys disables rerouting
	// of wheel steps.
	Keys *key.Tracker
	// Timers schedules the recognizer's timers. For a Loop, the window has to call Loop.Run on every frame.
	// It is required; Layout panics without it.
	Timers timer.Scheduler

	region     surface.Region
	doubleTap  pointer.DoubleTapper
	recognizer *gesture.Recognizer
}

// Recognizer returns the detector's recognizer. It is nil before the first call to Layout.
func (g *GestureDetector) Recognizer() *gesture.Recognizer {
	return g.recognizer
}

func (g *GestureDetector) init() {
	if g.recognizer != nil {
		return
	}
	if g.Timers == nil {
		panic("widget: GestureDetector without Timers")
	}
	g.doubleTap = pointer.DoubleTapper{
		Window:   g.Config.DoubleTapTime,
		Distance: g.Config.DoubleTapDistance,
	}
	var mods gesture.Modifiers
	if g.Keys != nil {
		mods = g.Keys
	}
	g.recognizer = gesture.NewRecognizer(g.Config, &g.region, g.Timers, mods, g.Handler)
}

// Layout processes pending events and registers the detector for the area of the maximum constraints. w, if
// not nil, is laid out inside that area, so that the detector keeps receiving the events of its children.
func (g *GestureDetector) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	g.init()
	size := gtx.Constraints.Max
	g.region.Bounds = f32.FRect(image.Rectangle{Max: size})

	g.processKeys(gtx)
	for {
		ev, ok := gtx.Event(giopointer.Filter{
			Target:  g,
			Kinds:   giopointer.Press | giopointer.Release | giopointer.Drag | giopointer.Cancel | giopointer.Scroll,
			ScrollX: giopointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
			ScrollY: giopointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		})
		if !ok {
			break
		}
		pev, ok := ev.(giopointer.Event)
		if !ok {
			continue
		}
		for _, cev := range pointer.FromRaw(pev, g.Timers.Now()) {
			g.recognizer.HandleEvent(g.doubleTap.Filter(cev))
		}
	}

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, g)
	if w != nil {
		gtx.Constraints.Min = size
		w(gtx)
	}
	return layout.Dimensions{Size: size}
}

func (g *GestureDetector) processKeys(gtx layout.Context) {
	if g.Keys == nil {
		return
	}
	filters := g.Keys.Filters()
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		if kev, ok := ev.(giokey.Event); ok {
			g.Keys.HandleKeyEvent(kev)
		}
	}
}
