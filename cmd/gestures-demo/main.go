// Command gestures-demo shows the gesture recognizers at work: five screens that are changed by swiping
// horizontally, with gesture sensitive widgets on most of them.
package main

import (
	"flag"
	"log"
	"os"

	"honnef.co/go/gestures/debug"
	"honnef.co/go/gestures/gesture"
	"honnef.co/go/gestures/timer"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget/material"
)

func main() {
	configPath := flag.String("config", "", "load gesture configuration from `file`")
	trace := flag.Bool("trace", false, "log state transitions of the recognizers")
	flag.Parse()

	debug.Enabled = *trace
	cfg := gesture.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = gesture.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Gestures"))
		if err := run(w, cfg, *configPath == ""); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// run is the window's event loop. If autoDensity is set, the configured density is replaced by the window's.
func run(w *app.Window, cfg gesture.Config, autoDensity bool) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	loop := &timer.Loop{Wakeup: w.Invalidate}
	var p *pager

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if p == nil {
				if autoDensity {
					cfg.Density = gesture.DensityFromMetric(gtx.Metric)
				}
				p = newPager(cfg, loop)
			}
			layoutFrame(gtx, loop, func(gtx layout.Context) layout.Dimensions {
				return p.Layout(gtx, th)
			})
			e.Frame(gtx.Ops)
		}
	}
}

// layoutFrame lays out w, which handles the input queued for the frame, and only then runs the timers that
// fired since the last frame. A release and the expiry of a timer due in the same frame are thus seen in that
// order. Timer callbacks run on the same goroutine as input events.
func layoutFrame(gtx layout.Context, loop *timer.Loop, w layout.Widget) {
	w(gtx)
	if loop.Run() > 0 {
		gtx.Execute(op.InvalidateCmd{})
	}
}
