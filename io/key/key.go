// Package key tracks the modifier keys that reroute wheel gestures.
package key

import (
	"runtime"

	"gioui.org/io/event"
	"gioui.org/io/key"
)

// Tracker remembers whether a ctrl-equivalent or shift-equivalent modifier is held. Modifiers belong to the
// input device, not to a surface, so one Tracker is shared by all recognizers fed by the same window.
//
// The zero value is ready to use and applies the mapping of the platform the program runs on.
type Tracker struct {
	// GOOS selects the platform mapping. On darwin and ios the command key counts as ctrl. Empty means
	// runtime.GOOS.
	GOOS string

	ctrl  bool
	shift bool
}

// HandleKeyEvent updates the tracker. A press sets the flags for the modifiers it carries or is; any release
// clears both, no matter which key went up.
func (t *Tracker) HandleKeyEvent(ev key.Event) {
	switch ev.State {
	case key.Press:
		command := t.commandIsCtrl() && (ev.Name == key.NameCommand || ev.Modifiers.Contain(key.ModCommand))
		if ev.Name == key.NameCtrl || ev.Modifiers.Contain(key.ModCtrl) || command {
			t.ctrl = true
		}
		if ev.Name == key.NameShift || ev.Modifiers.Contain(key.ModShift) {
			t.shift = true
		}
	case key.Release:
		t.Clear()
	}
}

// Filters returns the Gio key filters that deliver the events a Tracker needs. Any release clears the tracker,
// so they match every key, not just the modifiers.
func (t *Tracker) Filters() []event.Filter {
	mods := key.ModCtrl | key.ModShift | key.ModCommand | key.ModAlt | key.ModSuper
	return []event.Filter{
		key.Filter{Optional: mods},
	}
}

func (t *Tracker) commandIsCtrl() bool {
	goos := t.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return goos == "darwin" || goos == "ios"
}

// Ctrl reports whether a ctrl-equivalent modifier is held.
func (t *Tracker) Ctrl() bool { return t.ctrl }

// Shift reports whether shift is held.
func (t *Tracker) Shift() bool { return t.shift }

// Clear forgets all held modifiers, for example when the window loses focus.
func (t *Tracker) Clear() {
	t.ctrl = false
	t.shift = false
}
