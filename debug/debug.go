// Package debug holds development switches shared by the other packages.
package debug

import (
	"fmt"
	"log"
)

// Enabled turns on assertions and trace logging. It is meant to be flipped by tests and demos, not toggled
// while events are being processed.
var Enabled = false

// Assert panics if cond is false and Enabled is set.
func Assert(cond bool) {
	if Enabled && !cond {
		panic("assertion failed")
	}
}

// Assertf is like Assert but includes a formatted message.
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// Logf logs a trace message if Enabled is set.
func Logf(format string, args ...any) {
	if Enabled {
		log.Printf(format, args...)
	}
}
