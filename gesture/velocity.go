package gesture

import (
	"time"

	"honnef.co/go/gestures/f32"
)

// velocitySample measures how fast a moving contact traveled during the last sampling interval.
type velocitySample struct {
	pos   f32.Point
	time  time.Duration
	value float32
}

func (v *velocitySample) start(pos f32.Point, now time.Duration) {
	*v = velocitySample{pos: pos, time: now}
}

func (v *velocitySample) sample(pos f32.Point, now time.Duration, density float32) {
	v.value = f32.Velocity(f32.Distance(v.pos, pos), now-v.time, density)
	v.pos = pos
	v.time = now
}
