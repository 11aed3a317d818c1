// Package animation interpolates values over time for transitions driven by gestures.
package animation

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Progress returns how far now is into the interval [start, start+d), clamped to [0, 1].
func Progress(start, d, now time.Duration) float64 {
	switch {
	case now <= start:
		return 0
	case now >= start+d || d <= 0:
		return 1
	default:
		return float64(now-start) / float64(d)
	}
}

type Tween[T any] func(start, end T, progress float64) T
type Ease func(t float64) float64

var _ Tween[float32] = Lerp[float32]

func Lerp[T constraints.Integer | constraints.Float](start, end T, t float64) T {
	switch t {
	case 0:
		return start
	case 1:
		return end
	default:
		return T(float64(start) + float64(end-start)*t)
	}
}

func Linear(t float64) float64 {
	return t
}

func EaseOutCubic(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}

func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
}

// Animation moves a value from StartValue to EndValue. Times are on the clock of a timer.Scheduler.
//
// Compute and Curve survive Start, so an Animation can be configured once and restarted for every transition.
type Animation[T any] struct {
	StartTime  time.Duration
	Duration   time.Duration
	StartValue T
	EndValue   T
	Compute    Tween[T]
	Curve      Ease

	running bool
}

func (anim *Animation[T]) Start(now, d time.Duration, start, end T) {
	*anim = Animation[T]{
		StartTime:  now,
		Duration:   d,
		StartValue: start,
		EndValue:   end,
		Compute:    anim.Compute,
		Curve:      anim.Curve,
		running:    true,
	}
}

// Running reports whether the animation has been started and hasn't yet been evaluated past its end.
func (anim *Animation[T]) Running() bool {
	return anim.running
}

func (anim *Animation[T]) Evaluate(now time.Duration) (v T, done bool) {
	t := Progress(anim.StartTime, anim.Duration, now)
	switch t {
	case 0:
		return anim.StartValue, false
	case 1:
		anim.running = false
		return anim.EndValue, true
	default:
		if anim.Curve != nil {
			t = anim.Curve(t)
		}
		return anim.Compute(anim.StartValue, anim.EndValue, t), false
	}
}
