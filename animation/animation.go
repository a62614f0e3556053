// Package animation drives time based animations off a frame scheduler.
//
// A Driver owns one Animation timeline. Every frame it samples the clock,
// runs the elapsed fraction through an Interpolator and hands the result to
// its Callbacks, then asks its Scheduler for another frame until the duration
// has passed.
package animation

import "time"

// Animation is a single timeline. The zero value is finished.
type Animation struct {
	started       bool
	running       bool
	start         time.Time
	duration      time.Duration
	interpolator  Interpolator
	interpolation float64
}

// Reset arms the timeline. Its clock starts on the next call to Animate.
func (a *Animation) Reset(duration time.Duration, interpolator Interpolator) {
	a.running = true
	a.started = false
	a.duration = duration
	a.interpolator = interpolator
	a.interpolation = 0
}

// Abort finishes the timeline immediately.
func (a *Animation) Abort() {
	a.running = false
	a.started = false
	a.interpolation = 0
}

func (a *Animation) Finished() bool { return !a.running }

// First reports whether the next Animate call starts the clock.
func (a *Animation) First() bool { return !a.started }

func (a *Animation) Interpolation() float64 { return a.interpolation }

// Animate advances the timeline to now. It reports false when the timeline
// was already finished. The first call records the start time and leaves the
// interpolation at 0; a call at or past the duration finishes the timeline.
func (a *Animation) Animate(now time.Time) bool {
	if a.Finished() {
		return false
	}
	if !a.started {
		a.start = now
		a.started = true
		return true
	}
	elapsed := now.Sub(a.start)
	if elapsed < a.duration {
		fraction := float64(elapsed) / float64(a.duration)
		if a.interpolator != nil {
			fraction = a.interpolator.Interpolation(fraction)
		}
		a.interpolation = fraction
	} else {
		a.Abort()
	}
	return true
}
