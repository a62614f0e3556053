package animation

import (
	"sync"
	"time"

	"github.com/osuushi/support/internal/logging"
)

const DefaultDuration = 250 * time.Millisecond

// Callbacks receive the interpolated fraction of a running animation. Any of
// them may be nil. OnStop always receives 1.
type Callbacks struct {
	OnStart   func(interpolation float64)
	OnAnimate func(interpolation float64)
	OnStop    func(interpolation float64)
}

type Driver struct {
	callbacks Callbacks
	clock     Clock

	mu           sync.Mutex
	animation    Animation
	scheduler    Scheduler
	duration     time.Duration
	interpolator Interpolator
	// Set while a frame runs. Posts made meanwhile are folded into a single
	// post when the frame ends.
	eatPosts   bool
	repostTail bool
}

type Option func(*Driver)

// WithClock sets the clock frames are timed with. SystemClock by default.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

func NewDriver(callbacks Callbacks, options ...Option) *Driver {
	d := &Driver{
		callbacks:    callbacks,
		clock:        SystemClock,
		duration:     DefaultDuration,
		interpolator: Accelerate{},
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Attach stops any running animation and binds the driver to s.
func (d *Driver) Attach(s Scheduler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.scheduler = s
}

// Detach stops any running animation and unbinds the scheduler. A detached
// driver ignores Start.
func (d *Driver) Detach() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.scheduler = nil
}

func (d *Driver) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.animation.Finished()
}

// Stop aborts the animation without calling OnStop.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if d.scheduler == nil {
		return
	}
	d.scheduler.Cancel(d)
	d.animation.Abort()
}

// Start runs the animation with the configured duration and interpolator.
func (d *Driver) Start() {
	d.StartWithin(d.Duration(), d.Interpolator())
}

func (d *Driver) StartWithin(duration time.Duration, interpolator Interpolator) {
	d.StartDelayedWithin(duration, interpolator, 0)
}

// StartDelayed is Start with the first frame held back by delay.
func (d *Driver) StartDelayed(delay time.Duration) {
	d.StartDelayedWithin(d.Duration(), d.Interpolator(), delay)
}

func (d *Driver) StartDelayedWithin(duration time.Duration, interpolator Interpolator, delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.scheduler == nil {
		return
	}
	d.animation.Reset(duration, interpolator)
	logging.Logger().Debug("animation start", "duration", duration, "delay", delay)
	d.post(delay)
}

func (d *Driver) SetDuration(duration time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.duration = duration
}

func (d *Driver) Duration() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duration
}

func (d *Driver) SetInterpolator(interpolator Interpolator) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interpolator = interpolator
}

func (d *Driver) Interpolator() Interpolator {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interpolator
}

// post must be called with d.mu held.
func (d *Driver) post(delay time.Duration) {
	if d.eatPosts {
		d.repostTail = true
		return
	}
	d.scheduler.Cancel(d)
	d.scheduler.Post(d, delay, d.frame)
}

// frame runs one animation frame. Callbacks run without d.mu held so they
// can start or stop the driver.
func (d *Driver) frame() {
	d.mu.Lock()
	if d.scheduler == nil {
		d.stopLocked()
		d.mu.Unlock()
		return
	}
	d.repostTail = false
	d.eatPosts = true
	first := d.animation.First()
	advanced := d.animation.Animate(d.clock.Now())
	interpolation := d.animation.Interpolation()
	d.mu.Unlock()

	if advanced {
		if first {
			call(d.callbacks.OnStart, interpolation)
		}
		d.mu.Lock()
		finished := d.animation.Finished()
		d.mu.Unlock()
		if finished {
			logging.Logger().Debug("animation stop")
			call(d.callbacks.OnStop, 1)
		} else {
			call(d.callbacks.OnAnimate, interpolation)
			d.mu.Lock()
			d.post(0)
			d.mu.Unlock()
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.eatPosts = false
	if d.repostTail && d.scheduler != nil {
		d.post(0)
	}
}

func call(fn func(float64), interpolation float64) {
	if fn != nil {
		fn(interpolation)
	}
}
