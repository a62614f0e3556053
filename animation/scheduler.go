package animation

import (
	"context"
	"sort"
	"sync"
	"time"
)

// DefaultFrameInterval is the frame period of a TickerScheduler built with a
// zero interval.
const DefaultFrameInterval = 10 * time.Millisecond

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Scheduler runs callbacks on animation frames. Posting under a key replaces
// whatever that key had pending; Cancel drops it.
type Scheduler interface {
	// Post runs fn on the first frame at least delay from now.
	Post(key any, delay time.Duration, fn func())
	Cancel(key any)
}

type pendingFrame struct {
	due time.Time
	seq uint64
	fn  func()
}

// TickerScheduler runs posted callbacks serially, one batch per frame, from
// the goroutine calling Run.
type TickerScheduler struct {
	interval time.Duration
	clock    Clock

	mu      sync.Mutex
	seq     uint64
	pending map[any]pendingFrame
}

func NewTickerScheduler(interval time.Duration, clock Clock) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if clock == nil {
		clock = SystemClock
	}
	return &TickerScheduler{
		interval: interval,
		clock:    clock,
		pending:  map[any]pendingFrame{},
	}
}

func (s *TickerScheduler) Post(key any, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending[key] = pendingFrame{due: s.clock.Now().Add(delay), seq: s.seq, fn: fn}
}

func (s *TickerScheduler) Cancel(key any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
}

// Pending returns the number of callbacks waiting for a frame.
func (s *TickerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Step runs one frame at now: every callback due by then, in due order.
// Callbacks posted while the frame runs wait for the next one. Step returns
// the number of callbacks run.
func (s *TickerScheduler) Step(now time.Time) int {
	s.mu.Lock()
	var due []pendingFrame
	for key, frame := range s.pending {
		if !frame.due.After(now) {
			due = append(due, frame)
			delete(s.pending, key)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, frame := range due {
		frame.fn()
	}
	return len(due)
}

// Run steps a frame every interval until ctx is done.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step(s.clock.Now())
		}
	}
}
