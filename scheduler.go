package gesture

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is the fallback frame period used when no display
// refresh signal is available.
const DefaultFrameInterval = 25 * time.Millisecond

// Scheduler supplies the two kinds of future tick the recognizer needs.
// Implementations run every callback on the same goroutine that delivers
// input, so callbacks never race with dispatch.
type Scheduler interface {
	// RequestFrame runs fn on the next display refresh.
	RequestFrame(fn func())
	// Defer runs fn once the current dispatch has fully unwound.
	Defer(fn func())
}

// FrameLoop is a Scheduler driven by the host's frame callback. The host
// calls Frame once per display refresh (Scene.Update does this for
// Ebitengine games).
type FrameLoop struct {
	frames []func()
	tasks  []func()
	count  uint64
}

// NewFrameLoop creates an empty frame loop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// RequestFrame queues fn for the next Frame call.
func (l *FrameLoop) RequestFrame(fn func()) {
	l.frames = append(l.frames, fn)
}

// Defer queues fn to run after the frame callbacks of the next Frame call,
// or on the next RunDeferred call.
func (l *FrameLoop) Defer(fn func()) {
	l.tasks = append(l.tasks, fn)
}

// Frame runs the frame callbacks requested before this call, then the
// deferred tasks queued so far. Callbacks requested while the frame runs
// wait for the next Frame.
func (l *FrameLoop) Frame() {
	l.count++
	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn()
	}
	l.RunDeferred()
}

// RunDeferred runs the deferred tasks queued so far. Tasks deferred while
// they run wait for the next call.
func (l *FrameLoop) RunDeferred() {
	tasks := l.tasks
	l.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

// Pending reports how many frame callbacks and deferred tasks are queued.
func (l *FrameLoop) Pending() (frames, tasks int) {
	return len(l.frames), len(l.tasks)
}

// Frames returns how many times Frame has run.
func (l *FrameLoop) Frames() uint64 {
	return l.count
}

// TimerLoop is a Scheduler for hosts without a refresh signal: frames fire
// on a fixed interval timer. All callbacks, including those handed to
// Post from other goroutines, run on the goroutine executing Run.
type TimerLoop struct {
	interval time.Duration

	mu     sync.Mutex
	tasks  []func()
	frames []func()
	armed  bool
	wake   chan struct{}
}

// NewTimerLoop creates a timer loop with the given frame interval. A
// non-positive interval selects DefaultFrameInterval.
func NewTimerLoop(interval time.Duration) *TimerLoop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TimerLoop{interval: interval, wake: make(chan struct{}, 1)}
}

// Interval returns the frame period.
func (l *TimerLoop) Interval() time.Duration {
	return l.interval
}

// Post queues fn to run on the loop goroutine. Safe for concurrent use.
func (l *TimerLoop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.signal()
}

// Defer is Post: the task runs after the current callback returns.
func (l *TimerLoop) Defer(fn func()) {
	l.Post(fn)
}

// RequestFrame queues fn for the next timer frame, arming the timer if it
// is idle. All callbacks requested within one interval share one frame.
func (l *TimerLoop) RequestFrame(fn func()) {
	l.mu.Lock()
	l.frames = append(l.frames, fn)
	arm := !l.armed
	l.armed = true
	l.mu.Unlock()
	if arm {
		time.AfterFunc(l.interval, func() { l.Post(l.runFrame) })
	}
}

func (l *TimerLoop) runFrame() {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.armed = false
	l.mu.Unlock()
	for _, fn := range frames {
		fn()
	}
}

func (l *TimerLoop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes queued callbacks until ctx is cancelled. It must be called
// from exactly one goroutine.
func (l *TimerLoop) Run(ctx context.Context) error {
	for {
		l.mu.Lock()
		tasks := l.tasks
		l.tasks = nil
		l.mu.Unlock()

		for _, fn := range tasks {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
		}
		if len(tasks) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}
