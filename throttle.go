package gesture

type throttleState uint8

const (
	throttleIdle       throttleState = iota // no frame requested
	throttleScheduled                       // a frame is requested
	throttleEndPending                      // the requested frame will carry the final flush
	throttleEnded                           // finished; kicks are ignored
)

// FrameThrottle coalesces bursts of updates into at most one callback per
// frame and guarantees that the final flush runs after any pending update.
//
// It is not safe for concurrent use; all calls must come from the
// scheduler's goroutine.
type FrameThrottle struct {
	sched    Scheduler
	callback func()
	state    throttleState
	pending  bool
	actions  []func()

	kicks uint64
	runs  uint64
}

// NewFrameThrottle creates an idle throttle that invokes callback on frames
// requested from sched.
func NewFrameThrottle(sched Scheduler, callback func()) *FrameThrottle {
	return &FrameThrottle{sched: sched, callback: callback}
}

// Kick marks an update as pending and requests a frame if none is
// outstanding. Kicks after End are ignored.
func (t *FrameThrottle) Kick() {
	if t.state == throttleEnded {
		return
	}
	t.kicks++
	t.pending = true
	if t.state == throttleIdle {
		t.state = throttleScheduled
		t.sched.RequestFrame(t.tick)
	}
}

// End finishes the throttle. When idle, flush runs synchronously. When a
// frame is outstanding, that frame runs the callback (if an update is
// pending) followed by flush, and nothing is scheduled afterwards.
func (t *FrameThrottle) End(flush func()) {
	switch t.state {
	case throttleEnded:
		return
	case throttleIdle:
		t.state = throttleEnded
		t.pending = false
		if flush != nil {
			flush()
		}
	default:
		t.state = throttleEndPending
		if flush != nil {
			t.actions = append(t.actions, flush)
		}
	}
}

// tick is the frame callback.
func (t *FrameThrottle) tick() {
	if t.state == throttleEndPending {
		t.state = throttleEnded
		if t.pending {
			t.pending = false
			t.run()
		}
		actions := t.actions
		t.actions = nil
		for _, fn := range actions {
			fn()
		}
		return
	}
	if t.state != throttleScheduled {
		return
	}

	t.pending = false
	t.run()

	switch {
	case t.state == throttleEndPending:
		// End was called from inside the callback; carry the flush on one
		// more frame so it never runs re-entrantly.
		t.sched.RequestFrame(t.tick)
	case t.pending:
		t.sched.RequestFrame(t.tick)
	default:
		t.state = throttleIdle
	}
}

func (t *FrameThrottle) run() {
	t.runs++
	if t.callback != nil {
		t.callback()
	}
}

// Scheduled reports whether a frame is outstanding.
func (t *FrameThrottle) Scheduled() bool {
	return t.state == throttleScheduled || t.state == throttleEndPending
}

// Ended reports whether End has completed its flush.
func (t *FrameThrottle) Ended() bool {
	return t.state == throttleEnded
}

// Coalesced returns how many kicks were absorbed without producing their
// own callback invocation.
func (t *FrameThrottle) Coalesced() uint64 {
	if t.kicks < t.runs {
		return 0
	}
	return t.kicks - t.runs
}
