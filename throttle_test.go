package gesture

import "testing"

func TestThrottleCoalescesKicks(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	th := NewFrameThrottle(loop, func() { calls++ })

	th.Kick()
	th.Kick()
	th.Kick()
	if calls != 0 {
		t.Fatalf("callback ran before frame: %d", calls)
	}
	if frames, _ := loop.Pending(); frames != 1 {
		t.Fatalf("pending frames = %d, want 1", frames)
	}

	loop.Frame()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if th.Coalesced() != 2 {
		t.Errorf("Coalesced() = %d, want 2", th.Coalesced())
	}
	if th.Scheduled() {
		t.Error("throttle should be idle after frame with no new kicks")
	}

	loop.Frame()
	if calls != 1 {
		t.Errorf("idle frame ran callback: calls = %d", calls)
	}
}

func TestThrottleKickDuringCallbackReschedules(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	var th *FrameThrottle
	th = NewFrameThrottle(loop, func() {
		calls++
		if calls == 1 {
			th.Kick()
		}
	})

	th.Kick()
	loop.Frame()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if !th.Scheduled() {
		t.Fatal("kick inside callback should request another frame")
	}
	loop.Frame()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestThrottleEndIdleFlushesSynchronously(t *testing.T) {
	loop := NewFrameLoop()
	th := NewFrameThrottle(loop, func() { t.Error("callback must not run") })

	flushed := false
	th.End(func() { flushed = true })
	if !flushed {
		t.Error("End on an idle throttle should flush immediately")
	}
	if !th.Ended() {
		t.Error("Ended() = false, want true")
	}
	if frames, _ := loop.Pending(); frames != 0 {
		t.Errorf("pending frames = %d, want 0", frames)
	}
}

func TestThrottleEndAfterPendingKick(t *testing.T) {
	loop := NewFrameLoop()
	var order []string
	th := NewFrameThrottle(loop, func() { order = append(order, "move") })

	th.Kick()
	th.End(func() { order = append(order, "end") })
	if len(order) != 0 {
		t.Fatalf("End with a frame outstanding ran early: %v", order)
	}

	loop.Frame()
	if len(order) != 2 || order[0] != "move" || order[1] != "end" {
		t.Fatalf("order = %v, want [move end]", order)
	}
	if !th.Ended() {
		t.Error("Ended() = false, want true")
	}
	if frames, _ := loop.Pending(); frames != 0 {
		t.Errorf("pending frames = %d, want 0", frames)
	}
}

func TestThrottleKickAfterEndIgnored(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	th := NewFrameThrottle(loop, func() { calls++ })

	th.End(nil)
	th.Kick()
	loop.Frame()
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if th.Scheduled() {
		t.Error("ended throttle must not schedule")
	}
}

func TestThrottleEndTwice(t *testing.T) {
	loop := NewFrameLoop()
	th := NewFrameThrottle(loop, nil)

	n := 0
	th.Kick()
	th.End(func() { n++ })
	th.End(func() { n++ })
	loop.Frame()
	if n != 2 {
		t.Errorf("flushes = %d, want 2 (both queued before the frame)", n)
	}

	th.End(func() { n++ })
	if n != 2 {
		t.Errorf("End after completion flushed again: %d", n)
	}
}

func TestThrottleEndInsideCallback(t *testing.T) {
	loop := NewFrameLoop()
	var order []string
	var th *FrameThrottle
	th = NewFrameThrottle(loop, func() {
		order = append(order, "move")
		th.End(func() { order = append(order, "end") })
	})

	th.Kick()
	loop.Frame()
	if len(order) != 1 {
		t.Fatalf("order after first frame = %v, want [move]", order)
	}
	loop.Frame()
	if len(order) != 2 || order[1] != "end" {
		t.Fatalf("order = %v, want [move end]", order)
	}
}
