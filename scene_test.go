package gesture

import (
	"testing"
	"time"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root() should not be nil")
	}
	if s.Dispatcher() == nil || s.Recognizer() == nil || s.Frames() == nil {
		t.Fatal("scene should own a dispatcher, recognizer and frame loop")
	}
	// The recognizer keeps its press listeners on the root.
	if !s.Dispatcher().Listening(s.Root(), EventMouseDown) || !s.Dispatcher().Listening(s.Root(), EventTouchStart) {
		t.Error("root should carry the press listeners")
	}
}

func TestNewSceneWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = -1
	if _, err := NewSceneWithConfig(cfg); err == nil {
		t.Error("expected error for negative threshold")
	}

	cfg = DefaultConfig()
	cfg.FrameInterval = time.Millisecond
	s, err := NewSceneWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Frames() == nil {
		t.Error("FrameInterval alone should leave the scene on its frame loop")
	}

	cfg = DefaultConfig()
	loop := NewTimerLoop(0)
	cfg.Scheduler = loop
	s, err = NewSceneWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Frames() != nil {
		t.Error("a configured scheduler replaces the frame loop")
	}
	s.Update() // no frame loop to drive; must not panic
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	if s.rec.em.store != store {
		t.Error("entity store not set on the emitter")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !s.debug || !globalDebug {
		t.Error("debug mode should be enabled")
	}
}

func TestClickSynthesis(t *testing.T) {
	s := NewScene()
	a := NewElement("a", 50, 50)
	b := NewElement("b", 50, 50)
	b.SetPosition(100, 0)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var clicked []*Node
	s.On(s.Root(), EventClick, func(e *Event) { clicked = append(clicked, e.Target) })

	s.MouseDown(10, 10, MouseButtonLeft)
	s.MouseUp(20, 20, MouseButtonLeft)
	if len(clicked) != 1 || clicked[0] != a {
		t.Fatalf("clicked = %v, want [a]", clicked)
	}

	// Press and release over different nodes: no click.
	s.MouseDown(10, 10, MouseButtonLeft)
	s.MouseUp(110, 10, MouseButtonLeft)
	if len(clicked) != 1 {
		t.Errorf("release on another node clicked: %d", len(clicked))
	}

	// Secondary buttons never click.
	s.MouseDown(10, 10, MouseButtonRight)
	s.MouseUp(10, 10, MouseButtonRight)
	if len(clicked) != 1 {
		t.Errorf("right button clicked: %d", len(clicked))
	}
}

func TestMouseEventFields(t *testing.T) {
	s := NewScene()
	fixed := time.Unix(100, 0)
	s.now = func() time.Time { return fixed }
	s.SetModifiers(ModShift | ModCtrl)

	var got *Event
	s.On(s.Root(), EventMouseDown, func(e *Event) { got = e })
	s.MouseDown(7, 9, MouseButtonMiddle)

	if got == nil {
		t.Fatal("mousedown not dispatched")
	}
	if got.PageX != 7 || got.PageY != 9 || got.Button != MouseButtonMiddle {
		t.Errorf("event = %+v", got)
	}
	if got.Modifiers != ModShift|ModCtrl {
		t.Errorf("Modifiers = %v, want shift|ctrl", got.Modifiers)
	}
	if !got.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, fixed)
	}
	if got.Target != s.Root() {
		t.Errorf("Target = %v, want root", nodeName(got.Target))
	}
}

func TestTouchEventsGroupedByTarget(t *testing.T) {
	s := NewScene()
	a := NewElement("a", 50, 50)
	b := NewElement("b", 50, 50)
	b.SetPosition(100, 0)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var events []*Event
	s.On(s.Root(), EventTouchStart, func(e *Event) { events = append(events, e) })

	s.TouchStart(
		Touch{Identifier: 1, PageX: 10, PageY: 10},
		Touch{Identifier: 2, PageX: 110, PageY: 10},
		Touch{Identifier: 3, PageX: 20, PageY: 20},
	)
	if len(events) != 2 {
		t.Fatalf("touchstart events = %d, want 2 (one per target)", len(events))
	}
	ea, eb := events[0], events[1]
	if ea.Target != a || len(ea.ChangedTouches) != 2 || len(ea.TargetTouches) != 2 {
		t.Errorf("a event: target=%v changed=%d targetTouches=%d",
			nodeName(ea.Target), len(ea.ChangedTouches), len(ea.TargetTouches))
	}
	if eb.Target != b || len(eb.ChangedTouches) != 1 || eb.ChangedTouches[0].Identifier != 2 {
		t.Errorf("b event: target=%v changed=%v", nodeName(eb.Target), eb.ChangedTouches)
	}
	if n := len(s.Touches()); n != 3 {
		t.Errorf("live touches = %d, want 3", n)
	}
}

func TestTouchTargetFixedAtStart(t *testing.T) {
	s := NewScene()
	a := NewElement("a", 50, 50)
	b := NewElement("b", 50, 50)
	b.SetPosition(100, 0)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var moveTargets []*Node
	s.On(s.Root(), EventTouchMove, func(e *Event) { moveTargets = append(moveTargets, e.Target) })

	s.TouchStart(Touch{Identifier: 1, PageX: 10, PageY: 10})
	s.TouchMove(Touch{Identifier: 1, PageX: 110, PageY: 10})
	if len(moveTargets) != 1 || moveTargets[0] != a {
		t.Errorf("touchmove target = %v, want a", moveTargets)
	}

	// Unknown identifiers are dropped.
	s.TouchMove(Touch{Identifier: 9, PageX: 0, PageY: 0})
	if len(moveTargets) != 1 {
		t.Error("touchmove for an unknown identifier dispatched")
	}
}

func TestTouchEndRemovesFromTargetTouches(t *testing.T) {
	s := NewScene()
	a := NewElement("a", 50, 50)
	s.Root().AddChild(a)

	var end *Event
	s.On(a, EventTouchEnd, func(e *Event) { end = e })

	s.TouchStart(Touch{Identifier: 1, PageX: 10, PageY: 10}, Touch{Identifier: 2, PageX: 20, PageY: 20})
	s.TouchEnd(Touch{Identifier: 1, PageX: 12, PageY: 10})

	if end == nil {
		t.Fatal("touchend not dispatched")
	}
	if len(end.ChangedTouches) != 1 || end.ChangedTouches[0].PageX != 12 {
		t.Errorf("ChangedTouches = %v", end.ChangedTouches)
	}
	if len(end.TargetTouches) != 1 || end.TargetTouches[0].Identifier != 2 {
		t.Errorf("TargetTouches = %v, want only touch 2", end.TargetTouches)
	}
	if _, ok := s.Touches().Identified(1); ok {
		t.Error("lifted touch still live")
	}
}

func TestSceneTouchesSnapshot(t *testing.T) {
	s := NewScene()
	s.TouchStart(Touch{Identifier: 1, PageX: 10, PageY: 10})
	list := s.Touches()
	list[0].PageX = 99
	if s.Touches()[0].PageX != 10 {
		t.Error("Touches() should return a copy")
	}
}
