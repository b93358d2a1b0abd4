package gesture

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, gesture events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture data for the ECS bridge. It mirrors
// GestureState without the node pointers and touch lists.
type GestureEvent struct {
	Type       EventType
	EntityID   uint32 // EntityID of the pressed node
	Identifier Identifier
	PageX      float64
	PageY      float64
	StartX     float64 // press position
	StartY     float64
	DeltaX     float64 // since the previous pointer position
	DeltaY     float64
	DistX      float64 // since the press
	DistY      float64
}

// Scene is the top-level object that owns the node tree, the dispatcher,
// the recognizer and the raw input state of the host.
type Scene struct {
	root   *Node
	d      *Dispatcher
	rec    *Recognizer
	frames *FrameLoop // nil when the config supplied its own scheduler
	debug  bool
	now    func() time.Time

	lastStats Stats

	hitBuf []*Node

	// Raw input state
	modifiers  KeyModifiers
	mousePress *Node // target of the last primary press, for click synthesis
	touches    TouchList

	// last reported cursor position
	cursorKnown      bool
	cursorX, cursorY float64

	// Ebitengine polling state
	poll pollState

	// Synthetic input
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	// Run callbacks
	updateFunc func() error
	drawFunc   func(screen *ebiten.Image)
}

// NewScene creates a scene with DefaultConfig, driven by Update.
func NewScene() *Scene {
	s, err := NewSceneWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// NewSceneWithConfig creates a scene with a pre-created root container and a
// recognizer bound to it. When cfg.Scheduler is nil the scene drives its own
// FrameLoop from Update.
func NewSceneWithConfig(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	root := NewContainer("root")
	root.Interactable = true
	s := &Scene{
		root:  root,
		d:     NewDispatcher(),
		debug: cfg.Debug,
		now:   time.Now,
	}
	if cfg.Scheduler == nil {
		s.frames = NewFrameLoop()
		cfg.Scheduler = s.frames
	}
	s.rec = NewRecognizer(root, s.d, cfg)
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s, nil
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Dispatcher returns the scene's listener store.
func (s *Scene) Dispatcher() *Dispatcher {
	return s.d
}

// Recognizer returns the scene's gesture recognizer.
func (s *Scene) Recognizer() *Recognizer {
	return s.rec
}

// Frames returns the scene-owned frame loop, or nil when a custom scheduler
// was configured.
func (s *Scene) Frames() *FrameLoop {
	return s.frames
}

// On binds fn to events of type typ on node. Binding any of EventMoveStart,
// EventMove or EventMoveEnd makes gestures starting on node or its
// descendants deliver all three.
func (s *Scene) On(node *Node, typ EventType, fn Handler) ListenerHandle {
	return s.d.AddListener(node, typ, "", fn)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.rec.SetEntityStore(store)
}

// Update runs one frame: the test runner step, input processing and the
// frame loop (throttled move events and deferred cleanup).
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.frames != nil {
		s.frames.Frame()
	}
	if s.debug {
		s.debugLog(s.rec.Stats())
	}
}

// --- Raw input feed ---

// SetModifiers sets the keyboard modifiers reported on subsequent raw
// events. Hosts without Ebitengine polling call this before feeding input.
func (s *Scene) SetModifiers(mods KeyModifiers) {
	s.modifiers = mods
}

// resolve hit-tests (x, y), falling back to the root.
func (s *Scene) resolve(x, y float64) *Node {
	if n := s.hitTest(x, y); n != nil {
		return n
	}
	return s.root
}

func (s *Scene) mouseEvent(typ EventType, x, y float64, button MouseButton) *Event {
	return &Event{
		Type:      typ,
		PageX:     x,
		PageY:     y,
		Button:    button,
		Modifiers: s.modifiers,
		Timestamp: s.now(),
	}
}

// MouseDown dispatches a mouse press at page coordinates (x, y). Returns
// false if a listener prevented the default action.
func (s *Scene) MouseDown(x, y float64, button MouseButton) bool {
	s.setCursor(x, y)
	target := s.resolve(x, y)
	if button == MouseButtonLeft {
		s.mousePress = target
	}
	return s.d.Dispatch(target, s.mouseEvent(EventMouseDown, x, y, button))
}

// MouseMove dispatches a mouse move to page coordinates (x, y).
func (s *Scene) MouseMove(x, y float64) bool {
	s.setCursor(x, y)
	return s.d.Dispatch(s.resolve(x, y), s.mouseEvent(EventMouseMove, x, y, MouseButtonLeft))
}

// MouseUp dispatches a mouse release at (x, y). A primary release over the
// node that received the press is followed by a click on that node.
func (s *Scene) MouseUp(x, y float64, button MouseButton) bool {
	s.setCursor(x, y)
	target := s.resolve(x, y)
	ok := s.d.Dispatch(target, s.mouseEvent(EventMouseUp, x, y, button))
	if button == MouseButtonLeft {
		pressed := s.mousePress
		s.mousePress = nil
		if pressed != nil && pressed == target {
			s.d.Dispatch(target, s.mouseEvent(EventClick, x, y, button))
		}
	}
	return ok
}

func (s *Scene) setCursor(x, y float64) {
	s.cursorKnown = true
	s.cursorX, s.cursorY = x, y
}

// moveCursor reports a mouse move to (x, y) unless the cursor is already
// there. Sources call it before a press or release so gestures see the
// position the button changed at.
func (s *Scene) moveCursor(x, y float64) {
	if s.cursorKnown && x == s.cursorX && y == s.cursorY {
		return
	}
	s.MouseMove(x, y)
}

// moveTouch reports a move of a live touch to t's position unless it is
// already there.
func (s *Scene) moveTouch(t Touch) {
	i := s.touchIndex(t.Identifier)
	if i < 0 || (s.touches[i].PageX == t.PageX && s.touches[i].PageY == t.PageY) {
		return
	}
	s.TouchMove(t)
}

// DragStart dispatches a host-native drag start on the node under (x, y).
// Returns false when the drag should not begin.
func (s *Scene) DragStart(x, y float64) bool {
	return s.d.Dispatch(s.resolve(x, y), s.mouseEvent(EventDragStart, x, y, MouseButtonLeft))
}

// TouchStart registers new touch contacts. A touch with a nil Target is
// hit-tested; its target stays fixed until it ends.
func (s *Scene) TouchStart(touches ...Touch) bool {
	changed := make(TouchList, 0, len(touches))
	for _, t := range touches {
		if t.Target == nil {
			t.Target = s.resolve(t.PageX, t.PageY)
		}
		s.removeTouch(t.Identifier)
		s.touches = append(s.touches, t)
		changed = append(changed, t)
	}
	return s.dispatchTouches(EventTouchStart, changed)
}

// TouchMove updates the positions of live touches. Unknown identifiers are
// ignored.
func (s *Scene) TouchMove(touches ...Touch) bool {
	changed := make(TouchList, 0, len(touches))
	for _, t := range touches {
		i := s.touchIndex(t.Identifier)
		if i < 0 {
			continue
		}
		s.touches[i].PageX = t.PageX
		s.touches[i].PageY = t.PageY
		changed = append(changed, s.touches[i])
	}
	return s.dispatchTouches(EventTouchMove, changed)
}

// TouchEnd lifts touches at the given positions.
func (s *Scene) TouchEnd(touches ...Touch) bool {
	return s.liftTouches(EventTouchEnd, touches)
}

// TouchCancel aborts touches, as when the host takes over the contact.
func (s *Scene) TouchCancel(touches ...Touch) bool {
	return s.liftTouches(EventTouchCancel, touches)
}

func (s *Scene) liftTouches(typ EventType, touches []Touch) bool {
	changed := make(TouchList, 0, len(touches))
	for _, t := range touches {
		i := s.touchIndex(t.Identifier)
		if i < 0 {
			continue
		}
		live := s.touches[i]
		live.PageX = t.PageX
		live.PageY = t.PageY
		s.removeTouch(t.Identifier)
		changed = append(changed, live)
	}
	return s.dispatchTouches(typ, changed)
}

// Touches returns a snapshot of the live touches.
func (s *Scene) Touches() TouchList {
	return s.touches.Clone()
}

// dispatchTouches sends one event per distinct target among changed, in
// order of first appearance.
func (s *Scene) dispatchTouches(typ EventType, changed TouchList) bool {
	ok := true
	done := make(map[*Node]bool)
	for _, t := range changed {
		if done[t.Target] {
			continue
		}
		done[t.Target] = true

		var group TouchList
		for _, c := range changed {
			if c.Target == t.Target {
				group = append(group, c)
			}
		}
		e := &Event{
			Type:           typ,
			PageX:          group[0].PageX,
			PageY:          group[0].PageY,
			Modifiers:      s.modifiers,
			Timestamp:      s.now(),
			ChangedTouches: group,
			TargetTouches:  s.targetTouches(t.Target),
		}
		if !s.d.Dispatch(t.Target, e) {
			ok = false
		}
	}
	return ok
}

// targetTouches returns the live touches that started on target.
func (s *Scene) targetTouches(target *Node) TouchList {
	var out TouchList
	for _, t := range s.touches {
		if t.Target == target {
			out = append(out, t)
		}
	}
	return out
}

func (s *Scene) touchIndex(id Identifier) int {
	for i := range s.touches {
		if s.touches[i].Identifier == id {
			return i
		}
	}
	return -1
}

func (s *Scene) removeTouch(id Identifier) {
	if i := s.touchIndex(id); i >= 0 {
		s.touches = append(s.touches[:i], s.touches[i+1:]...)
	}
}
