package gesture

type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
	injectTouchStart
	injectTouchMove
	injectTouchEnd
	injectTouchCancel
)

// syntheticPointerEvent represents a single injected pointer event in page
// coordinates.
type syntheticPointerEvent struct {
	kind   injectKind
	x, y   float64
	id     Identifier
	button MouseButton
}

func (s *Scene) inject(evt syntheticPointerEvent) {
	s.injectQueue = append(s.injectQueue, evt)
}

// InjectPress queues a left-button mouse press at the given page
// coordinates. The event is consumed on the next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectPress, x: x, y: y, id: MouseIdentifier, button: MouseButtonLeft})
}

// InjectMove queues a mouse move. Use this between InjectPress and
// InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectMove, x: x, y: y, id: MouseIdentifier, button: MouseButtonLeft})
}

// InjectRelease queues a left-button mouse release.
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectRelease, x: x, y: y, id: MouseIdentifier, button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectTouchStart queues a new touch contact.
func (s *Scene) InjectTouchStart(id Identifier, x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectTouchStart, x: x, y: y, id: id})
}

// InjectTouchMove queues a move of touch id.
func (s *Scene) InjectTouchMove(id Identifier, x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectTouchMove, x: x, y: y, id: id})
}

// InjectTouchEnd queues a lift of touch id.
func (s *Scene) InjectTouchEnd(id Identifier, x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectTouchEnd, x: x, y: y, id: id})
}

// InjectTouchCancel queues a host abort of touch id.
func (s *Scene) InjectTouchCancel(id Identifier, x, y float64) {
	s.inject(syntheticPointerEvent{kind: injectTouchCancel, x: x, y: y, id: id})
}

// InjectTouchDrag queues a touch drag for id, shaped like InjectDrag.
func (s *Scene) InjectTouchDrag(id Identifier, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectTouchStart(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectTouchMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectTouchEnd(id, toX, toY)
}

// InjectPending returns the number of queued synthetic events.
func (s *Scene) InjectPending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the raw input methods. A press, release or lift away from the
// last known position is preceded by a move there, as the host sources do.
// Returns true if an event was consumed (host input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	t := Touch{Identifier: evt.id, PageX: evt.x, PageY: evt.y}
	switch evt.kind {
	case injectPress:
		s.moveCursor(evt.x, evt.y)
		s.MouseDown(evt.x, evt.y, evt.button)
	case injectMove:
		s.MouseMove(evt.x, evt.y)
	case injectRelease:
		s.moveCursor(evt.x, evt.y)
		s.MouseUp(evt.x, evt.y, evt.button)
	case injectTouchStart:
		s.TouchStart(t)
	case injectTouchMove:
		s.TouchMove(t)
	case injectTouchEnd:
		s.moveTouch(t)
		s.TouchEnd(t)
	case injectTouchCancel:
		s.moveTouch(t)
		s.TouchCancel(t)
	}
	return true
}
