package gesture

import (
	"fmt"
	"log/slog"
)

type sessionState uint8

const (
	sessionWatching  sessionState = iota // pressed, threshold not yet crossed
	sessionConfirmed                     // movestart dispatched, tracking moves
	sessionEnded                         // torn down
)

func (s sessionState) String() string {
	switch s {
	case sessionWatching:
		return "watching"
	case sessionConfirmed:
		return "confirmed"
	default:
		return "ended"
	}
}

// session tracks one candidate or confirmed gesture for one contact. Its
// listeners live on the scene root under a namespace derived from the
// contact identifier, so touches never trigger each other's handlers.
type session struct {
	r       *Recognizer
	contact Contact
	state   sessionState
	ns      string

	gesture    GestureState
	throttle   *FrameThrottle
	clickGuard ListenerHandle
}

func sessionNamespace(id Identifier) string {
	if id.IsMouse() {
		return "gesture.mouse"
	}
	return fmt.Sprintf("gesture.%d", int(id))
}

func newSession(r *Recognizer, c Contact) *session {
	return &session{r: r, contact: c, ns: sessionNamespace(c.Identifier)}
}

// watch binds the listeners that decide whether the threshold is crossed.
func (s *session) watch() {
	d, root := s.r.d, s.r.root
	if s.contact.Identifier.IsMouse() {
		d.AddListener(root, EventMouseMove, s.ns, s.watchMove)
		d.AddListener(root, EventMouseUp, s.ns, s.watchCancel)
		d.AddListener(root, EventDragStart, s.ns, s.watchCancel)
		return
	}
	d.AddListener(root, EventTouchMove, s.ns, s.watchMove)
	d.AddListener(root, EventTouchEnd, s.ns, s.watchCancel)
	d.AddListener(root, EventTouchCancel, s.ns, s.watchCancel)
}

// unbind detaches every listener this session placed on the root.
func (s *session) unbind() {
	s.r.d.RemoveNamespace(s.r.root, s.ns)
}

func (s *session) watchMove(e *Event) {
	if s.state != sessionWatching {
		return
	}
	t, ok := e.pointer(s.contact.Identifier)
	if !ok {
		return
	}
	distX := t.PageX - s.contact.PageX
	distY := t.PageY - s.contact.PageY
	th := s.r.cfg.Threshold
	if distX*distX+distY*distY < th*th {
		return
	}
	s.confirm(t, e.TargetTouches, distX, distY)
}

func (s *session) watchCancel(e *Event) {
	if _, ok := e.pointer(s.contact.Identifier); !ok {
		return
	}
	s.cancel("cancelled")
}

// cancel discards a watching candidate without emitting anything.
func (s *session) cancel(reason string) {
	if s.state != sessionWatching {
		return
	}
	s.state = sessionEnded
	s.unbind()
	s.r.sessions.remove(s)
	s.r.stats.Cancelled++
	s.r.log.Debug("session "+reason, slog.Int("id", int(s.contact.Identifier)))
}

// confirm runs the interest walk and, if a listener is found, dispatches
// movestart and switches to tracking. The walk happens once: a candidate
// with no interested ancestor is abandoned for good.
func (s *session) confirm(t Touch, touches TouchList, distX, distY float64) {
	s.unbind()

	if !s.r.em.Interested(s.contact.Target) {
		s.state = sessionEnded
		s.r.sessions.remove(s)
		s.r.stats.Abandoned++
		s.r.log.Debug("session abandoned",
			slog.Int("id", int(s.contact.Identifier)),
			slog.String("target", nodeName(s.contact.Target)))
		return
	}

	s.gesture = GestureState{
		Type:       EventMoveStart,
		StartX:     s.contact.PageX,
		StartY:     s.contact.PageY,
		PageX:      t.PageX,
		PageY:      t.PageY,
		DeltaX:     distX,
		DeltaY:     distY,
		DistX:      distX,
		DistY:      distY,
		Identifier: s.contact.Identifier,
		Target:     s.contact.Target,
	}
	if !s.contact.Identifier.IsMouse() {
		s.gesture.TargetTouches = touches.Clone()
	}

	e := s.r.em.emit(&s.gesture)
	if e.DefaultPrevented() {
		s.state = sessionEnded
		s.r.sessions.remove(s)
		s.r.stats.Prevented++
		s.r.log.Debug("movestart prevented", slog.Int("id", int(s.contact.Identifier)))
		return
	}

	s.state = sessionConfirmed
	s.r.stats.Confirmed++
	s.throttle = NewFrameThrottle(s.r.sched, s.flushMove)
	s.r.log.Debug("session confirmed",
		slog.Int("id", int(s.contact.Identifier)),
		slog.String("target", nodeName(s.contact.Target)),
		slog.Float64("distX", distX), slog.Float64("distY", distY))

	d, root := s.r.d, s.r.root
	if s.contact.Identifier.IsMouse() {
		// The host clicks the target after the release; swallow it.
		s.clickGuard = d.addListener(s.contact.Target, EventClick, s.ns+".click", swallow, true)
		d.AddListener(root, EventMouseMove, s.ns, s.activeMove)
		d.AddListener(root, EventMouseUp, s.ns, s.activeEnd)
		return
	}
	d.AddListener(root, EventTouchMove, s.ns, s.activeMove)
	d.AddListener(root, EventTouchEnd, s.ns, s.activeEnd)
	d.AddListener(root, EventTouchCancel, s.ns, s.activeEnd)
}

func (s *session) activeMove(e *Event) {
	if s.state != sessionConfirmed {
		return
	}
	t, ok := e.pointer(s.contact.Identifier)
	if !ok {
		return
	}
	if !s.contact.Identifier.IsMouse() {
		// Stop the host from scrolling or zooming under the gesture.
		e.PreventDefault()
		s.gesture.TargetTouches = e.TargetTouches.Clone()
	}
	s.gesture.Type = EventMove
	s.gesture.update(t.PageX, t.PageY)
	s.throttle.Kick()
}

func (s *session) activeEnd(e *Event) {
	if _, ok := e.pointer(s.contact.Identifier); !ok {
		return
	}
	s.end()
}

// end tears down a confirmed session. Listeners and the registry entry go
// immediately; moveend follows any move still waiting for its frame.
func (s *session) end() {
	if s.state != sessionConfirmed {
		return
	}
	s.state = sessionEnded
	s.unbind()
	s.r.sessions.remove(s)
	s.throttle.End(s.flushEnd)
}

// flushMove is the throttle callback.
func (s *session) flushMove() {
	s.gesture.Type = EventMove
	s.r.em.emit(&s.gesture)
}

func (s *session) flushEnd() {
	s.gesture.Type = EventMoveEnd
	s.r.em.emit(&s.gesture)
	s.r.stats.Ended++
	s.r.log.Debug("session ended",
		slog.Int("id", int(s.contact.Identifier)),
		slog.Float64("distX", s.gesture.DistX), slog.Float64("distY", s.gesture.DistY))

	if s.contact.Identifier.IsMouse() {
		// Outlast the click the host sends after the release.
		guard := s.clickGuard
		s.r.sched.Defer(guard.Remove)
	}
}

func nodeName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}
