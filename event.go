package gesture

import (
	"slices"
	"time"
)

// Touch is a snapshot of one touch contact. It is a plain value: holding a
// Touch never aliases the host's live touch record.
type Touch struct {
	Identifier Identifier
	PageX      float64
	PageY      float64
	Target     *Node
}

// TouchList is an ordered set of touch snapshots.
type TouchList []Touch

// Identified returns the touch with the given identifier, if present.
func (l TouchList) Identified(id Identifier) (Touch, bool) {
	for _, t := range l {
		if t.Identifier == id {
			return t, true
		}
	}
	return Touch{}, false
}

// Clone returns a copy of the list that shares no storage with l.
func (l TouchList) Clone() TouchList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// Contact is the press snapshot a pointer session starts from.
type Contact struct {
	Identifier Identifier
	PageX      float64
	PageY      float64
	Target     *Node
	Timestamp  time.Time
}

// GestureState is the payload carried by movestart, move and moveend for one
// confirmed gesture.
type GestureState struct {
	Type EventType

	// StartX/StartY are the press coordinates.
	StartX, StartY float64
	// PageX/PageY are the latest pointer coordinates.
	PageX, PageY float64
	// DeltaX/DeltaY are the offset since the previous update.
	DeltaX, DeltaY float64
	// DistX/DistY are the offset since StartX/StartY.
	DistX, DistY float64

	// Identifier is MouseIdentifier for mouse gestures.
	Identifier Identifier
	// TargetTouches holds the touches sharing the gesture target. Nil for
	// mouse gestures.
	TargetTouches TouchList

	// Target is the node the gesture is bound to, fixed at confirmation.
	Target *Node
}

// IsTouch reports whether the gesture is driven by a touch contact.
func (g *GestureState) IsTouch() bool {
	return !g.Identifier.IsMouse()
}

// update applies a new pointer position in place.
func (g *GestureState) update(x, y float64) {
	g.DistX = x - g.StartX
	g.DistY = y - g.StartY
	g.DeltaX = x - g.PageX
	g.DeltaY = y - g.PageY
	g.PageX = x
	g.PageY = y
}

// snapshot returns a copy safe to hand to listeners.
func (g *GestureState) snapshot() GestureState {
	c := *g
	c.TargetTouches = g.TargetTouches.Clone()
	return c
}

// Event is the object handed to listeners. Raw events carry pointer fields;
// gesture events carry Gesture.
type Event struct {
	Type          EventType
	Target        *Node
	CurrentTarget *Node
	Namespace     string

	PageX, PageY float64
	Button       MouseButton
	Modifiers    KeyModifiers
	Timestamp    time.Time

	// Touch fields (touch events only).
	ChangedTouches TouchList
	TargetTouches  TouchList

	// Gesture fields (movestart, move, moveend only).
	Gesture GestureState

	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
}

// PreventDefault asks the host (or the recognizer, for movestart) to skip the
// default action for this event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from bubbling past the current node.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// StopImmediatePropagation also skips the remaining listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// pointer returns the first changed touch for touch events, or the mouse
// position for mouse events.
func (e *Event) pointer(id Identifier) (Touch, bool) {
	if id.IsMouse() {
		if e.Type.IsTouch() {
			return Touch{}, false
		}
		return Touch{Identifier: MouseIdentifier, PageX: e.PageX, PageY: e.PageY, Target: e.Target}, true
	}
	if !e.Type.IsTouch() {
		return Touch{}, false
	}
	return e.ChangedTouches.Identified(id)
}
