package gesture

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of raw or semantic event.
type EventType uint8

const (
	EventMouseDown   EventType = iota // a mouse button was pressed
	EventMouseMove                    // the mouse moved (with or without a button held)
	EventMouseUp                      // a mouse button was released
	EventClick                        // press then release over the same node
	EventDragStart                    // host-native drag began
	EventDrag                         // host-native drag in progress
	EventTouchStart                   // a touch contact began
	EventTouchMove                    // one or more touch contacts moved
	EventTouchEnd                     // one or more touch contacts lifted
	EventTouchCancel                  // the host aborted one or more touch contacts
	EventMoveStart                    // a gesture crossed the threshold and was confirmed
	EventMove                         // a confirmed gesture moved (at most once per frame)
	EventMoveEnd                      // a confirmed gesture ended

	numEventTypes
)

var eventTypeNames = [numEventTypes]string{
	EventMouseDown:   "mousedown",
	EventMouseMove:   "mousemove",
	EventMouseUp:     "mouseup",
	EventClick:       "click",
	EventDragStart:   "dragstart",
	EventDrag:        "drag",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
	EventTouchCancel: "touchcancel",
	EventMoveStart:   "movestart",
	EventMove:        "move",
	EventMoveEnd:     "moveend",
}

// String returns the DOM-style lowercase name of the event type.
func (t EventType) String() string {
	if t < numEventTypes {
		return eventTypeNames[t]
	}
	return "unknown"
}

// ParseEventType maps a lowercase event name back to its EventType.
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// IsGesture reports whether t is one of movestart, move or moveend.
func (t EventType) IsGesture() bool {
	return t == EventMoveStart || t == EventMove || t == EventMoveEnd
}

// IsTouch reports whether t is a raw touch event.
func (t EventType) IsTouch() bool {
	return t >= EventTouchStart && t <= EventTouchCancel
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Identifier names one input contact: the mouse, or one touch point.
type Identifier int

// MouseIdentifier is the identifier used for the single mouse contact.
// Touch identifiers assigned by the host are never negative.
const MouseIdentifier Identifier = -1

// IsMouse reports whether id refers to the mouse contact.
func (id Identifier) IsMouse() bool {
	return id == MouseIdentifier
}
