package gesture

import (
	"log/slog"
	"time"
)

// rootNamespace tags the press listeners the recognizer keeps on the root.
const rootNamespace = "gesture.root"

// Stats counts session outcomes since the recognizer was created.
type Stats struct {
	Opened    uint64 // sessions started by a press
	Cancelled uint64 // released or cancelled before crossing the threshold
	Abandoned uint64 // crossed the threshold with no interested ancestor
	Prevented uint64 // movestart had its default prevented
	Confirmed uint64 // movestart dispatched and tracking began
	Ended     uint64 // moveend dispatched

	MoveStarts uint64
	Moves      uint64
	MoveEnds   uint64

	Active int // live sessions
}

// Recognizer turns raw pointer input on a node tree into movestart, move
// and moveend events. One recognizer serves a whole tree; NewScene builds it
// once and it lives as long as the scene.
type Recognizer struct {
	cfg   Config
	root  *Node
	d     *Dispatcher
	em    *Emitter
	sched Scheduler
	log   *slog.Logger

	sessions *registry
	stats    Stats
	now      func() time.Time
}

// NewRecognizer binds the press listeners to root and installs the gesture
// event hooks on d. cfg.Scheduler must be set.
func NewRecognizer(root *Node, d *Dispatcher, cfg Config) *Recognizer {
	if cfg.Scheduler == nil {
		panic("gesture: recognizer needs a scheduler")
	}
	r := &Recognizer{
		cfg:      cfg,
		root:     root,
		d:        d,
		sched:    cfg.Scheduler,
		log:      cfg.logger(),
		sessions: newRegistry(),
		now:      time.Now,
	}
	r.em = newEmitter(d, r.ignored)
	d.AddListener(root, EventMouseDown, rootNamespace, r.mouseDown)
	d.AddListener(root, EventTouchStart, rootNamespace, r.touchStart)
	return r
}

// ignored reports whether presses on n are left to the host.
func (r *Recognizer) ignored(n *Node) bool {
	if n == nil {
		return false
	}
	for _, k := range r.cfg.IgnoreKinds {
		if n.Kind == k {
			return true
		}
	}
	return false
}

func (r *Recognizer) mouseDown(e *Event) {
	if e.Button != MouseButtonLeft {
		return
	}
	if r.ignored(e.Target) {
		return
	}
	r.open(Contact{
		Identifier: MouseIdentifier,
		PageX:      e.PageX,
		PageY:      e.PageY,
		Target:     e.Target,
		Timestamp:  r.timestamp(e),
	})
}

func (r *Recognizer) touchStart(e *Event) {
	if r.ignored(e.Target) {
		return
	}
	for _, t := range e.ChangedTouches {
		if t.Identifier.IsMouse() {
			continue
		}
		target := t.Target
		if target == nil {
			target = e.Target
		}
		r.open(Contact{
			Identifier: t.Identifier,
			PageX:      t.PageX,
			PageY:      t.PageY,
			Target:     target,
			Timestamp:  r.timestamp(e),
		})
	}
}

func (r *Recognizer) timestamp(e *Event) time.Time {
	if !e.Timestamp.IsZero() {
		return e.Timestamp
	}
	return r.now()
}

// open starts a watching session for c, first finishing any session still
// registered for the same identifier (a release the host never reported).
func (r *Recognizer) open(c Contact) {
	if old := r.sessions.lookup(c.Identifier); old != nil {
		r.log.Debug("replacing stale session", slog.Int("id", int(c.Identifier)), slog.String("state", old.state.String()))
		old.cancel("replaced")
		old.end()
	}
	s := newSession(r, c)
	r.sessions.add(s)
	s.watch()
	r.stats.Opened++
	r.log.Debug("session opened",
		slog.Int("id", int(c.Identifier)),
		slog.String("target", nodeName(c.Target)),
		slog.Float64("x", c.PageX), slog.Float64("y", c.PageY))
}

// Active reports whether a session is live for id.
func (r *Recognizer) Active(id Identifier) bool {
	return r.sessions.lookup(id) != nil
}

// Confirmed reports whether the session for id has dispatched movestart.
func (r *Recognizer) Confirmed(id Identifier) bool {
	s := r.sessions.lookup(id)
	return s != nil && s.state == sessionConfirmed
}

// Gesture returns a copy of the live gesture state for id.
func (r *Recognizer) Gesture(id Identifier) (GestureState, bool) {
	s := r.sessions.lookup(id)
	if s == nil || s.state != sessionConfirmed {
		return GestureState{}, false
	}
	return s.gesture.snapshot(), true
}

// Stats returns the session counters.
func (r *Recognizer) Stats() Stats {
	st := r.stats
	st.MoveStarts = r.em.dispatched[0]
	st.Moves = r.em.dispatched[1]
	st.MoveEnds = r.em.dispatched[2]
	st.Active = r.sessions.len()
	return st
}

// Interested reports whether n or one of its ancestors listens for gesture events.
func (r *Recognizer) Interested(n *Node) bool {
	return r.em.Interested(n)
}

// Guarded reports whether the drag and selection guards are installed on n.
func (r *Recognizer) Guarded(n *Node) bool {
	return r.em.Guarded(n)
}

// SetEntityStore sets the optional ECS bridge gesture events are forwarded to.
func (r *Recognizer) SetEntityStore(store EntityStore) {
	r.em.store = store
}

// SetLogger replaces the logger used for session lifecycle messages.
func (r *Recognizer) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	r.log = l
}

// Threshold returns the confirmation distance in pixels.
func (r *Recognizer) Threshold() float64 {
	return r.cfg.Threshold
}
