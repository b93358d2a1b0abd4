package gesture

// guardNamespace tags the drag and selection guards the emitter installs.
const guardNamespace = "gesture.guard"

// interest tracks gesture listeners bound to one node.
type interest struct {
	counts [3]int // movestart, move, moveend
	guards []ListenerHandle
}

func (in *interest) activeTypes() int {
	n := 0
	for _, c := range in.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

func gestureIndex(typ EventType) int {
	return int(typ - EventMoveStart)
}

// Emitter keeps the gesture interest table, installs the drag and text
// selection guards on interested nodes, and synthesizes gesture events.
type Emitter struct {
	d        *Dispatcher
	ignore   func(*Node) bool
	store    EntityStore
	interest map[*Node]*interest

	dispatched [3]uint64
}

// newEmitter creates an emitter and registers it as the special-event hooks
// for movestart, move and moveend on d.
func newEmitter(d *Dispatcher, ignore func(*Node) bool) *Emitter {
	em := &Emitter{d: d, ignore: ignore, interest: make(map[*Node]*interest)}
	d.RegisterSpecial(EventMoveStart, em)
	d.RegisterSpecial(EventMove, em)
	d.RegisterSpecial(EventMoveEnd, em)
	return em
}

// Add implements SpecialEvent.
func (em *Emitter) Add(target *Node, typ EventType) {
	in := em.interest[target]
	if in == nil {
		in = &interest{}
		em.interest[target] = in
	}
	wasActive := in.activeTypes() > 0
	in.counts[gestureIndex(typ)]++
	if !wasActive {
		em.attachGuards(target, in)
	}
}

// Remove implements SpecialEvent.
func (em *Emitter) Remove(target *Node, typ EventType) {
	in := em.interest[target]
	if in == nil {
		return
	}
	i := gestureIndex(typ)
	if in.counts[i] > 0 {
		in.counts[i]--
	}
	if in.activeTypes() == 0 {
		delete(em.interest, target)
		for _, h := range in.guards {
			h.Remove()
		}
		in.guards = nil
	}
}

// attachGuards stops the node from being natively dragged and prevents
// text selection and touch scrolling from starting on it. The guards are
// prepended so listeners bound earlier cannot stop them.
func (em *Emitter) attachGuards(target *Node, in *interest) {
	in.guards = append(in.guards,
		em.d.addListener(target, EventDragStart, guardNamespace, preventDefault, true),
		em.d.addListener(target, EventDrag, guardNamespace, preventDefault, true),
		em.d.addListener(target, EventMouseDown, guardNamespace, em.preventUnlessIgnored, true),
		em.d.addListener(target, EventTouchStart, guardNamespace, em.preventUnlessIgnored, true),
	)
}

func preventDefault(e *Event) {
	e.PreventDefault()
}

// swallow cancels an event completely; used for the post-drag click.
func swallow(e *Event) {
	e.PreventDefault()
	e.StopImmediatePropagation()
}

func (em *Emitter) preventUnlessIgnored(e *Event) {
	if em.ignore != nil && em.ignore(e.Target) {
		return
	}
	e.PreventDefault()
}

// Interested reports whether n or any of its ancestors has a gesture
// listener bound.
func (em *Emitter) Interested(n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if in := em.interest[p]; in != nil && in.activeTypes() > 0 {
			return true
		}
	}
	return false
}

// Guarded reports whether the drag and selection guards are installed on n.
func (em *Emitter) Guarded(n *Node) bool {
	in := em.interest[n]
	return in != nil && len(in.guards) > 0
}

// emit dispatches a gesture event of the state's type on its target and
// forwards it to the entity store. Returns the dispatched event.
func (em *Emitter) emit(g *GestureState) *Event {
	e := &Event{
		Type:          g.Type,
		PageX:         g.PageX,
		PageY:         g.PageY,
		Gesture:       g.snapshot(),
		TargetTouches: g.TargetTouches.Clone(),
	}
	em.d.Dispatch(g.Target, e)
	em.dispatched[gestureIndex(g.Type)]++
	em.forward(g)
	return e
}

// forward publishes the gesture to the ECS bridge when the target carries
// an EntityID.
func (em *Emitter) forward(g *GestureState) {
	if em.store == nil || g.Target == nil || g.Target.EntityID == 0 {
		return
	}
	em.store.EmitEvent(GestureEvent{
		Type:       g.Type,
		EntityID:   g.Target.EntityID,
		Identifier: g.Identifier,
		PageX:      g.PageX,
		PageY:      g.PageY,
		StartX:     g.StartX,
		StartY:     g.StartY,
		DeltaX:     g.DeltaX,
		DeltaY:     g.DeltaY,
		DistX:      g.DistX,
		DistY:      g.DistY,
	})
}
