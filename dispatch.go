package gesture

// Handler receives a dispatched event.
type Handler func(e *Event)

type listener struct {
	id  uint32
	typ EventType
	ns  string
	fn  Handler
}

// SpecialEvent hooks observe listener registration for one event type. Add is
// called after a listener of that type is bound to a node, Remove after one is
// unbound. The gesture emitter uses them to keep its interest table.
type SpecialEvent interface {
	Add(target *Node, typ EventType)
	Remove(target *Node, typ EventType)
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id     uint32
	target *Node
	d      *Dispatcher
}

// Remove unbinds this listener. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.d == nil || h.target == nil {
		return
	}
	h.d.removeByID(h.target, h.id)
}

// Valid reports whether the handle refers to a registered listener.
func (h ListenerHandle) Valid() bool {
	return h.d != nil && h.target != nil && h.target.listenerIndex(h.id) >= 0
}

// Dispatcher is the listener store and event delivery mechanism for a node
// tree. Events dispatched on a node bubble through its ancestors.
type Dispatcher struct {
	specials [numEventTypes]SpecialEvent
	nextID   uint32
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// RegisterSpecial installs registration hooks for typ, replacing any
// previous hooks.
func (d *Dispatcher) RegisterSpecial(typ EventType, sp SpecialEvent) {
	d.specials[typ] = sp
}

// AddListener binds fn to events of type typ on target. ns is an optional
// namespace; RemoveNamespace detaches every listener sharing it.
func (d *Dispatcher) AddListener(target *Node, typ EventType, ns string, fn Handler) ListenerHandle {
	return d.addListener(target, typ, ns, fn, false)
}

// addListener optionally prepends the listener so it runs before listeners
// bound earlier on the same node.
func (d *Dispatcher) addListener(target *Node, typ EventType, ns string, fn Handler, prepend bool) ListenerHandle {
	if target == nil {
		panic("gesture: cannot listen on nil node")
	}
	if fn == nil {
		panic("gesture: nil handler")
	}
	if globalDebug {
		debugCheckDisposed(target, "AddListener")
	}
	if target.dispatcher != nil && target.dispatcher != d {
		panic("gesture: node is bound to another dispatcher")
	}
	target.dispatcher = d

	d.nextID++
	l := listener{id: d.nextID, typ: typ, ns: ns, fn: fn}
	if prepend {
		target.listeners = append(target.listeners, listener{})
		copy(target.listeners[1:], target.listeners)
		target.listeners[0] = l
	} else {
		target.listeners = append(target.listeners, l)
	}

	if sp := d.specials[typ]; sp != nil {
		sp.Add(target, typ)
	}
	return ListenerHandle{id: l.id, target: target, d: d}
}

// RemoveNamespace unbinds every listener on target registered under ns and
// returns how many were removed.
func (d *Dispatcher) RemoveNamespace(target *Node, ns string) int {
	removed := 0
	for i := len(target.listeners) - 1; i >= 0; i-- {
		if i >= len(target.listeners) {
			continue
		}
		if target.listeners[i].ns == ns {
			d.removeAt(target, i)
			removed++
		}
	}
	return removed
}

// Listening reports whether target has at least one listener of type typ.
func (d *Dispatcher) Listening(target *Node, typ EventType) bool {
	for _, l := range target.listeners {
		if l.typ == typ {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners bound to target.
func (d *Dispatcher) ListenerCount(target *Node) int {
	return len(target.listeners)
}

// Dispatch delivers e to listeners of e.Type on target and then on each
// ancestor up to the root. Listeners bound during the dispatch do not see
// it; listeners unbound during the dispatch are skipped. Returns false if a
// listener called PreventDefault.
func (d *Dispatcher) Dispatch(target *Node, e *Event) bool {
	e.Target = target
	for n := target; n != nil; n = n.Parent {
		if len(n.listeners) == 0 {
			continue
		}
		e.CurrentTarget = n
		for _, l := range matching(n.listeners, e.Type) {
			if n.listenerIndex(l.id) < 0 {
				continue
			}
			e.Namespace = l.ns
			l.fn(e)
			if e.immediateStopped {
				break
			}
		}
		if e.propagationStopped {
			break
		}
	}
	e.CurrentTarget = nil
	e.Namespace = ""
	return !e.defaultPrevented
}

// matching returns a snapshot of the listeners of type typ.
func matching(ls []listener, typ EventType) []listener {
	var out []listener
	for _, l := range ls {
		if l.typ == typ {
			out = append(out, l)
		}
	}
	return out
}

func (d *Dispatcher) removeByID(target *Node, id uint32) {
	if i := target.listenerIndex(id); i >= 0 {
		d.removeAt(target, i)
	}
}

// removeAt unbinds the listener at index i and runs the special hook.
func (d *Dispatcher) removeAt(target *Node, i int) {
	l := target.listeners[i]
	copy(target.listeners[i:], target.listeners[i+1:])
	target.listeners[len(target.listeners)-1] = listener{}
	target.listeners = target.listeners[:len(target.listeners)-1]

	if sp := d.specials[l.typ]; sp != nil {
		sp.Remove(target, l.typ)
	}
}

// removeAll unbinds every listener on target. Hooks may unbind further
// listeners on the same node while this runs.
func (d *Dispatcher) removeAll(target *Node) {
	for len(target.listeners) > 0 {
		d.removeAt(target, len(target.listeners)-1)
	}
}

func (n *Node) listenerIndex(id uint32) int {
	for i := range n.listeners {
		if n.listeners[i].id == id {
			return i
		}
	}
	return -1
}
