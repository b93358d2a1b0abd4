package gesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Create one via TweenPosition or SettleOnMoveEnd and call Update(dt) each
// frame. The group auto-applies values and marks the node dirty. If the
// target node is disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Stop ends the group without further writes.
func (g *TweenGroup) Stop() {
	g.Done = true
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// Settle binds a gesture-driven drag to node: the node follows the
// gesture's DistX/DistY from where it was at movestart, and moveend tweens
// it to the position dest returns (for example a grid snap, or the original
// position). A nil dest leaves the node where it was dropped. Call Update
// each frame to run the release tween.
type Settle struct {
	node             *Node
	dest             func(x, y float64) (float64, float64)
	duration         float32
	easing           ease.TweenFunc
	handles          []ListenerHandle
	tween            *TweenGroup
	originX, originY float64
}

// SettleOnMoveEnd makes node draggable through the scene's gesture events.
func SettleOnMoveEnd(s *Scene, node *Node, dest func(x, y float64) (float64, float64), duration float32, fn ease.TweenFunc) *Settle {
	if fn == nil {
		fn = ease.OutQuad
	}
	st := &Settle{node: node, dest: dest, duration: duration, easing: fn}
	st.handles = append(st.handles,
		s.On(node, EventMoveStart, st.start),
		s.On(node, EventMove, st.move),
		s.On(node, EventMoveEnd, st.end),
	)
	return st
}

func (st *Settle) start(e *Event) {
	if st.tween != nil {
		st.tween.Stop()
		st.tween = nil
	}
	st.originX, st.originY = st.node.X, st.node.Y
	st.follow(e)
}

func (st *Settle) move(e *Event) {
	st.follow(e)
}

func (st *Settle) follow(e *Event) {
	st.node.SetPosition(st.originX+e.Gesture.DistX, st.originY+e.Gesture.DistY)
}

func (st *Settle) end(e *Event) {
	st.follow(e)
	if st.dest == nil {
		return
	}
	x, y := st.dest(st.node.X, st.node.Y)
	st.tween = TweenPosition(st.node, x, y, st.duration, st.easing)
}

// Update advances the release tween, if any.
func (st *Settle) Update(dt float32) {
	if st.tween == nil {
		return
	}
	st.tween.Update(dt)
	if st.tween.Done {
		st.tween = nil
	}
}

// Settling reports whether a release tween is running.
func (st *Settle) Settling() bool {
	return st.tween != nil
}

// Remove unbinds the gesture listeners. A running tween is left to finish.
func (st *Settle) Remove() {
	for _, h := range st.handles {
		h.Remove()
	}
	st.handles = nil
}
