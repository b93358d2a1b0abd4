package gesture

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// NodeKind distinguishes ordinary elements from form controls. Presses that
// land on a form control are left alone so native text interaction keeps
// working.
type NodeKind uint8

const (
	KindElement  NodeKind = iota // ordinary element
	KindInput                    // single-line text input
	KindTextArea                 // multi-line text input
	KindSelect                   // option picker
)

// String returns the tag-style name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTextArea:
		return "textarea"
	case KindSelect:
		return "select"
	default:
		return "element"
	}
}

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the scene tree. Raw input is dispatched on nodes and
// bubbles to the root; gesture interest is registered on nodes.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	worldTransform [6]float64
	transformDirty bool

	// Size in local units. Used for hit testing when HitShape is nil.
	Width, Height float64

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Hit testing
	HitShape HitShape

	// Metadata
	UserData any
	EntityID uint32

	// Listener store, owned by the Dispatcher that first bound to this node.
	listeners  []listener
	dispatcher *Dispatcher

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.transformDirty = true
	n.worldTransform = identityTransform
}

// NewContainer creates a grouping node with no hit area of its own.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewElement creates an interactable node with the given size.
func NewElement(name string, width, height float64) *Node {
	n := &Node{Name: name, Width: width, Height: height, Interactable: true}
	nodeDefaults(n)
	return n
}

// NewFormControl creates an interactable form control of the given kind.
func NewFormControl(name string, kind NodeKind, width, height float64) *Node {
	n := NewElement(name, width, height)
	n.Kind = kind
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("gesture: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("gesture: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("gesture: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, drops its listeners and
// recursively disposes all descendants. Gesture interest registered on the
// subtree is released through the normal listener removal path.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	if n.dispatcher != nil {
		n.dispatcher.removeAll(n)
	}
	n.disposed = true
	n.ID = 0
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.listeners = nil
	n.dispatcher = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// IsFormControl reports whether the node is a text input, text area or select.
func (n *Node) IsFormControl() bool {
	return n.Kind != KindElement
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
