package grove

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Structural-constraint errors returned by AddChild. Both are hard failures:
// the tree is left untouched and no event fires.
var (
	// ErrAlreadyParented is returned when the candidate child is already
	// attached to another node. Detach it first.
	ErrAlreadyParented = errors.New("grove: child already has a parent")

	// ErrCycle is returned when attaching the candidate child would make a
	// node its own ancestor.
	ErrCycle = errors.New("grove: child is an ancestor of this node")

	// ErrNilChild is returned when AddChild is called with a nil child.
	ErrNilChild = errors.New("grove: cannot add nil child")
)

// nodeIDCounter is a plain counter (no atomic — grove is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a spatial entity in the transform hierarchy. It owns a local
// transform (origin, orientation, scale) relative to its parent, and caches
// the derived local and world model matrices, which are lazily recomputed
// during the per-frame Update traversal.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy. parent is a non-owning back-reference; the children slice
	// is the only ownership-bearing relation. AddChild and RemoveChild keep
	// the two bidirectionally consistent.
	parent   *Node
	children []*Node

	// Transform (local)
	origin      mgl64.Vec3
	orientation mgl64.Quat
	scale       mgl64.Vec3

	// Cached matrices. Each is only trustworthy while its validity flag is
	// set; Update recomputes stale ones top-down.
	localModel      mgl64.Mat4
	worldModel      mgl64.Mat4
	localModelValid bool
	modelValid      bool

	// Listeners (lazily allocated)
	listeners      map[EventType][]*listenerEntry
	nextListenerID ListenerID

	// OnUpdate, if set, runs during Update each frame after this node has
	// been revalidated and before its children are visited.
	OnUpdate func(dt float64)

	destroyed bool
}

// NewNode creates a detached node with an identity transform and a generated
// ID. Both model matrices start invalid, so the first Update computes them.
func NewNode(name string) *Node {
	return NewNodeWithID(nextNodeID(), name)
}

// NewNodeWithID is NewNode with a caller-supplied ID. The ID is not checked
// for uniqueness.
func NewNodeWithID(id uint32, name string) *Node {
	return &Node{
		ID:          id,
		Name:        name,
		orientation: mgl64.QuatIdent(),
		scale:       mgl64.Vec3{1, 1, 1},
		localModel:  mgl64.Ident4(),
		worldModel:  mgl64.Ident4(),
	}
}

// --- Tree manipulation ---

// AddChild attaches child to this node.
//
// Attaching a node that already has a parent fails with ErrAlreadyParented;
// attaching an ancestor of this node (including itself) fails with ErrCycle.
// On failure nothing is mutated and no event fires. Re-adding a node that is
// already a child of this node is a no-op (a notice is logged). On success
// the child's world model is invalidated and EventAdd fires on this node.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return errors.Wrapf(ErrNilChild, "on %q", n.Name)
	}
	if globalDebug {
		debugCheckDestroyed(n, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if child.parent == n && n.hasChild(child) {
		noticef("AddChild: %q is already a child of %q", child.Name, n.Name)
		return nil
	}
	if child.parent != nil {
		return errors.Wrapf(ErrAlreadyParented, "add %q to %q", child.Name, n.Name)
	}
	if isAncestor(child, n) {
		return errors.Wrapf(ErrCycle, "add %q to %q", child.Name, n.Name)
	}
	child.parent = n
	n.children = append(n.children, child)
	// Ancestry changed, so the child's cached world model is stale.
	child.modelValid = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	n.notify(Event{Type: EventAdd, Node: n, Child: child})
	return nil
}

// RemoveChild detaches child from this node and reports whether it did.
//
// A nil child or a node that is not a child of this node is a reported
// failure: a warning is logged, false is returned, and no state changes.
// On success the child's world model is invalidated and EventRemove fires
// on this node.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil {
		warnf("RemoveChild: nil child on %q", n.Name)
		return false
	}
	if !n.hasChild(child) {
		warnf("RemoveChild: %q is not a child of %q", child.Name, n.Name)
		return false
	}
	n.removeChildByPtr(child)
	child.parent = nil
	child.modelValid = false
	n.notify(Event{Type: EventRemove, Node: n, Child: child})
	return true
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// ClearChildren detaches all children via RemoveChild. The child list is
// snapshotted first, so remove-event callbacks may mutate the tree freely.
func (n *Node) ClearChildren() {
	if len(n.children) == 0 {
		return
	}
	snapshot := make([]*Node, len(n.children))
	copy(snapshot, n.children)
	for _, child := range snapshot {
		n.RemoveChild(child)
	}
}

// --- Queries ---

// Parent returns this node's parent, or nil if detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// HasChild reports whether child is a direct child of this node.
func (n *Node) HasChild(child *Node) bool {
	return child != nil && n.hasChild(child)
}

// Root returns the topmost ancestor of this node (itself if detached).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Find returns the first node named name in a depth-first search of the
// subtree rooted at this node, or nil if none matches.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Traverse visits this node and every descendant in pre-order.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Traverse(fn)
	}
}

// --- Destruction ---

// Destroy detaches this node from its parent, detaches and recursively
// destroys every child, fires EventDestroy, and drops all listeners.
// Calling Destroy again is a no-op.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	if len(n.children) > 0 {
		snapshot := make([]*Node, len(n.children))
		copy(snapshot, n.children)
		for _, child := range snapshot {
			n.RemoveChild(child)
			child.Destroy()
		}
	}
	n.notify(Event{Type: EventDestroy, Node: n})
	n.ClearListeners()
}

// Destroyed reports whether this node has been destroyed.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) hasChild(child *Node) bool {
	for _, c := range n.children {
		if c == child {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
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
