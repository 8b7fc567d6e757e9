package grove

import (
	"github.com/go-gl/mathgl/mgl64"
)

// computeLocalModel composes the local model matrix from the node's
// transform properties.
//
// Composition order: Translate(origin) * Rotate(orientation) * Scale(scale).
// Scale and rotation act about the node's own origin before the result is
// placed at the translated position.
func computeLocalModel(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.origin.X(), n.origin.Y(), n.origin.Z())
	r := n.orientation.Mat4()
	s := mgl64.Scale3D(n.scale.X(), n.scale.Y(), n.scale.Z())
	return t.Mul4(r).Mul4(s)
}

// --- Update traversal ---

// Update lazily revalidates this node's model matrices and recurses into its
// children. Call it once per frame on each root; the traversal visits the
// whole subtree.
//
// A node is fully revalidated before any of its descendants are visited, so
// every world model is composed against a finalized ancestor. Revalidating a
// node marks each direct child's world model stale; the recursion then picks
// those up one level at a time.
func (n *Node) Update(dt float64) {
	if globalDebug {
		debugCheckDestroyed(n, "Update")
	}
	if !n.modelValid {
		n.revalidate()
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.children) == 0 {
		return
	}
	// Event callbacks may restructure the tree mid-traversal; iterate a
	// snapshot and skip children that were detached under us.
	snapshot := make([]*Node, len(n.children))
	copy(snapshot, n.children)
	for _, child := range snapshot {
		if child.parent == n {
			child.Update(dt)
		}
	}
}

// revalidate recomputes the stale matrices. Only called when modelValid is
// false, so the model event below always reflects an actual change.
func (n *Node) revalidate() {
	if !n.localModelValid {
		n.localModel = computeLocalModel(n)
		n.localModelValid = true
		n.notify(Event{Type: EventLocalModel, Node: n, Matrix: n.localModel})
	}
	if n.parent != nil {
		n.worldModel = n.parent.worldModel.Mul4(n.localModel)
	} else {
		n.worldModel = n.localModel
	}
	n.modelValid = true
	for _, child := range n.children {
		child.modelValid = false
	}
	n.notify(Event{Type: EventModel, Node: n, Matrix: n.worldModel})
}

// invalidateLocal marks both cached matrices stale. Invalidating the local
// model always invalidates the world model in the same step, so the
// (localModel valid, worldModel invalid) state only ever arises from an
// ancestor change, never the reverse.
func (n *Node) invalidateLocal() {
	n.localModelValid = false
	n.modelValid = false
}

// --- Transform property setters ---
//
// Every setter copies the value, marks the cached matrices stale, and fires
// its property event with the new value — even when the value did not
// actually change. Listeners get at-least-once delivery; they must not
// assume each event is a distinct value.

// SetOrigin sets the node's local position.
func (n *Node) SetOrigin(v mgl64.Vec3) {
	n.origin = v
	n.invalidateLocal()
	n.notify(Event{Type: EventOrigin, Node: n, Vec: v})
}

// SetOrientation sets the node's local rotation. q should be a unit
// quaternion.
func (n *Node) SetOrientation(q mgl64.Quat) {
	n.orientation = q
	n.invalidateLocal()
	n.notify(Event{Type: EventOrientation, Node: n, Quat: q})
}

// SetSize sets the node's local scale.
func (n *Node) SetSize(v mgl64.Vec3) {
	n.scale = v
	n.invalidateLocal()
	n.notify(Event{Type: EventSize, Node: n, Vec: v})
}

// Translate moves the node's origin by delta.
func (n *Node) Translate(delta mgl64.Vec3) {
	n.SetOrigin(n.origin.Add(delta))
}

// TranslateX moves the node's origin along the X axis.
func (n *Node) TranslateX(d float64) {
	n.Translate(mgl64.Vec3{d, 0, 0})
}

// TranslateY moves the node's origin along the Y axis.
func (n *Node) TranslateY(d float64) {
	n.Translate(mgl64.Vec3{0, d, 0})
}

// TranslateZ moves the node's origin along the Z axis.
func (n *Node) TranslateZ(d float64) {
	n.Translate(mgl64.Vec3{0, 0, d})
}

// ScaleBy multiplies the node's scale component-wise by v.
func (n *Node) ScaleBy(v mgl64.Vec3) {
	n.SetSize(mgl64.Vec3{
		n.scale.X() * v.X(),
		n.scale.Y() * v.Y(),
		n.scale.Z() * v.Z(),
	})
}

// Rotate composes the node's orientation with a rotation of angle radians
// about axis. The rotation is right-multiplied, so it is applied in the
// node's local frame, not the world frame.
func (n *Node) Rotate(angle float64, axis mgl64.Vec3) {
	delta := mgl64.QuatRotate(angle, axis)
	n.SetOrientation(n.orientation.Mul(delta).Normalize())
}

// RotateX rotates the node about its local X axis.
func (n *Node) RotateX(angle float64) {
	n.Rotate(angle, AxisX)
}

// RotateY rotates the node about its local Y axis.
func (n *Node) RotateY(angle float64) {
	n.Rotate(angle, AxisY)
}

// RotateZ rotates the node about its local Z axis.
func (n *Node) RotateZ(angle float64) {
	n.Rotate(angle, AxisZ)
}

// --- Read accessors ---

// Origin returns the node's local position.
func (n *Node) Origin() mgl64.Vec3 {
	return n.origin
}

// Orientation returns the node's local rotation.
func (n *Node) Orientation() mgl64.Quat {
	return n.orientation
}

// Size returns the node's local scale.
func (n *Node) Size() mgl64.Vec3 {
	return n.scale
}

// LocalModel returns the cached local model matrix. Stale until the next
// Update if the transform was mutated since the last one.
func (n *Node) LocalModel() mgl64.Mat4 {
	return n.localModel
}

// WorldModel returns the cached world model matrix. Only valid after Update
// has run in the current frame.
func (n *Node) WorldModel() mgl64.Mat4 {
	return n.worldModel
}

// WorldOrigin returns the translation component of the cached world model:
// the node's position in the root coordinate frame.
func (n *Node) WorldOrigin() mgl64.Vec3 {
	return mgl64.Vec3{
		n.worldModel.At(0, 3),
		n.worldModel.At(1, 3),
		n.worldModel.At(2, 3),
	}
}
