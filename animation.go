package grove

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 scalar channels into a Node's transform
// properties. Create one via the convenience constructors (TweenOrigin,
// TweenSize, TweenRotation) and call Update(dt) each frame. Values are
// written through the public setters, so invalidation and property events
// fire exactly as for manual mutation. If the target node is destroyed, the
// group stops immediately.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	target *Node
	apply  func(vals [4]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target node. If the target node has been destroyed, Done is set to true
// and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.Destroyed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
}

// TweenOrigin creates a TweenGroup that animates the node's origin to the
// given target position over the specified duration using the easing function.
func TweenOrigin(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	from := node.Origin()
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(vals [4]float64) {
		node.SetOrigin(mgl64.Vec3{vals[0], vals[1], vals[2]})
	}
	return g
}

// TweenSize creates a TweenGroup that animates the node's scale to the given
// target over the specified duration using the easing function.
func TweenSize(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	from := node.Size()
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(vals [4]float64) {
		node.SetSize(mgl64.Vec3{vals[0], vals[1], vals[2]})
	}
	return g
}

// TweenRotation creates a TweenGroup that rotates the node by angle radians
// about axis in its local frame, starting from the orientation at call time.
func TweenRotation(node *Node, angle float64, axis mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	start := node.Orientation()
	g.tweens[0] = gween.New(0, float32(angle), duration, fn)
	g.apply = func(vals [4]float64) {
		node.SetOrientation(start.Mul(mgl64.QuatRotate(vals[0], axis)).Normalize())
	}
	return g
}
