package grove

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera describes the view into the scene: an eye position looking at a
// target point, plus a perspective projection. The camera never issues draw
// calls; it only produces matrices and screen-space projections for an
// external renderer.
type Camera struct {
	// Eye is the camera position in world space.
	Eye mgl64.Vec3
	// Target is the world-space point the camera looks at.
	Target mgl64.Vec3
	// Up is the camera's up direction.
	Up mgl64.Vec3

	// Fov is the vertical field of view in radians.
	Fov float64
	// Aspect is the viewport width/height ratio.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64

	followTarget *Node
	followOffset mgl64.Vec3
	followLerp   float64
}

// newCamera creates a Camera with sensible defaults: eye at (0, 0, 10)
// looking at the origin, 60 degree FOV, 16:9 aspect.
func newCamera() *Camera {
	return &Camera{
		Eye:    mgl64.Vec3{0, 0, 10},
		Up:     mgl64.Vec3{0, 1, 0},
		Fov:    math.Pi / 3,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    1000,
	}
}

// Follow makes the camera track a node's world origin with the given eye
// offset and lerp factor. A lerp of 1.0 snaps immediately; lower values give
// smoother following.
func (c *Camera) Follow(node *Node, offset mgl64.Vec3, lerp float64) {
	c.followTarget = node
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// update advances follow tracking. Called from Scene.Update after the tree
// traversal, so the target's world origin is current.
func (c *Camera) update(dt float64) {
	if c.followTarget == nil || c.followTarget.Destroyed() {
		return
	}
	want := c.followTarget.WorldOrigin()
	c.Target = lerpVec3(c.Target, want, c.followLerp)
	c.Eye = lerpVec3(c.Eye, want.Add(c.followOffset), c.followLerp)
}

// ViewMatrix returns the world-to-eye matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// ProjectToScreen projects a world-space point into screen coordinates for a
// width x height viewport, with the origin at the top-left (Y down, the
// usual 2D screen convention). visible is false when the point falls outside
// the depth range of the frustum.
func (c *Camera) ProjectToScreen(world mgl64.Vec3, width, height int) (x, y float64, visible bool) {
	win := mgl64.Project(world, c.ViewMatrix(), c.ProjectionMatrix(), 0, 0, width, height)
	x = win.X()
	y = float64(height) - win.Y()
	visible = win.Z() > 0 && win.Z() < 1
	return x, y, visible
}

// lerpVec3 linearly interpolates from a to b by t.
func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// OrbitController positions a camera on a sphere around a target point,
// described by distance, pitch, and yaw. Drive Pitch/Yaw from input and call
// Apply each frame.
type OrbitController struct {
	Target   mgl64.Vec3
	Distance float64
	Pitch    float64 // rotation about the X axis, radians
	Yaw      float64 // rotation about the Y axis, radians
}

// NewOrbitController creates an orbit controller around target.
func NewOrbitController(target mgl64.Vec3, distance, pitch, yaw float64) *OrbitController {
	return &OrbitController{
		Target:   target,
		Distance: distance,
		Pitch:    pitch,
		Yaw:      yaw,
	}
}

// Position returns the orbit position in world space.
func (o *OrbitController) Position() mgl64.Vec3 {
	return mgl64.Vec3{
		o.Distance * math.Cos(o.Pitch) * math.Sin(o.Yaw),
		o.Distance * math.Sin(o.Pitch),
		o.Distance * math.Cos(o.Pitch) * math.Cos(o.Yaw),
	}.Add(o.Target)
}

// ViewMatrix returns the world-to-eye matrix from the orbit position.
func (o *OrbitController) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(o.Position(), o.Target, mgl64.Vec3{0, 1, 0})
}

// Apply writes the orbit position and target into cam.
func (o *OrbitController) Apply(cam *Camera) {
	cam.Eye = o.Position()
	cam.Target = o.Target
}
