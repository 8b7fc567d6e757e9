package grove

// Scene is the top-level object that owns the node tree and cameras, and
// drives the per-frame update traversal.
type Scene struct {
	root    *Node
	cameras []*Camera
	debug   bool

	updateFunc func(dt float64)
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{
		root: NewNode("root"),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a per-frame callback invoked by Scene.Update
// before the tree traversal. Useful for game logic that mutates transforms
// so the same frame's traversal picks the changes up.
func (s *Scene) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// Update runs one frame: the user update callback, then the lazy
// revalidation traversal from the root, then camera tracking. After Update
// returns, every node's WorldModel is current and safe for a renderer to
// read.
func (s *Scene) Update(dt float64) {
	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
	s.root.Update(dt)
	for _, cam := range s.cameras {
		cam.update(dt)
	}
}

// NewCamera creates a camera with default settings and adds it to the scene.
func (s *Scene) NewCamera() *Camera {
	cam := newCamera()
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on destroyed nodes panic and tree depth / child count warnings are printed.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
