package grove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("scene should have a root node")
	}
	if s.Root().Name != "root" {
		t.Errorf("root name = %q, want %q", s.Root().Name, "root")
	}
	if s.Root().Parent() != nil {
		t.Error("root should have no parent")
	}
}

func TestSceneUpdateDrivesTraversal(t *testing.T) {
	s := NewScene()
	child := NewNode("child")
	child.TranslateX(5)
	s.Root().AddChild(child)

	s.Update(0.016)

	assertVec3(t, "child world origin", child.WorldOrigin(), mgl64.Vec3{5, 0, 0})
}

func TestSceneUpdateFuncRunsBeforeTraversal(t *testing.T) {
	s := NewScene()
	child := NewNode("child")
	s.Root().AddChild(child)

	s.SetUpdateFunc(func(dt float64) {
		child.SetOrigin(mgl64.Vec3{1, 2, 3})
	})
	s.Update(0.016)

	// The same frame's traversal must pick up mutations made in the hook.
	assertVec3(t, "child world origin", child.WorldOrigin(), mgl64.Vec3{1, 2, 3})
}

func TestSceneCameras(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera()
	if len(s.Cameras()) != 1 || s.Cameras()[0] != cam {
		t.Fatal("NewCamera should register the camera")
	}
	s.RemoveCamera(cam)
	if len(s.Cameras()) != 0 {
		t.Error("RemoveCamera should unregister the camera")
	}
}

func TestDebugModePanicsOnDestroyedNodeUse(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewNode("n")
	n.Destroy()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for AddChild on destroyed node in debug mode")
		}
	}()
	NewNode("parent").AddChild(n)
}

func TestReleaseModeToleratesDestroyedNodeUse(t *testing.T) {
	n := NewNode("n")
	n.Destroy()

	// Without debug mode the structural checks still apply but nothing panics.
	parent := NewNode("parent")
	if err := parent.AddChild(n); err != nil {
		t.Errorf("AddChild on destroyed node returned %v", err)
	}
}
