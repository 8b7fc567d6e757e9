// Package grove is a retained-mode 3D transform hierarchy for Go.
//
// Grove provides the scene graph core that a real-time renderer sits on top
// of: a tree of spatial nodes, each with a local transform (origin,
// orientation quaternion, scale) lazily composed with its ancestors into a
// cached world matrix, plus per-node typed events for reacting to property,
// structural, and lifecycle changes. Grove issues no draw calls itself; an
// external renderer reads [Node.WorldModel] after each update traversal.
//
// # Quick start
//
//	scene := grove.NewScene()
//
//	body := grove.NewNode("body")
//	body.SetOrigin(mgl64.Vec3{0, 1, 0})
//	scene.Root().AddChild(body)
//
//	arm := grove.NewNode("arm")
//	arm.TranslateX(0.5)
//	body.AddChild(arm)
//
//	// Once per frame:
//	scene.Update(dt)
//	m := arm.WorldModel() // body's world * arm's local
//
// # Lazy revalidation
//
// Property setters never recompute matrices; they mark the cached local and
// world models stale and fire an event. [Node.Update] (called top-down from
// the root by [Scene.Update]) recomputes stale matrices once, however many
// mutations happened during the frame, and marks each direct child stale so
// the traversal carries the change down the tree.
//
// # Events
//
// Every node carries its own listener registry. Register with [Node.On] and
// an [EventType]; delivery is synchronous and in registration order:
//
//	body.On(grove.EventOrigin, func(ev grove.Event) {
//		fmt.Println("body moved to", ev.Vec)
//	})
//
// # Structure mutation
//
// [Node.AddChild] enforces the single-parent and acyclicity invariants and
// returns an error on violation. [Node.RemoveChild] and [Node.Destroy]
// absorb invalid references as logged no-ops. Destroying a node detaches and
// destroys its whole subtree and drops all listeners.
package grove
