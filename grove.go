package grove

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Axis constants for the common rotation axes.
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// EventType identifies a kind of node event.
type EventType uint8

const (
	EventOrigin      EventType = iota // fires when a node's origin changes
	EventOrientation                  // fires when a node's orientation changes
	EventSize                         // fires when a node's scale changes
	EventLocalModel                   // fires when the local model matrix is recomputed
	EventModel                        // fires when the world model matrix is recomputed
	EventAdd                          // fires on the parent when a child is attached
	EventRemove                       // fires on the parent when a child is detached
	EventDestroy                      // fires when a node is destroyed
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventOrigin:
		return "origin"
	case EventOrientation:
		return "orientation"
	case EventSize:
		return "size"
	case EventLocalModel:
		return "localModel"
	case EventModel:
		return "model"
	case EventAdd:
		return "add"
	case EventRemove:
		return "remove"
	case EventDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Event carries the payload delivered to listeners. A single flat struct is
// used for all event kinds; which fields are meaningful depends on Type:
//
//	EventOrigin, EventSize        Vec holds the new value
//	EventOrientation              Quat holds the new value
//	EventLocalModel, EventModel   Matrix holds the recomputed matrix
//	EventAdd, EventRemove         Child holds the attached/detached node
//	EventDestroy                  no payload
//
// Node is always the node the event fired on.
type Event struct {
	Type   EventType
	Node   *Node
	Child  *Node
	Vec    mgl64.Vec3
	Quat   mgl64.Quat
	Matrix mgl64.Mat4
}

// ListenerID identifies a registered listener for removal via Node.Off.
type ListenerID uint32
