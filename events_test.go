package grove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		EventOrigin:      "origin",
		EventOrientation: "orientation",
		EventSize:        "size",
		EventLocalModel:  "localModel",
		EventModel:       "model",
		EventAdd:         "add",
		EventRemove:      "remove",
		EventDestroy:     "destroy",
		EventType(200):   "unknown",
	}
	for typ, want := range cases {
		if typ.String() != want {
			t.Errorf("String() = %q, want %q", typ.String(), want)
		}
	}
}

func TestListenersInvokedInRegistrationOrder(t *testing.T) {
	n := NewNode("n")
	var order []int
	n.On(EventOrigin, func(Event) { order = append(order, 1) })
	n.On(EventOrigin, func(Event) { order = append(order, 2) })
	n.On(EventOrigin, func(Event) { order = append(order, 3) })

	n.SetOrigin(mgl64.Vec3{1, 0, 0})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("invocation order = %v, want [1 2 3]", order)
	}
}

func TestListenerReceivesNewValue(t *testing.T) {
	n := NewNode("n")
	var got mgl64.Vec3
	calls := 0
	n.On(EventOrigin, func(ev Event) {
		got = ev.Vec
		calls++
	})
	n.SetOrigin(mgl64.Vec3{4, 5, 6})

	if calls != 1 {
		t.Fatalf("listener called %d times, want 1", calls)
	}
	assertVec3(t, "event payload", got, mgl64.Vec3{4, 5, 6})
}

func TestListenerScopedToEventType(t *testing.T) {
	n := NewNode("n")
	originCalls, sizeCalls := 0, 0
	n.On(EventOrigin, func(Event) { originCalls++ })
	n.On(EventSize, func(Event) { sizeCalls++ })

	n.SetOrigin(mgl64.Vec3{1, 0, 0})

	if originCalls != 1 || sizeCalls != 0 {
		t.Errorf("origin = %d, size = %d; want 1, 0", originCalls, sizeCalls)
	}
}

func TestOff(t *testing.T) {
	n := NewNode("n")
	calls := 0
	id := n.On(EventOrigin, func(Event) { calls++ })

	if !n.Off(EventOrigin, id) {
		t.Fatal("Off should find the listener")
	}
	n.SetOrigin(mgl64.Vec3{1, 0, 0})
	if calls != 0 {
		t.Error("removed listener should not be invoked")
	}
	if n.Off(EventOrigin, id) {
		t.Error("second Off should report not found")
	}
}

func TestOffDuringDelivery(t *testing.T) {
	n := NewNode("n")
	var secondID ListenerID
	firstCalls, secondCalls := 0, 0
	n.On(EventOrigin, func(Event) {
		firstCalls++
		n.Off(EventOrigin, secondID)
	})
	secondID = n.On(EventOrigin, func(Event) { secondCalls++ })

	n.SetOrigin(mgl64.Vec3{1, 0, 0})

	if firstCalls != 1 {
		t.Errorf("first listener called %d times, want 1", firstCalls)
	}
	if secondCalls != 0 {
		t.Error("listener removed during delivery must not be invoked")
	}
}

func TestOnDuringDelivery(t *testing.T) {
	n := NewNode("n")
	lateCalls := 0
	n.On(EventOrigin, func(Event) {
		n.On(EventOrigin, func(Event) { lateCalls++ })
	})

	n.SetOrigin(mgl64.Vec3{1, 0, 0})
	if lateCalls != 0 {
		t.Error("listener added during delivery must not fire for the same event")
	}

	n.SetOrigin(mgl64.Vec3{2, 0, 0})
	if lateCalls != 1 {
		t.Errorf("late listener called %d times on the next event, want 1", lateCalls)
	}
}

func TestListenerPanicIsolation(t *testing.T) {
	n := NewNode("n")
	calls := 0
	n.On(EventOrigin, func(Event) { panic("observer bug") })
	n.On(EventOrigin, func(Event) { calls++ })

	n.SetOrigin(mgl64.Vec3{1, 0, 0}) // must not propagate the panic

	if calls != 1 {
		t.Error("a panicking listener must not starve later listeners")
	}
}

func TestClearListeners(t *testing.T) {
	n := NewNode("n")
	calls := 0
	n.On(EventOrigin, func(Event) { calls++ })
	n.On(EventSize, func(Event) { calls++ })

	n.ClearListeners()
	n.SetOrigin(mgl64.Vec3{1, 0, 0})
	n.SetSize(mgl64.Vec3{2, 2, 2})

	if calls != 0 {
		t.Error("cleared listeners should not be invoked")
	}
	if n.NumListeners(EventOrigin) != 0 || n.NumListeners(EventSize) != 0 {
		t.Error("NumListeners should be 0 after ClearListeners")
	}
}

func TestRotateFiresOrientationEvent(t *testing.T) {
	n := NewNode("n")
	var got mgl64.Quat
	calls := 0
	n.On(EventOrientation, func(ev Event) {
		got = ev.Quat
		calls++
	})
	n.RotateZ(0.5)

	if calls != 1 {
		t.Fatalf("orientation fired %d times, want 1", calls)
	}
	if !got.ApproxEqualThreshold(n.Orientation(), epsilon) {
		t.Error("event payload should carry the new orientation")
	}
}

func TestTwoListenersOnOrigin(t *testing.T) {
	n := NewNode("n")
	var first, second []mgl64.Vec3
	n.On(EventOrigin, func(ev Event) { first = append(first, ev.Vec) })
	n.On(EventOrigin, func(ev Event) { second = append(second, ev.Vec) })

	n.SetOrigin(mgl64.Vec3{7, 8, 9})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("listeners called %d and %d times, want 1 and 1", len(first), len(second))
	}
	assertVec3(t, "first payload", first[0], mgl64.Vec3{7, 8, 9})
	assertVec3(t, "second payload", second[0], mgl64.Vec3{7, 8, 9})
}
