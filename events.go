package grove

// listenerEntry is one registered callback. Entries are heap-allocated so a
// delivery snapshot observes removals that happen mid-delivery.
type listenerEntry struct {
	id      ListenerID
	fn      func(Event)
	removed bool
}

// On registers callback for events of the given type on this node. Callbacks
// fire synchronously, in registration order. The returned ID removes the
// registration via Off.
func (n *Node) On(t EventType, callback func(Event)) ListenerID {
	if n.listeners == nil {
		n.listeners = make(map[EventType][]*listenerEntry)
	}
	n.nextListenerID++
	id := n.nextListenerID
	n.listeners[t] = append(n.listeners[t], &listenerEntry{id: id, fn: callback})
	return id
}

// Off removes the listener registered under id for the given event type and
// reports whether it was found. Removing a listener during delivery of an
// event prevents any pending invocation of it.
func (n *Node) Off(t EventType, id ListenerID) bool {
	entries := n.listeners[t]
	for i, e := range entries {
		if e.id == id {
			e.removed = true
			copy(entries[i:], entries[i+1:])
			entries[len(entries)-1] = nil
			n.listeners[t] = entries[:len(entries)-1]
			return true
		}
	}
	return false
}

// ClearListeners removes all registered callbacks for all event types on
// this node. Called by Destroy.
func (n *Node) ClearListeners() {
	for _, entries := range n.listeners {
		for _, e := range entries {
			e.removed = true
		}
	}
	n.listeners = nil
}

// notify delivers ev to every listener registered for ev.Type, in
// registration order. The entry list is snapshotted first: listeners added
// during delivery do not fire for this event, and listeners removed during
// delivery are skipped. A panicking callback is recovered and logged so the
// remaining listeners still run.
func (n *Node) notify(ev Event) {
	entries := n.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]*listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		invokeListener(e, ev)
	}
}

func invokeListener(e *listenerEntry, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			warnf("listener panic during %q on %q: %v", ev.Type, ev.Node.Name, r)
		}
	}()
	e.fn(ev)
}

// NumListeners returns the number of listeners registered for the given
// event type. Mostly useful in tests and debug assertions.
func (n *Node) NumListeners(t EventType) int {
	return len(n.listeners[t])
}
