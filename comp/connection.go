package comp

// anySlot is the connection-facing view of a slot, independent of the
// owning signal's type parameters.
type anySlot interface {
	isConnected() bool
	disconnect()
	bindTrackable(t Trackable)
}

// Connection is a weak, copyable token identifying one slot. The zero
// Connection is invalid. A valid Connection whose slot has been disconnected
// reports invalid; the token itself never keeps a slot connected.
type Connection struct {
	slot anySlot
}

// IsValid reports whether the slot is still connected and every trackable
// bound to it witnesses a live object.
func (c Connection) IsValid() bool {
	return c.slot != nil && c.slot.isConnected()
}

// Disconnect disconnects the slot. Idempotent; safe to call concurrently
// with an ongoing emission, in which case the slot is skipped by any
// activation it has not already entered.
func (c Connection) Disconnect() {
	if c.slot != nil {
		c.slot.disconnect()
	}
}

// Bind binds trackables to the slot and returns the connection for
// chaining. The slot stays connected only while every bound trackable is
// valid; concrete trackers additionally disconnect the slot on Clear or
// Close. Binding to an invalid connection is a no-op.
func (c Connection) Bind(trackables ...Trackable) Connection {
	if c.slot == nil {
		return c
	}
	for _, t := range trackables {
		c.slot.bindTrackable(t)
	}
	return c
}
