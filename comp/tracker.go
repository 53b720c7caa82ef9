package comp

import (
	"slices"
	"sync"
)

// Trackable witnesses the lifetime of the objects a slot depends on. A slot
// stays connected only while every Trackable bound to it reports valid.
// Concrete trackers keep backreferences to the connections they govern and
// disconnect them on Clear; validity-only trackers such as WeakRef keep no
// backreferences.
type Trackable interface {
	// Track records a connection governed by this tracker.
	Track(c Connection)
	// Untrack removes a single recorded connection.
	Untrack(c Connection)
	// Clear disconnects every recorded connection.
	Clear()
	// IsValid reports whether the tracked lifetime is still alive.
	IsValid() bool
}

// Tracker is the concrete lifetime witness. Bind it to connections via
// Connection.Bind; Close disconnects every governed slot and invalidates the
// tracker, which is the equivalent of the tracker object being destroyed.
// Application types may embed Tracker to become trackable themselves.
//
// The zero Tracker is ready to use.
type Tracker struct {
	mu     sync.Mutex
	conns  []Connection
	closed bool
}

// NewTracker returns an empty, valid tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Track records a connection governed by this tracker.
func (t *Tracker) Track(c Connection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conns = append(t.conns, c)
}

// Untrack removes a single recorded connection. Called by slots on teardown
// so the tracker's list stays minimal.
func (t *Tracker) Untrack(c Connection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := slices.Index(t.conns, c); i >= 0 {
		t.conns = slices.Delete(t.conns, i, i+1)
	}
}

// Clear disconnects every connection governed by this tracker. The tracker
// remains valid and reusable.
func (t *Tracker) Clear() {
	// Disconnect re-enters Untrack, so pop one connection at a time and
	// release the lock around the outward call.
	t.mu.Lock()
	for len(t.conns) > 0 {
		c := t.conns[len(t.conns)-1]
		t.conns = t.conns[:len(t.conns)-1]
		t.mu.Unlock()
		c.Disconnect()
		t.mu.Lock()
	}
	t.mu.Unlock()
}

// IsValid reports whether the tracker is still alive. Slots bound to a
// closed tracker are invalid.
func (t *Tracker) IsValid() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed
}

// Close invalidates the tracker and disconnects every governed slot. Any
// slot that might be disconnected by this tracker is disconnected before
// Close returns.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()
	t.Clear()
}
