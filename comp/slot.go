package comp

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Recoverable activation failures. The emission loop consumes both kinds by
// disconnecting the failing slot and continuing with the next one.
var (
	// ErrBadSlot reports activation of a slot whose required live resource
	// is gone.
	ErrBadSlot = errors.New("comp: bad slot")
	// ErrDeadHandle reports a receiver handle that failed to upgrade on
	// activation. Treated like ErrBadSlot.
	ErrDeadHandle = errors.New("comp: dead weak handle")
)

type slotKind uint8

const (
	slotFunction slotKind = iota
	slotMethod
	slotForward
)

// slot is one connection between a signal and one callable. The callable is
// one of three kinds: a plain function, a bound method behind a weak
// receiver handle, or a forwarding reference to another signal. Activation
// branches on the kind through the invoke thunk built at connect time.
type slot[A, R any] struct {
	mu         sync.Mutex
	kind       slotKind
	signal     *Signal[A, R] // guarded by mu; nil once disconnected
	trackables []Trackable   // guarded by mu
	connected  atomic.Bool
	invoke     func(Connection, A) (R, error)
}

func newSlot[A, R any](s *Signal[A, R], kind slotKind, invoke func(Connection, A) (R, error)) *slot[A, R] {
	k := &slot[A, R]{kind: kind, signal: s, invoke: invoke}
	k.connected.Store(true)
	return k
}

func (k *slot[A, R]) conn() Connection {
	return Connection{slot: k}
}

// isConnectedLocked reports connectivity; the caller holds k.mu. A slot is
// connected iff the flag is set and every bound trackable witnesses a live
// object.
func (k *slot[A, R]) isConnectedLocked() bool {
	if !k.connected.Load() {
		return false
	}
	for _, t := range k.trackables {
		if !t.IsValid() {
			return false
		}
	}
	return true
}

func (k *slot[A, R]) isConnected() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.isConnectedLocked()
}

// disconnect tears the slot down: it detaches from the owning signal, flips
// the connected flag exactly once, and removes the slot from every bound
// tracker. Idempotent and safe against concurrent emissions.
func (k *slot[A, R]) disconnect() {
	k.mu.Lock()
	sig := k.signal
	k.signal = nil
	k.mu.Unlock()
	if sig != nil {
		sig.forget(k)
	}

	if !k.connected.Swap(false) {
		// Already disconnected.
		return
	}

	k.mu.Lock()
	trackables := k.trackables
	k.trackables = nil
	k.mu.Unlock()

	c := k.conn()
	for _, t := range trackables {
		t.Untrack(c)
	}
}

func (k *slot[A, R]) bindTrackable(t Trackable) {
	if !k.connected.Load() {
		return
	}
	k.mu.Lock()
	k.trackables = append(k.trackables, t)
	k.mu.Unlock()
	t.Track(k.conn())
}

// activate validates the slot and runs its callable. The slot lock covers
// only the state check; the user callable runs with no lock held, so it may
// disconnect this slot or other slots of the same signal.
func (k *slot[A, R]) activate(arg A) (R, error) {
	k.mu.Lock()
	ok := k.isConnectedLocked()
	invoke := k.invoke
	k.mu.Unlock()
	if !ok {
		var zero R
		return zero, ErrBadSlot
	}
	return invoke(k.conn(), arg)
}
