package comp

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
)

// Signal is an ordered, typed publisher. A carries the emission payload and
// R is the return type collected from the slots; use Unit for either when
// the signature is empty. Multi-argument signatures ride ArgsN payloads, see
// args.go.
//
// Slot signature compatibility is enforced by the type system at connect
// time: a callable connects only if its parameters are (A) or
// (Connection, A) and its return type is R.
//
// A signal is itself a Trackable: connecting it as the receiver of another
// signal registers the forwarding connection here, so closing the receiver
// disconnects the forwarding slot.
type Signal[A, R any] struct {
	Tracker

	mu       sync.Mutex
	slots    []*slot[A, R]
	emitting atomic.Bool
	blocked  atomic.Bool
}

// NewSignal returns an empty signal.
func NewSignal[A, R any]() *Signal[A, R] {
	return &Signal[A, R]{}
}

// Block sets the blocked state. A blocked signal's emissions are no-ops.
func (s *Signal[A, R]) Block(blocked bool) {
	s.blocked.Store(blocked)
}

// IsBlocked returns the blocked state.
func (s *Signal[A, R]) IsBlocked() bool {
	return s.blocked.Load()
}

func (s *Signal[A, R]) add(k *slot[A, R]) Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = append(s.slots, k)
	return k.conn()
}

// forget removes a slot from the slot list. Called back by the slot during
// its disconnect.
func (s *Signal[A, R]) forget(k *slot[A, R]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.slots, k); i >= 0 {
		s.slots = slices.Delete(s.slots, i, i+1)
	}
}

// Connect connects a function slot and returns its connection token.
func (s *Signal[A, R]) Connect(fn func(A) R) Connection {
	return s.add(newSlot(s, slotFunction, func(_ Connection, a A) (R, error) {
		return fn(a), nil
	}))
}

// ConnectC connects a function slot that receives its own connection token
// as the first argument on each activation.
func (s *Signal[A, R]) ConnectC(fn func(Connection, A) R) Connection {
	return s.add(newSlot(s, slotFunction, func(c Connection, a A) (R, error) {
		return fn(c, a), nil
	}))
}

// ConnectSignal connects a receiver signal; every emission is forwarded to
// it. The receiver tracks the forwarding slot, so closing the receiver
// disconnects it.
func (s *Signal[A, R]) ConnectSignal(receiver *Signal[A, R]) Connection {
	k := newSlot(s, slotForward, func(_ Connection, a A) (R, error) {
		receiver.Emit(a)
		var zero R
		return zero, nil
	})
	c := s.add(k)
	receiver.Track(c)
	return c
}

// ConnectMethod connects a bound method slot. The receiver handle is
// upgraded on each activation; if the receiver is gone the slot fails with
// ErrDeadHandle and is disconnected by the emitting signal. The handle is
// also bound as a trackable, so the slot reports invalid as soon as the
// receiver dies.
func ConnectMethod[T, A, R any](s *Signal[A, R], receiver WeakRef[T], method func(*T, A) R) Connection {
	k := newSlot(s, slotMethod, func(_ Connection, a A) (R, error) {
		obj, ok := receiver.Get()
		if !ok {
			var zero R
			return zero, ErrDeadHandle
		}
		return method(obj, a), nil
	})
	return s.add(k).Bind(receiver)
}

// ConnectMethodC is ConnectMethod for methods taking the slot's own
// connection token as their first argument.
func ConnectMethodC[T, A, R any](s *Signal[A, R], receiver WeakRef[T], method func(*T, Connection, A) R) Connection {
	k := newSlot(s, slotMethod, func(c Connection, a A) (R, error) {
		obj, ok := receiver.Get()
		if !ok {
			var zero R
			return zero, ErrDeadHandle
		}
		return method(obj, c, a), nil
	})
	return s.add(k).Bind(receiver)
}

// Disconnect disconnects the slot identified by c.
func (s *Signal[A, R]) Disconnect(c Connection) {
	c.Disconnect()
}

// Emit dispatches one emission with the default collector and returns it.
// Blocked and re-entered emissions return a fresh, empty collector.
func (s *Signal[A, R]) Emit(arg A) *ValueCollector[R] {
	col := &ValueCollector[R]{}
	s.EmitWith(arg, col)
	return col
}

// EmitWith dispatches one emission into col and reports whether the
// dispatch ran to completion. Blocked or re-entered emissions return false
// without invoking any slot; a collector returning false stops the loop, and
// the dispatch then counts as incomplete unless no slot was left to run.
//
// Slots are activated in connection order. The slot list is snapshotted up
// front: slots connected during the emission are visible to the next
// emission only, and slots disconnected before their turn are skipped. A
// slot failing with ErrBadSlot or ErrDeadHandle is disconnected and the
// dispatch continues.
func (s *Signal[A, R]) EmitWith(arg A, col Collector[R]) bool {
	if s.IsBlocked() {
		return false
	}
	if !s.emitting.CompareAndSwap(false, true) {
		return false
	}
	defer s.emitting.Store(false)

	s.mu.Lock()
	// Drop slots that are already torn down before snapshotting.
	s.slots = slices.DeleteFunc(s.slots, func(k *slot[A, R]) bool {
		return !k.connected.Load()
	})
	snapshot := slices.Clone(s.slots)
	s.mu.Unlock()

	for i, k := range snapshot {
		if !k.isConnected() {
			if k.connected.Load() {
				// A bound tracker died; retire the slot.
				k.disconnect()
			}
			continue
		}
		result, err := k.activate(arg)
		if err != nil {
			if errors.Is(err, ErrBadSlot) || errors.Is(err, ErrDeadHandle) {
				k.disconnect()
				continue
			}
			panic(err)
		}
		if !col.Collect(k.conn(), result) {
			// Stopping after the last slot of the snapshot skips nothing.
			return i == len(snapshot)-1
		}
	}
	return true
}

// Close disconnects every slot and invalidates the signal's tracker role,
// detaching any forwarding slots that target this signal. Closing a signal
// from one of its own slots is supported: the remaining slots of the
// running snapshot are skipped.
func (s *Signal[A, R]) Close() {
	// Disconnect re-enters forget, so pop one slot at a time and release
	// the signal lock around the call.
	s.mu.Lock()
	for len(s.slots) > 0 {
		k := s.slots[len(s.slots)-1]
		s.slots = s.slots[:len(s.slots)-1]
		s.mu.Unlock()
		k.disconnect()
		s.mu.Lock()
	}
	s.mu.Unlock()

	s.Tracker.Close()
}
