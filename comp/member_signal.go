package comp

// MemberSignal is a signal living as a field of a host object managed by a
// Ref. Every emission first upgrades the host handle; once the host is gone
// the emission is a no-op. The variant is named distinctly because it is
// unsafe to emit while the host is being torn down — callers opt in
// explicitly.
type MemberSignal[A, R, H any] struct {
	Signal[A, R]
	host WeakRef[H]
}

// NewMemberSignal returns a signal gated on the host handle.
func NewMemberSignal[A, R, H any](host WeakRef[H]) *MemberSignal[A, R, H] {
	return &MemberSignal[A, R, H]{host: host}
}

// Emit dispatches with the default collector if the host is still alive;
// otherwise it returns a fresh, empty collector.
func (s *MemberSignal[A, R, H]) Emit(arg A) *ValueCollector[R] {
	col := &ValueCollector[R]{}
	s.EmitWith(arg, col)
	return col
}

// EmitWith dispatches into col if the host is still alive.
func (s *MemberSignal[A, R, H]) EmitWith(arg A, col Collector[R]) bool {
	if _, ok := s.host.Get(); !ok {
		return false
	}
	return s.Signal.EmitWith(arg, col)
}
