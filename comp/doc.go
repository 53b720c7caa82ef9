// Package comp is a reactive composition core: type-safe, thread-safe
// signal/slot dispatch with lifetime-tracked connections, and reactive
// properties whose values come from a stack of value providers. Binding
// providers evaluate a user expression and auto-subscribe to every property
// the expression reads, so dependent properties re-notify when any
// dependency changes.
//
// All operations on signals, slots, trackers and properties are safe to
// call from any goroutine. Binding expressions evaluate under a
// per-goroutine scope and must not leak property reads to other goroutines.
package comp

// Unit is the empty payload and return type for signals that carry no data.
type Unit struct{}

// ChangedSignal is the canonical arity-zero notification signal published by
// properties. Observers re-read the property on notification.
type ChangedSignal = Signal[Unit, Unit]
