package comp

import (
	"fmt"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// ProviderState is the lifecycle state of a value provider.
type ProviderState uint8

const (
	// Detached: the provider belongs to no property.
	Detached ProviderState = iota
	// Attaching: the provider is being attached to a property.
	Attaching
	// Inactive: attached, not answering evaluations.
	Inactive
	// Active: attached and answering evaluations for its property.
	Active
	// Detaching: the provider is being detached from its property.
	Detaching
)

func (s ProviderState) String() string {
	switch s {
	case Detached:
		return "Detached"
	case Attaching:
		return "Attaching"
	case Inactive:
		return "Inactive"
	case Active:
		return "Active"
	case Detaching:
		return "Detaching"
	}
	return fmt.Sprintf("ProviderState(%d)", uint8(s))
}

// WritePolicy is a provider's behavior on a direct property write.
type WritePolicy uint8

const (
	// Keep providers survive a direct set on the property.
	Keep WritePolicy = iota
	// Discard providers are removed by a direct set on the property.
	Discard
)

type providerKind uint8

const (
	kindStored providerKind = iota
	kindUser
	kindBinding
)

// ValueProvider is one element of a property's provider stack. The active
// provider answers the property's reads. Three kinds exist: a stored cell, a
// user-defined evaluate/set pair, and a binding expression that re-evaluates
// a nullary function and auto-subscribes to every property it reads.
type ValueProvider[T comparable] struct {
	mu     sync.Mutex
	kind   providerKind
	policy WritePolicy
	state  ProviderState
	target *Property[T]

	// value caches the last evaluated result; for the stored kind it is the
	// cell itself.
	value T

	getFn func() T
	setFn func(T) bool
	expr  func() T

	// Binding bookkeeping: the tracker gating the dependency connections,
	// and the set of properties read during the last evaluation. evalMu
	// serializes evaluations across goroutines; evalGID marks the goroutine
	// inside an evaluation so a cyclic re-entry can be detected.
	evalMu   sync.Mutex
	evalGID  atomic.Uint64
	deps     *Tracker
	depProps mapset.Set[observedProperty]
}

// NewValue returns a stored-value provider with policy Keep.
func NewValue[T comparable](initial T) *ValueProvider[T] {
	return &ValueProvider[T]{kind: kindStored, policy: Keep, value: initial}
}

// NewUserValue returns a provider backed by application-supplied evaluate
// and set functions. set may be nil for read-only providers; its return
// value reports whether the stored value changed.
func NewUserValue[T comparable](policy WritePolicy, get func() T, set func(T) bool) *ValueProvider[T] {
	if get == nil {
		panic("comp: user value provider requires an evaluate function")
	}
	return &ValueProvider[T]{kind: kindUser, policy: policy, getFn: get, setFn: set}
}

// NewBinding returns a binding provider wrapping expr. Bindings have policy
// Discard: a direct set on the property removes them.
func NewBinding[T comparable](expr func() T) *ValueProvider[T] {
	return &ValueProvider[T]{
		kind:     kindBinding,
		policy:   Discard,
		expr:     expr,
		deps:     NewTracker(),
		depProps: mapset.NewSet[observedProperty](),
	}
}

// State returns the provider's lifecycle state.
func (vp *ValueProvider[T]) State() ProviderState {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	return vp.state
}

// Policy returns the provider's write policy.
func (vp *ValueProvider[T]) Policy() WritePolicy {
	return vp.policy
}

// Evaluate produces the provider's current value. For bindings this runs
// the expression under a fresh binding scope, re-subscribing its dependency
// set; a recursive re-entry of the same binding returns T's zero value.
func (vp *ValueProvider[T]) Evaluate() T {
	switch vp.kind {
	case kindStored:
		vp.mu.Lock()
		defer vp.mu.Unlock()
		return vp.value
	case kindUser:
		v := vp.getFn()
		vp.mu.Lock()
		vp.value = v
		vp.mu.Unlock()
		return v
	default:
		return vp.evaluateBinding()
	}
}

func (vp *ValueProvider[T]) evaluateBinding() T {
	gid := goroutineID()
	if vp.evalGID.Load() == gid {
		// Cyclic evaluation: the inner pass yields the default value.
		var zero T
		return zero
	}
	vp.evalMu.Lock()
	defer vp.evalMu.Unlock()
	vp.evalGID.Store(gid)
	defer vp.evalGID.Store(0)

	restore := enterScope(vp)
	defer restore()

	vp.clearDependencies()
	v := vp.expr()

	vp.mu.Lock()
	vp.value = v
	vp.mu.Unlock()
	return v
}

// current returns the last observed value without re-evaluating a binding.
func (vp *ValueProvider[T]) current() T {
	if vp.kind == kindUser {
		return vp.Evaluate()
	}
	vp.mu.Lock()
	defer vp.mu.Unlock()
	return vp.value
}

// Set stores a value in the provider and reports whether the stored value
// changed. Setting a binding provider is a programming error.
func (vp *ValueProvider[T]) Set(v T) bool {
	switch vp.kind {
	case kindStored:
		vp.mu.Lock()
		defer vp.mu.Unlock()
		if vp.value == v {
			return false
		}
		vp.value = v
		return true
	case kindUser:
		if vp.setFn == nil {
			return false
		}
		changed := vp.setFn(v)
		if changed {
			vp.mu.Lock()
			vp.value = v
			vp.mu.Unlock()
		}
		return changed
	default:
		panic("comp: set on a binding provider")
	}
}

func (vp *ValueProvider[T]) setState(from, to ProviderState) {
	if vp.state != from {
		panic(fmt.Sprintf("comp: illegal provider state transition %v -> %v", vp.state, to))
	}
	vp.state = to
}

// attach binds the provider to its property. Asserts the provider was
// detached.
func (vp *ValueProvider[T]) attach(p *Property[T]) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	vp.setState(Detached, Attaching)
	vp.target = p
	if vp.kind == kindBinding && !vp.deps.IsValid() {
		// A previously detached binding gets a fresh dependency tracker.
		vp.deps = NewTracker()
	}
	vp.state = Inactive
}

// detach unbinds the provider from its property and drops every dependency
// subscription. Valid from any attached state.
func (vp *ValueProvider[T]) detach() {
	vp.mu.Lock()
	if vp.state == Detached || vp.state == Detaching {
		vp.mu.Unlock()
		return
	}
	vp.state = Detaching
	vp.mu.Unlock()

	vp.clearDependencies()
	if vp.deps != nil {
		vp.deps.Close()
	}

	vp.mu.Lock()
	vp.target = nil
	vp.state = Detached
	vp.mu.Unlock()
}

// activate makes the provider the one answering evaluations and refreshes
// its value. The caller notifies the property afterwards.
func (vp *ValueProvider[T]) activate() {
	vp.mu.Lock()
	vp.setState(Inactive, Active)
	vp.mu.Unlock()
	vp.Evaluate()
}

// deactivate retires the provider from the active role and clears its
// dependency subscriptions.
func (vp *ValueProvider[T]) deactivate() {
	vp.mu.Lock()
	vp.setState(Active, Inactive)
	vp.mu.Unlock()
	vp.clearDependencies()
}

// clearDependencies disconnects the dependency subscriptions of a binding
// and unregisters it from the observed properties.
func (vp *ValueProvider[T]) clearDependencies() {
	if vp.kind != kindBinding {
		return
	}
	for _, dep := range vp.depProps.ToSlice() {
		dep.removeDependent(vp)
	}
	vp.depProps.Clear()
	vp.deps.Clear()
}

// observe implements bindingDependent: a property read during this
// binding's evaluation subscribes its changed signal to the owner's changed
// signal and records the dependency on both sides.
func (vp *ValueProvider[T]) observe(dep observedProperty) {
	owner := vp.ownerNode()
	if owner == nil {
		return
	}
	if !vp.depProps.Add(dep) {
		// Already subscribed during this evaluation.
		return
	}
	c := dep.changedSignal().ConnectSignal(owner.changedSignal())
	c.Bind(vp.deps)
	dep.addDependent(vp)
}

// ownerNode implements bindingDependent.
func (vp *ValueProvider[T]) ownerNode() observedProperty {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	if vp.target == nil {
		return nil
	}
	return vp.target
}

// removeSelf implements bindingDependent: a dependency property being
// destroyed removes this provider from its owner, reverting the owner to
// the previous provider in its stack.
func (vp *ValueProvider[T]) removeSelf() {
	vp.mu.Lock()
	target := vp.target
	vp.mu.Unlock()
	if target != nil {
		target.RemoveProvider(vp)
	}
}
