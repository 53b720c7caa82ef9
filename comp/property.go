package comp

import (
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Property is a reactive cell. Its value comes from the active provider on
// its stack, and Changed fires whenever the observable value changes.
// Observers re-read the property on notification.
//
// A property always has at least one Keep provider as the floor of its
// stack; construction enforces it and RemoveProvider refuses to violate it.
type Property[T comparable] struct {
	// Changed is emitted after the observable value changes. Arity zero:
	// call Get on notification.
	Changed *ChangedSignal

	mu        sync.Mutex
	providers []*ValueProvider[T]
	active    *ValueProvider[T]
	last      T
	closed    bool

	// Providers of other properties whose bindings read this property;
	// notified on Close so they can remove themselves from their owners.
	dependents mapset.Set[bindingDependent]
}

// NewProperty returns a property whose floor provider stores initial.
func NewProperty[T comparable](initial T) *Property[T] {
	return NewPropertyWith(NewValue(initial))
}

// NewPropertyWith returns a property with floor as its first provider. The
// floor's write policy must be Keep.
func NewPropertyWith[T comparable](floor *ValueProvider[T]) *Property[T] {
	if floor.Policy() != Keep {
		panic("comp: property floor provider must have policy Keep")
	}
	p := &Property[T]{
		Changed:    NewSignal[Unit, Unit](),
		dependents: mapset.NewSet[bindingDependent](),
	}
	p.AddProvider(floor)
	return p
}

// Get returns the active provider's value. When called during a binding
// evaluation of another property, the read subscribes that binding to this
// property's Changed signal.
func (p *Property[T]) Get() T {
	if sc := currentScope(); sc != nil && sc.ownerNode() != observedProperty(p) {
		sc.observe(p)
	}

	p.mu.Lock()
	ap := p.active
	p.mu.Unlock()

	v := ap.Evaluate()

	p.mu.Lock()
	if p.active == ap {
		p.last = v
	}
	p.mu.Unlock()
	return v
}

// Set writes v to the property. Providers with policy Discard are removed
// first (a write always lands on a Keep provider), then the active provider
// stores the value, and Changed is emitted if the observable value moved.
func (p *Property[T]) Set(v T) {
	p.mu.Lock()
	discarded, reactivate := p.discardLocked()
	ap := p.active
	p.mu.Unlock()

	for _, d := range discarded {
		d.detach()
	}
	if reactivate {
		ap.activate()
	}

	ap.Set(v)
	p.notify()
}

// discardLocked removes all Discard providers from the stack. It returns
// the removed providers and whether the top remaining Keep provider needs
// re-activation. Caller holds p.mu.
func (p *Property[T]) discardLocked() (discarded []*ValueProvider[T], reactivate bool) {
	kept := p.providers[:0]
	for _, vp := range p.providers {
		if vp.Policy() == Discard {
			if vp == p.active {
				reactivate = true
			}
			discarded = append(discarded, vp)
			continue
		}
		kept = append(kept, vp)
	}
	p.providers = kept
	if len(discarded) > 0 {
		p.active = p.providers[len(p.providers)-1]
	}
	return discarded, reactivate
}

// AddProvider pushes vp on top of the stack and makes it the active
// provider. The previous active provider is deactivated; Changed fires if
// the observable value moved.
func (p *Property[T]) AddProvider(vp *ValueProvider[T]) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("comp: add provider on a closed property")
	}
	p.providers = append(p.providers, vp)
	vp.attach(p)
	prev := p.active
	p.active = vp
	p.mu.Unlock()

	// Activation evaluates and may reach other properties; keep the
	// property lock released around it.
	if prev != nil {
		prev.deactivate()
	}
	vp.activate()
	p.notify()
}

// RemoveProvider detaches vp from the stack. If vp was active, the topmost
// remaining provider becomes active and is re-evaluated. Removing the last
// Keep provider is a programming error.
func (p *Property[T]) RemoveProvider(vp *ValueProvider[T]) {
	p.mu.Lock()
	i := slices.Index(p.providers, vp)
	if i < 0 {
		p.mu.Unlock()
		return
	}
	if vp.Policy() == Keep && p.keepCountLocked() == 1 {
		p.mu.Unlock()
		panic("comp: removing the last Keep provider of a property")
	}
	p.providers = slices.Delete(p.providers, i, i+1)
	wasActive := vp == p.active
	var next *ValueProvider[T]
	if wasActive {
		next = p.providers[len(p.providers)-1]
		p.active = next
	}
	p.mu.Unlock()

	vp.detach()
	if next != nil {
		next.activate()
	}
	p.notify()
}

func (p *Property[T]) keepCountLocked() int {
	n := 0
	for _, vp := range p.providers {
		if vp.Policy() == Keep {
			n++
		}
	}
	return n
}

// Bind pushes a binding provider wrapping expr and returns it. The binding
// becomes the active provider; a later direct Set removes it.
func (p *Property[T]) Bind(expr func() T) *ValueProvider[T] {
	b := NewBinding(expr)
	p.AddProvider(b)
	return b
}

// notify emits Changed if the observable value differs from the last
// observed one. The active provider's value is re-read after reacquiring
// the property lock, so a provider swapped in concurrently is never
// reported stale.
func (p *Property[T]) notify() {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		ap := p.active
		p.mu.Unlock()

		v := ap.current()

		p.mu.Lock()
		if p.active != ap {
			p.mu.Unlock()
			continue
		}
		if v == p.last {
			p.mu.Unlock()
			return
		}
		p.last = v
		p.mu.Unlock()

		p.Changed.Emit(Unit{})
		return
	}
}

// Close destroys the property. Bindings of other properties that depend on
// it remove themselves from their owners (reverting those properties to the
// previous provider in their stacks), the Changed signal disconnects its
// slots, and every provider is detached. The property must not be used
// afterwards.
func (p *Property[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	provs := p.providers
	p.providers = nil
	p.mu.Unlock()

	for _, d := range p.dependents.ToSlice() {
		d.removeSelf()
	}
	p.dependents.Clear()

	p.Changed.Close()

	for i := len(provs) - 1; i >= 0; i-- {
		provs[i].detach()
	}
}

// changedSignal implements observedProperty.
func (p *Property[T]) changedSignal() *ChangedSignal {
	return p.Changed
}

// addDependent implements observedProperty.
func (p *Property[T]) addDependent(d bindingDependent) {
	p.dependents.Add(d)
}

// removeDependent implements observedProperty.
func (p *Property[T]) removeDependent(d bindingDependent) {
	p.dependents.Remove(d)
}

// State is a read-only property with a single Keep provider. The value is
// produced by the provider; Changed fires when the observable value
// changes.
type State[T comparable] struct {
	// Changed is the state's notification signal.
	Changed *ChangedSignal

	core *Property[T]
}

// NewState returns a read-only property around provider. The provider's
// write policy must be Keep.
func NewState[T comparable](provider *ValueProvider[T]) *State[T] {
	core := NewPropertyWith(provider)
	return &State[T]{Changed: core.Changed, core: core}
}

// Get returns the provider's current value.
func (s *State[T]) Get() T {
	return s.core.Get()
}

// Close destroys the state.
func (s *State[T]) Close() {
	s.core.Close()
}
