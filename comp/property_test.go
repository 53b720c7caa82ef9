package comp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zsombi/libcomp/comp"
)

// changeCounter connects a counting observer to a property's changed signal.
func changeCounter(sig *comp.ChangedSignal) *int {
	counter := new(int)
	sig.Connect(func(comp.Unit) comp.Unit {
		*counter++
		return comp.Unit{}
	})
	return counter
}

func TestPropertyDefaultValue(t *testing.T) {
	p := comp.NewProperty(0)
	assert.Equal(t, 0, p.Get())

	q := comp.NewProperty("hello")
	assert.Equal(t, "hello", q.Get())
}

func TestPropertySetEmitsChanged(t *testing.T) {
	p := comp.NewProperty(false)
	changes := changeCounter(p.Changed)

	p.Set(false)
	assert.Equal(t, 0, *changes)

	p.Set(true)
	assert.Equal(t, 1, *changes)
	assert.True(t, p.Get())
}

func TestPropertyNoSpuriousChange(t *testing.T) {
	p := comp.NewProperty(3)
	changes := changeCounter(p.Changed)

	p.Set(3)
	p.Set(3)
	assert.Equal(t, 0, *changes)

	p.Set(4)
	p.Set(4)
	assert.Equal(t, 1, *changes)
}

func TestPropertyReadIdempotence(t *testing.T) {
	p := comp.NewProperty(11)
	assert.Equal(t, p.Get(), p.Get())

	q := comp.NewProperty(0)
	q.Bind(func() int { return p.Get() * 2 })
	assert.Equal(t, q.Get(), q.Get())
}

func TestAddProviderTakesOverValue(t *testing.T) {
	p := comp.NewProperty(1)
	changes := changeCounter(p.Changed)

	vp := comp.NewValue(2)
	p.AddProvider(vp)
	assert.Equal(t, 2, p.Get())
	assert.Equal(t, 1, *changes)
	assert.Equal(t, comp.Active, vp.State())
}

func TestRemoveProviderRevertsToPrevious(t *testing.T) {
	p := comp.NewProperty(1)
	vp := comp.NewValue(2)
	p.AddProvider(vp)
	changes := changeCounter(p.Changed)

	p.RemoveProvider(vp)
	assert.Equal(t, 1, p.Get())
	assert.Equal(t, 1, *changes)
	assert.Equal(t, comp.Detached, vp.State())
}

func TestRemoveBuriedProviderKeepsActive(t *testing.T) {
	p := comp.NewProperty(1)
	buried := comp.NewValue(2)
	top := comp.NewValue(3)
	p.AddProvider(buried)
	p.AddProvider(top)
	changes := changeCounter(p.Changed)

	p.RemoveProvider(buried)
	assert.Equal(t, 3, p.Get())
	assert.Equal(t, 0, *changes)
}

func TestRemoveUnknownProviderIsNoop(t *testing.T) {
	p := comp.NewProperty(1)
	assert.NotPanics(t, func() {
		p.RemoveProvider(comp.NewValue(9))
	})
	assert.Equal(t, 1, p.Get())
}

func TestRemoveLastKeepProviderPanics(t *testing.T) {
	floor := comp.NewValue(0)
	q := comp.NewPropertyWith(floor)
	q.Bind(func() int { return 1 })

	assert.Panics(t, func() {
		q.RemoveProvider(floor)
	})
}

func TestFloorMustBeKeep(t *testing.T) {
	assert.Panics(t, func() {
		comp.NewPropertyWith(comp.NewBinding(func() int { return 1 }))
	})
}

func TestUserProviderFloor(t *testing.T) {
	store := 5
	floor := comp.NewUserValue(comp.Keep,
		func() int { return store },
		func(v int) bool {
			if store == v {
				return false
			}
			store = v
			return true
		})

	p := comp.NewPropertyWith(floor)
	assert.Equal(t, 5, p.Get())

	changes := changeCounter(p.Changed)
	p.Set(6)
	assert.Equal(t, 6, store)
	assert.Equal(t, 6, p.Get())
	assert.Equal(t, 1, *changes)

	p.Set(6)
	assert.Equal(t, 1, *changes)
}

func TestUserProviderRequiresEvaluate(t *testing.T) {
	assert.Panics(t, func() {
		comp.NewUserValue[int](comp.Keep, nil, nil)
	})
}

func TestProviderStateTransitions(t *testing.T) {
	vp := comp.NewValue(1)
	assert.Equal(t, comp.Detached, vp.State())

	p := comp.NewPropertyWith(vp)
	assert.Equal(t, comp.Active, vp.State())

	top := comp.NewValue(2)
	p.AddProvider(top)
	assert.Equal(t, comp.Inactive, vp.State())
	assert.Equal(t, comp.Active, top.State())

	p.RemoveProvider(top)
	assert.Equal(t, comp.Active, vp.State())
	assert.Equal(t, comp.Detached, top.State())
}

func TestAttachTwicePanics(t *testing.T) {
	vp := comp.NewValue(1)
	comp.NewPropertyWith(vp)

	assert.Panics(t, func() {
		comp.NewPropertyWith(vp)
	})
}

func TestSetOnBindingProviderPanics(t *testing.T) {
	b := comp.NewBinding(func() int { return 1 })
	assert.Panics(t, func() {
		b.Set(2)
	})
}

func TestAddProviderOnClosedPropertyPanics(t *testing.T) {
	p := comp.NewProperty(1)
	p.Close()
	assert.Panics(t, func() {
		p.AddProvider(comp.NewValue(2))
	})
}

func TestStateReadsItsProvider(t *testing.T) {
	backing := 7
	st := comp.NewState(comp.NewUserValue(comp.Keep,
		func() int { return backing },
		nil))

	assert.Equal(t, 7, st.Get())

	backing = 8
	assert.Equal(t, 8, st.Get())

	st.Close()
}

func TestStateWithStoredValue(t *testing.T) {
	st := comp.NewState(comp.NewValue("fixed"))
	assert.Equal(t, "fixed", st.Get())
}
