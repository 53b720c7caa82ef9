package comp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zsombi/libcomp/comp"
)

func TestBindingPropagation(t *testing.T) {
	p := comp.NewProperty(0)
	q := comp.NewProperty(0)

	p.Bind(func() int { return q.Get() + 1 })
	assert.Equal(t, 1, p.Get())

	changes := changeCounter(p.Changed)
	q.Set(10)
	assert.Equal(t, 11, p.Get())
	assert.Equal(t, 1, *changes)
}

func TestWriterDiscardsBinding(t *testing.T) {
	p := comp.NewProperty(0)
	q := comp.NewProperty(0)

	b := p.Bind(func() int { return q.Get() + 1 })
	q.Set(10)
	require.Equal(t, 11, p.Get())

	p.Set(99)
	assert.Equal(t, 99, p.Get())
	assert.Equal(t, comp.Detached, b.State())

	// The discarded binding no longer follows its dependency.
	q.Set(20)
	assert.Equal(t, 99, p.Get())
}

func TestBindingChain(t *testing.T) {
	a := comp.NewProperty(1)
	b := comp.NewProperty(0)
	c := comp.NewProperty(0)

	//  A -> B -> C
	b.Bind(func() int { return a.Get() * 2 })
	c.Bind(func() int { return b.Get() + 1 })

	assert.Equal(t, 2, b.Get())
	assert.Equal(t, 3, c.Get())

	a.Set(5)
	assert.Equal(t, 10, b.Get())
	assert.Equal(t, 11, c.Get())
}

func TestBindingMultipleDependencies(t *testing.T) {
	first := comp.NewProperty("hello")
	second := comp.NewProperty("world")
	joined := comp.NewProperty("")

	joined.Bind(func() string { return first.Get() + " " + second.Get() })
	assert.Equal(t, "hello world", joined.Get())

	changes := changeCounter(joined.Changed)
	first.Set("bye")
	assert.Equal(t, "bye world", joined.Get())
	assert.GreaterOrEqual(t, *changes, 1)

	second.Set("moon")
	assert.Equal(t, "bye moon", joined.Get())
}

func TestDependencyCloseRevertsBinding(t *testing.T) {
	p := comp.NewProperty(0)
	q := comp.NewProperty(0)

	p.Bind(func() int { return q.Get() + 1 })
	q.Set(10)
	require.Equal(t, 11, p.Get())

	changes := changeCounter(p.Changed)
	q.Close()

	// The binding removed itself; p reverts to its floor provider.
	assert.Equal(t, 0, p.Get())
	assert.Equal(t, 1, *changes)
}

func TestRebindReplacesDependencySet(t *testing.T) {
	p := comp.NewProperty(0)
	q := comp.NewProperty(1)
	r := comp.NewProperty(2)

	p.Bind(func() int { return q.Get() })
	require.Equal(t, 1, p.Get())

	p.Bind(func() int { return r.Get() })
	require.Equal(t, 2, p.Get())

	// Writes to q still reach the first binding only while it is active;
	// the second binding shadows it, so p follows r.
	r.Set(20)
	assert.Equal(t, 20, p.Get())
}

func TestCyclicBindingYieldsDefault(t *testing.T) {
	p := comp.NewProperty(10)

	// The self-referencing evaluation is suppressed: the inner read sees
	// the zero value instead of recursing.
	p.Bind(func() int { return p.Get() + 1 })
	assert.Equal(t, 1, p.Get())
}

func TestMutuallyCyclicBindings(t *testing.T) {
	p := comp.NewProperty(0)
	q := comp.NewProperty(0)

	p.Bind(func() int { return q.Get() + 1 })
	assert.NotPanics(t, func() {
		q.Bind(func() int { return p.Get() + 1 })
	})

	// Both settle without recursing forever.
	_ = p.Get()
	_ = q.Get()
}

func TestBindingScopeIsPerGoroutine(t *testing.T) {
	p := comp.NewProperty(0)
	q := comp.NewProperty(0)
	r := comp.NewProperty(0)

	started := make(chan struct{})
	var startOnce sync.Once
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Bind(func() int {
			startOnce.Do(func() { close(started) })
			<-release
			return q.Get() + 1
		})
	}()

	// While p's binding evaluates on the other goroutine, reads here must
	// not register as its dependencies.
	<-started
	_ = r.Get()
	close(release)
	wg.Wait()

	changes := changeCounter(p.Changed)
	r.Set(5)
	assert.Equal(t, 0, *changes)

	q.Set(7)
	assert.Equal(t, 1, *changes)
	assert.Equal(t, 8, p.Get())
}

func TestBindingAcrossTypes(t *testing.T) {
	count := comp.NewProperty(3)
	label := comp.NewProperty("")

	label.Bind(func() string {
		if count.Get() > 1 {
			return "many"
		}
		return "one"
	})
	assert.Equal(t, "many", label.Get())

	count.Set(1)
	assert.Equal(t, "one", label.Get())
}

func TestBindingStackReverts(t *testing.T) {
	p := comp.NewProperty(1)
	q := comp.NewProperty(5)

	b1 := p.Bind(func() int { return q.Get() })
	b2 := p.Bind(func() int { return q.Get() * 10 })
	require.Equal(t, 50, p.Get())

	p.RemoveProvider(b2)
	assert.Equal(t, 5, p.Get())
	assert.Equal(t, comp.Active, b1.State())

	p.RemoveProvider(b1)
	assert.Equal(t, 1, p.Get())
}

func TestConcurrentSetAndGetThroughBinding(t *testing.T) {
	src := comp.NewProperty(0)
	dst := comp.NewProperty(0)
	dst.Bind(func() int { return src.Get() + 1 })

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= 200; i++ {
			src.Set(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			v := dst.Get()
			assert.GreaterOrEqual(t, v, 1)
		}
	}()
	wg.Wait()

	assert.Equal(t, 201, dst.Get())
}
