package comp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zsombi/libcomp/comp"
)

func TestRefLifetime(t *testing.T) {
	ref := comp.NewRef(42)
	require.NotNil(t, ref.Value())
	assert.Equal(t, 42, *ref.Value())

	weak := ref.Weak()
	v, ok := weak.Get()
	require.True(t, ok)
	assert.Equal(t, 42, *v)

	ref.Release()
	assert.Nil(t, ref.Value())
	_, ok = weak.Get()
	assert.False(t, ok)
	assert.False(t, weak.IsValid())
}

func TestRefReleaseIsIdempotent(t *testing.T) {
	ref := comp.NewRef("x")
	clone := ref.Clone()

	ref.Release()
	ref.Release()

	// The clone still owns a share.
	v, ok := clone.Weak().Get()
	require.True(t, ok)
	assert.Equal(t, "x", *v)

	clone.Release()
	_, ok = clone.Weak().Get()
	assert.False(t, ok)
}

func TestRefCloneSharesValue(t *testing.T) {
	type box struct{ n int }

	ref := comp.NewRef(box{n: 1})
	clone := ref.Clone()
	clone.Value().n = 5

	assert.Equal(t, 5, ref.Value().n)
}

func TestZeroWeakRefIsInvalid(t *testing.T) {
	var weak comp.WeakRef[int]
	_, ok := weak.Get()
	assert.False(t, ok)
	assert.False(t, weak.IsValid())
}
