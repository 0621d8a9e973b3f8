package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMembership(t *testing.T) {
	s := NewSet(LShift, A, "a")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("lshift"))
	assert.True(t, s.Has(A))
	assert.False(t, s.Has(B))
	assert.True(t, s.HasShift())
	assert.False(t, NewSet(A).HasShift())
}

func TestZeroSet(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(A))
	assert.Empty(t, s.Difference(NewSet(A)))
	assert.Equal(t, []Key{A}, NewSet(A).Difference(s))
}

func TestDifference(t *testing.T) {
	prev := NewSet(LShift, A, B)
	curr := NewSet(LShift, B, C, RControl)

	assert.Equal(t, []Key{RControl, C}, curr.Difference(prev))
	assert.Equal(t, []Key{A}, prev.Difference(curr))
	assert.Empty(t, curr.Difference(curr))
}

func TestDifferenceDoesNotMutate(t *testing.T) {
	prev := NewSet(A)
	curr := NewSet(A, B)

	_ = curr.Difference(prev)
	_ = prev.Difference(curr)

	assert.Equal(t, []Key{A}, prev.Sorted())
	assert.Equal(t, []Key{A, B}, curr.Sorted())
}

func TestSortedPutsModifiersFirst(t *testing.T) {
	s := NewSet(Z, A, LShift, CapsLock, LCommand, Space)
	assert.Equal(t, []Key{CapsLock, LCommand, LShift, A, Space, Z}, s.Sorted())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsShift(RShift))
	assert.False(t, IsShift(LControl))
	assert.True(t, IsCapsLock("capslock"))
	assert.False(t, IsCapsLock(LShift))
	assert.True(t, IsModifier(ROption))
	assert.True(t, IsModifier(CapsLock))
	assert.False(t, IsModifier(F1))
	assert.False(t, IsModifier("VK_5D"))
	assert.True(t, LMeta.Equal("lmeta"))

	// Side-less names agree between shift detection and the glyph table
	for _, k := range []Key{"Shift", "Alt", "Ctrl", "Control", "Meta"} {
		assert.True(t, IsModifier(k), string(k))
	}
	assert.True(t, IsShift("Shift"))
	assert.True(t, NewSet("Shift").HasShift())
	assert.Equal(t, []Key{"Shift", A}, NewSet(A, "Shift").Sorted())
}
