package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy_Independence(t *testing.T) {
	t.Parallel()

	t1 := New[byte, int]()
	t1.Set(k("a"), 1)
	t1.Set(k("ab"), 2)

	t2 := t1.Copy()
	require.True(t, t1.Equal(t2))

	t2.Set(k("ab"), 20)
	t2.Set(k("new"), 3)
	_, err := t2.Del(k("a"))
	require.NoError(t, err)

	// the original never observes mutations of the copy
	val, err := t1.Get(k("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, val)
	assert.True(t, t1.Has(k("a")))
	assert.False(t, t1.Has(k("new")))
	assert.Equal(t, 2, t1.Len())
}

func TestCopy_SharesValues(t *testing.T) {
	t.Parallel()

	type box struct{ N int }

	t1 := New[byte, *box]()
	t1.Set(k("a"), &box{1})

	t2 := t1.Copy()

	v1, err := t1.Get(k("a"))
	require.NoError(t, err)
	v2, err := t2.Get(k("a"))
	require.NoError(t, err)

	assert.Same(t, v1, v2)
}

func TestDeepCopy_ClonesValues(t *testing.T) {
	t.Parallel()

	type box struct{ N int }

	t1 := New[byte, *box]()
	t1.Set(k("a"), &box{1})
	t1.Set(k("ab"), &box{2})

	copies := 0
	t2 := t1.DeepCopy(func(b *box) *box {
		copies++
		clone := *b
		return &clone
	})

	// the copy function runs exactly once per value
	assert.Equal(t, 2, copies)
	require.True(t, t1.Equal(t2))

	v2, err := t2.Get(k("a"))
	require.NoError(t, err)
	v2.N = 100

	v1, err := t1.Get(k("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, v1.N)
}

func TestDeepCopy_DeepChain(t *testing.T) {
	t.Parallel()

	// a chain deep enough that a naive recursive copy would be risky;
	// the worklist copy must not care about depth
	const depth = 100_000

	key := make([]byte, depth)
	for i := range key {
		key[i] = byte('a' + i%4)
	}

	t1 := New[byte, int]()
	t1.Set(key, 1)
	t1.Set(key[:depth/2], 2)

	t2 := t1.DeepCopy(nil)

	assert.Equal(t, 2, t2.Len())
	val, err := t2.Get(key)
	require.NoError(t, err)
	assert.Equal(t, 1, val)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t1 := New[byte, int]()
	t1.Set(k("a"), 1)
	t1.Set(k("b"), 2)
	t1.Set(k("c"), 3)

	// same pairs, different insertion order and representation history
	t2 := New[byte, int]()
	t2.Set(k("c"), 3)
	t2.Set(k("x"), 9)
	t2.Set(k("b"), 2)
	t2.Set(k("a"), 1)
	_, err := t2.Del(k("x"))
	require.NoError(t, err)

	assert.True(t, t1.Equal(t2))
	assert.True(t, t2.Equal(t1))

	t2.Set(k("b"), 20)
	assert.False(t, t1.Equal(t2))
}

func TestEqual_SizeMismatch(t *testing.T) {
	t.Parallel()

	t1 := New(Item[byte, int]{k("a"), 1})
	t2 := New[byte, int]()

	assert.False(t, t1.Equal(t2))
	assert.True(t, t2.Equal(New[byte, int]()))
}

func TestEqual_BranchVsValue(t *testing.T) {
	t.Parallel()

	// same reachable nodes, but "a" holds a value in only one of them
	t1 := New[byte, int]()
	t1.Set(k("a"), 1)
	t1.Set(k("ab"), 2)

	t2 := New[byte, int]()
	t2.Set(k("ab"), 2)
	t2.Set(k("aa"), 1)

	assert.False(t, t1.Equal(t2))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	t1 := New(Item[byte, int]{k("a"), 1})
	t2 := New(Item[byte, int]{k("a"), -1})

	abs := func(a, b int) bool {
		if a < 0 {
			a = -a
		}
		if b < 0 {
			b = -b
		}
		return a == b
	}

	assert.False(t, t1.Equal(t2))
	assert.True(t, t1.EqualFunc(t2, abs))
}

func TestCopy_Empty(t *testing.T) {
	t.Parallel()

	t1 := New[byte, int]()
	t2 := t1.Copy()

	assert.True(t, t2.Empty())
	assert.True(t, t1.Equal(t2))

	// copies are detached even when empty
	t2.Set(k("a"), 1)
	assert.True(t, t1.Empty())
}

func TestCopy_KeepsSorting(t *testing.T) {
	t.Parallel()

	t1 := New[byte, int]()
	t1.EnableSorting(nil)
	t1.Set(k("b"), 2)
	t1.Set(k("a"), 1)

	t2 := t1.Copy()

	keys, err := t2.Keys(nil)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{k("a"), k("b")}, keys)
}
