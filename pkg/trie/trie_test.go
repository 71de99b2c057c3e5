package trie

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies that a new node is an empty, non terminal root.
func TestNew(t *testing.T) {
	root := New()
	assert.NotNil(t, root, "Trie should not be nil upon creation")
	assert.True(t, root.IsLeaf(), "A new root should have no children")
	assert.False(t, root.IsTerminal(), "A new root should not be terminal")
	assert.Equal(t, 1, root.Size())
}

// TestAttachChild verifies that attaching returns the existing child when there is one.
func TestAttachChild(t *testing.T) {
	root := New()
	child := root.AttachChild('a')
	again := root.AttachChild('a')

	assert.Same(t, child, again, "Should return the existing child")
	assert.Same(t, child, root.Child('a'))
	assert.Nil(t, root.Child('b'), "Should return nil for a missing edge")
	assert.Equal(t, 1, root.Len())
}

func TestDetachChild(t *testing.T) {
	root := New()
	root.AttachChild('a').AttachChild('b')
	root.AttachChild('c')

	root.DetachChild('a')
	assert.Nil(t, root.Child('a'))
	assert.Equal(t, 1, root.Len())

	root.DetachChild('c')
	assert.True(t, root.IsLeaf())
}

func TestInsert(t *testing.T) {
	root := New()

	assert.True(t, root.Insert([]rune("hello")), "First insert should add the key")
	assert.False(t, root.Insert([]rune("hello")), "Second insert should be a no-op")
	assert.Equal(t, 6, root.Size(), "Re-inserting must not create nodes")

	assert.True(t, root.Insert([]rune("hell")), "A prefix of a stored key is a new key")
	assert.Equal(t, 6, root.Size(), "A prefix reuses the existing path")

	assert.False(t, root.Insert(nil), "The empty key is never stored")
	assert.False(t, root.IsTerminal())
}

func TestContainsAndDescend(t *testing.T) {
	root := New()
	root.Insert([]rune("hello"))

	assert.True(t, root.Contains([]rune("hello")))
	assert.False(t, root.Contains([]rune("hell")), "A path is not a key unless inserted")
	assert.False(t, root.Contains([]rune("help")))
	assert.False(t, root.Contains(nil))

	node := root.Descend([]rune("hel"))
	require.NotNil(t, node)
	assert.Equal(t, 1, node.Len())
	assert.Nil(t, root.Descend([]rune("hex")))
	assert.Same(t, root, root.Descend(nil))
}

// TestRemoveUniquePath removes a key whose path is shared with nothing else.
func TestRemoveUniquePath(t *testing.T) {
	root := New()
	root.Insert([]rune("hello"))

	pruned, ok := root.Remove([]rune("hello"))
	assert.True(t, ok)
	assert.Equal(t, 5, pruned)
	assert.Equal(t, 1, root.Size(), "Only the root should remain")
	assert.True(t, root.IsLeaf())
}

// TestRemovePrefixKey removes a key that is a prefix of another stored key.
func TestRemovePrefixKey(t *testing.T) {
	root := New()
	root.Insert([]rune("hell"))
	root.Insert([]rune("hello"))

	pruned, ok := root.Remove([]rune("hell"))
	assert.True(t, ok)
	assert.Equal(t, 0, pruned, "Only the terminal flag should clear")
	assert.Equal(t, 6, root.Size())
	assert.False(t, root.Contains([]rune("hell")))
	assert.True(t, root.Contains([]rune("hello")))
}

// TestRemoveSharedPath removes a key that diverges from other keys part way.
func TestRemoveSharedPath(t *testing.T) {
	root := New()
	root.Insert([]rune("hell"))
	root.Insert([]rune("hello"))
	root.Insert([]rune("helium"))

	pruned, ok := root.Remove([]rune("helium"))
	assert.True(t, ok)
	assert.Equal(t, 3, pruned, "Only the nodes below the divergence point go")
	assert.ElementsMatch(t, [][]rune{[]rune("hell"), []rune("hello")}, root.Keys(nil))

	pruned, ok = root.Remove([]rune("hello"))
	assert.True(t, ok)
	assert.Equal(t, 1, pruned, "Pruning stops at a terminal node")
	assert.Equal(t, 5, root.Size())
}

func TestRemoveMissing(t *testing.T) {
	root := New()
	root.Insert([]rune("hello"))

	for _, key := range []string{"", "help", "hell", "hello!", "world"} {
		pruned, ok := root.Remove([]rune(key))
		assert.False(t, ok, "Removing %q should fail", key)
		assert.Equal(t, 0, pruned)
	}
	assert.Equal(t, 6, root.Size(), "A failed removal must not change the trie")
}

// TestForEachChild checks that ForEachChild iterates over all children in ascending order.
func TestForEachChild(t *testing.T) {
	root := New()
	root.AttachChild('c')
	root.AttachChild('a')
	root.AttachChild('b')

	visited := ""
	returned := root.ForEachChild(func(r rune, child *Node) {
		assert.NotNil(t, child)
		visited += string(r)
	})
	assert.Equal(t, "abc", visited)
	assert.Same(t, root, returned)
}

// TestForEachStepDown verifies the traversal order and the keys passed along.
func TestForEachStepDown(t *testing.T) {
	root := New()
	for _, key := range []string{"ba", "a", "bc", "ab"} {
		root.Insert([]rune(key))
	}

	visited := []string{}
	root.ForEachStepDown(nil, func(key []rune, _ *Node) bool {
		visited = append(visited, string(key))
		return true
	})
	assert.Equal(t, []string{"", "a", "ab", "b", "ba", "bc"}, visited)
}

func TestForEachKeyStops(t *testing.T) {
	root := New()
	for _, key := range []string{"a", "b", "c"} {
		root.Insert([]rune(key))
	}

	seen := 0
	root.ForEachKey(nil, func([]rune) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

func TestKeysWithPrefix(t *testing.T) {
	root := New()
	for _, key := range []string{"hell", "hello", "helium", "world"} {
		root.Insert([]rune(key))
	}

	node := root.Descend([]rune("hel"))
	require.NotNil(t, node)

	keys := []string{}
	for _, key := range node.Keys([]rune("hel")) {
		keys = append(keys, string(key))
	}
	assert.Equal(t, []string{"helium", "hell", "hello"}, keys)
	assert.Equal(t, 3, node.CountKeys())
	assert.Equal(t, 4, root.CountKeys())
	assert.Equal(t, "helium\nhell\nhello\nworld\n", root.String())
}

func TestUnicodeKeys(t *testing.T) {
	root := New()
	root.Insert([]rune("straße"))
	root.Insert([]rune("stra"))

	assert.True(t, root.Contains([]rune("straße")))
	pruned, ok := root.Remove([]rune("straße"))
	assert.True(t, ok)
	assert.Equal(t, 2, pruned, "One node per rune, not per byte")
	assert.Equal(t, "stra\n", root.String())
}

func BenchmarkInsert(b *testing.B) {
	keys := generateRandomKeys(b.N, 3, 12)
	root := New()
	b.ResetTimer()

	for _, key := range keys {
		root.Insert(key)
	}
}

func BenchmarkContains(b *testing.B) {
	keys := generateRandomKeys(10000, 3, 12)
	root := New()
	for _, key := range keys {
		root.Insert(key)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Contains(keys[rand.Intn(len(keys))])
	}
}

func generateRandomKeys(total int, minLen int, maxLen int) [][]rune {
	keys := make([][]rune, 0, total)
	for i := 0; i < total; i++ {
		key := make([]rune, rand.Intn(maxLen-minLen+1)+minLen)
		for j := range key {
			key[j] = rune('a' + rand.Intn(26))
		}
		keys = append(keys, key)
	}
	return keys
}
