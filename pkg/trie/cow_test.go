package trie

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestCloneSharesUntilWrite verifies that Clone does not copy anything by itself.
func TestCloneSharesUntilWrite(t *testing.T) {
	a := newWordTrie("a")
	b := a.Clone()

	assert.Same(t, a.root(), b.root(), "Clone should share the node tree")
	assert.True(t, a.IsShared())
	assert.True(t, b.IsShared())

	b.Insert([]rune("ab"))
	assert.NotSame(t, a.root(), b.root(), "Write should duplicate the tree for the writer")
	assert.False(t, a.IsShared())
	assert.False(t, b.IsShared())

	assert.Equal(t, []string{"a"}, toStrings(a.Collections()), "Original must not see the clone's insert")
	assert.ElementsMatch(t, []string{"a", "ab"}, toStrings(b.Collections()))
}

// TestCloneIndependence verifies both directions of value semantics for insert and remove.
func TestCloneIndependence(t *testing.T) {
	original := newWordTrie("cat", "car", "cart")
	clone := original.Clone()

	original.Remove([]rune("cart"))
	original.Insert([]rune("dog"))

	assert.Equal(t, 3, clone.Count())
	assert.True(t, clone.Contains([]rune("cart")))
	assert.False(t, clone.Contains([]rune("dog")))
	assert.ElementsMatch(t, []string{"cat", "car", "cart"}, toStrings(clone.Collections()))

	clone.Remove([]rune("cat"))
	assert.True(t, original.Contains([]rune("cat")), "Removing from the clone must not touch the original")
	assert.Equal(t, 3, original.Count())
}

// TestUniqueOwnerWritesInPlace verifies that an unshared tree is never duplicated.
func TestUniqueOwnerWritesInPlace(t *testing.T) {
	tr := newWordTrie("a")
	root := tr.root()
	tr.Insert([]rune("b"))
	tr.Remove([]rune("a"))
	assert.Same(t, root, tr.root())
}

// TestFailedRemoveStillDuplicates pins down that Remove runs copy-on-write
// before it knows whether the sequence is stored.
func TestFailedRemoveStillDuplicates(t *testing.T) {
	a := newWordTrie("a")
	b := a.Clone()

	_, ok := b.Remove([]rune("missing"))
	assert.False(t, ok)
	assert.NotSame(t, a.root(), b.root())
	assert.False(t, a.IsShared())
	assert.True(t, b.Contains([]rune("a")))
}

// TestRelease verifies that releasing the clones lets the owner write in place again.
func TestRelease(t *testing.T) {
	tr := newWordTrie("a")
	root := tr.root()

	snapshot := tr.Clone()
	assert.True(t, tr.IsShared())
	snapshot.Release()

	assert.False(t, tr.IsShared())
	assert.True(t, snapshot.IsEmpty(), "Released trie is empty")
	tr.Insert([]rune("b"))
	assert.Same(t, root, tr.root(), "No duplication once the only other owner is gone")

	snapshot.Insert([]rune("z"))
	assert.False(t, tr.Contains([]rune("z")), "A released trie can be reused on its own")
}

// TestChainedClones verifies that clones of clones all stay independent.
func TestChainedClones(t *testing.T) {
	a := newWordTrie("x")
	b := a.Clone()
	c := b.Clone()

	b.Insert([]rune("y"))
	assert.True(t, a.IsShared(), "a and c still share")
	c.Insert([]rune("z"))

	assert.Equal(t, []string{"x"}, toStrings(a.Collections()))
	assert.ElementsMatch(t, []string{"x", "y"}, toStrings(b.Collections()))
	assert.ElementsMatch(t, []string{"x", "z"}, toStrings(c.Collections()))
}

// TestConcurrentClonesWrite verifies that goroutines writing to their own clones
// of one tree end up with independent tries.
func TestConcurrentClonesWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := newWordTrie("shared", "base")
	workers := 8
	clones := make([]*Trie[rune], workers)
	for i := range clones {
		clones[i] = base.Clone()
	}

	var wg sync.WaitGroup
	for i, clone := range clones {
		wg.Add(1)
		go func(i int, clone *Trie[rune]) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				clone.Insert([]rune(fmt.Sprintf("w%d-%d", i, j)))
			}
			clone.Remove([]rune("base"))
		}(i, clone)
	}
	wg.Wait()

	assert.Equal(t, 2, base.Count(), "Base must not see any of the workers' writes")
	for i, clone := range clones {
		require.Equal(t, 51, clone.Count(), "clone %d", i)
		assert.True(t, clone.Contains([]rune("shared")))
		assert.False(t, clone.Contains([]rune("base")))
		assert.False(t, clone.Contains([]rune(fmt.Sprintf("w%d-0", (i+1)%workers))), "Clones must not see each other")
	}
}
