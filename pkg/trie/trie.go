package trie

import (
	"github.com/khalid-nowaf/seqtrie/pkg/stack"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Trie is a set of sequences of comparable elements stored as a prefix tree.
//
// Copies made with Clone share the node tree until one of them is modified,
// at which point the modified copy duplicates the tree first.
// A single Trie value must not be modified from more than one goroutine,
// but different clones of the same Trie can be.
type Trie[E comparable] struct {
	store  *storage[E]
	logger zerolog.Logger
}

// records an edge taken while walking down for Remove
type step[E comparable] struct {
	element E
	parent  *node[E]
}

// New creates an empty trie. The root is not terminating and has no children.
func New[E comparable](opts ...Option[E]) *Trie[E] {
	t := &Trie[E]{
		store:  newStorage(newNode[E]()),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}

func (t *Trie[E]) root() *node[E] {
	return t.store.root
}

// Clone returns a copy of t that is independent of it.
// The node tree is shared until either side is modified.
func (t *Trie[E]) Clone() *Trie[E] {
	return &Trie[E]{
		store:  t.store.share(),
		logger: t.logger,
	}
}

// Release gives up t's share of its node tree, and leaves t empty.
// Releasing clones that are no longer needed lets the remaining owner
// modify the tree in place instead of duplicating it.
func (t *Trie[E]) Release() {
	t.store.release()
	t.store = newStorage(newNode[E]())
}

// IsShared reports whether t's node tree is currently shared with another Trie.
func (t *Trie[E]) IsShared() bool {
	return t.store.isShared()
}

func (t *Trie[E]) IsEmpty() bool {
	return t.Count() == 0
}

// Count returns the number of stored sequences.
// It visits every node in the trie.
func (t *Trie[E]) Count() int {
	count := 0
	if t.root().terminates {
		count++
	}
	t.root().forEachStepDown(func(n *node[E]) {
		if n.terminates {
			count++
		}
	})
	return count
}

// Insert stores seq. Inserting a stored sequence again changes nothing,
// and inserting an empty sequence marks the root as terminating.
func (t *Trie[E]) Insert(seq []E) {
	t.ensureUnique()
	current := t.root()
	for _, e := range seq {
		current = current.attachChildIfNotExist(e)
	}
	current.terminates = true
}

// Contains reports whether seq itself is stored.
// Being a prefix of a stored sequence is not enough.
func (t *Trie[E]) Contains(seq []E) bool {
	last := t.root().walk(seq)
	return last != nil && last.terminates
}

// Remove deletes seq and prunes the nodes that no longer lead to any
// stored sequence.
// returns seq and true when it was stored, or nil and false otherwise
func (t *Trie[E]) Remove(seq []E) ([]E, bool) {
	t.ensureUnique()
	current := t.root()
	path := stack.New[step[E]](len(seq))
	for _, e := range seq {
		next := current.child(e)
		if next == nil {
			return nil, false
		}
		path.Push(step[E]{element: e, parent: current})
		current = next
	}

	if !current.terminates {
		return nil, false
	}
	current.terminates = false

	pruned := 0
	path.Drain(func(s step[E]) bool {
		if !current.isDeadWeight() {
			return false
		}
		s.parent.detachChild(s.element)
		current = s.parent
		pruned++
		return true
	})
	t.logger.Debug().Int("pruned", pruned).Int("length", len(seq)).Msg("removed sequence")

	return seq, true
}

// Collections returns every stored sequence.
func (t *Trie[E]) Collections() [][]E {
	return t.CollectionsWithPrefix(nil)
}

// CollectionsWithPrefix returns every stored sequence that starts with prefix,
// prefix included when it is stored. Each returned slice is freshly allocated.
// The order is a depth-first pre-order that depends on map iteration and
// is not stable between calls.
func (t *Trie[E]) CollectionsWithPrefix(prefix []E) [][]E {
	result := [][]E{}
	t.Walk(prefix, func(seq []E) bool {
		result = append(result, slices.Clone(seq))
		return true
	})
	return result
}

// Walk calls f for every stored sequence that starts with prefix,
// depth first, until f returns false.
// The slice passed to f is reused between calls, copy it to keep it.
func (t *Trie[E]) Walk(prefix []E, f func(seq []E) bool) {
	start := t.root().walk(prefix)
	if start == nil {
		return
	}
	path := make([]E, len(prefix), len(prefix)+8)
	copy(path, prefix)
	walkFrom(start, path, f)
}

// walkFrom visits n and its descendants, path spells n's position.
// returns false once f asked to stop
func walkFrom[E comparable](n *node[E], path []E, f func(seq []E) bool) bool {
	if n.terminates && !f(path) {
		return false
	}
	for e, child := range n.children {
		if !walkFrom(child, append(path, e), f) {
			return false
		}
	}
	return true
}
