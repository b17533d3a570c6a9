package trie

import "sync"

// storage owns a node tree that may be shared by several Trie values.
// owners counts the Trie values pointing at it.
type storage[E comparable] struct {
	mu     sync.Mutex
	root   *node[E]
	owners int
}

func newStorage[E comparable](root *node[E]) *storage[E] {
	return &storage[E]{root: root, owners: 1}
}

func (s *storage[E]) share() *storage[E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners++
	return s
}

func (s *storage[E]) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owners == 0 {
		panic("[BUG] release: storage has no owners left")
	}
	s.owners--
}

func (s *storage[E]) isShared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owners > 1
}

// ensureUnique makes sure t is the only owner of its node tree.
// A shared tree is deep copied before t gives up its share, so the other
// owners never see a half copied tree.
// Must run before every write to the tree.
func (t *Trie[E]) ensureUnique() {
	shared := t.store
	shared.mu.Lock()
	if shared.owners <= 1 {
		shared.mu.Unlock()
		return
	}
	root, copied := shared.root.duplicate()
	shared.owners--
	shared.mu.Unlock()

	t.store = newStorage(root)
	t.logger.Debug().Int("nodes", copied).Msg("duplicated shared trie before write")
}
