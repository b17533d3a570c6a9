package trie

// node is one vertex of the trie.
type node[E comparable] struct {
	children   map[E]*node[E] // child per element, a missing key means no child
	terminates bool           // the path from the root to this node is a stored sequence
}

func newNode[E comparable]() *node[E] {
	return &node[E]{}
}

// returns the child reached through element e, or nil
func (n *node[E]) child(e E) *node[E] {
	return n.children[e]
}

// adds an empty child under element e if no child exists there yet.
// return the new added child or the existing one
func (n *node[E]) attachChildIfNotExist(e E) *node[E] {
	if existing := n.children[e]; existing != nil {
		return existing
	}
	if n.children == nil {
		n.children = make(map[E]*node[E])
	}
	child := newNode[E]()
	n.children[e] = child
	return child
}

// detachChild disconnects the child under element e,
// if there is no reference to it, the whole subtree will be GC'ed
func (n *node[E]) detachChild(e E) {
	if _, ok := n.children[e]; !ok {
		panic("[BUG] detachChild: no child to detach")
	}
	delete(n.children, e)
}

// checks if the node is a leaf (has no children).
func (n *node[E]) isLeaf() bool {
	return len(n.children) == 0
}

// a node that neither terminates a sequence nor leads to one
func (n *node[E]) isDeadWeight() bool {
	return !n.terminates && n.isLeaf()
}

// applies a function to each child of the node, in map order.
// will return the original node n
func (n *node[E]) forEachChild(f func(e E, child *node[E])) *node[E] {
	for e, child := range n.children {
		f(e, child)
	}
	return n
}

// recursively applies f to every descendant of the node (pre-order).
// the node itself is not visited
func (n *node[E]) forEachStepDown(f func(child *node[E])) *node[E] {
	n.forEachChild(func(_ E, child *node[E]) {
		f(child)
		child.forEachStepDown(f)
	})
	return n
}

// follows path from n and returns the node it ends at,
// or nil as soon as an element has no child
func (n *node[E]) walk(path []E) *node[E] {
	current := n
	for _, e := range path {
		current = current.child(e)
		if current == nil {
			return nil
		}
	}
	return current
}

// duplicate returns a deep copy of the subtree rooted at n,
// and the number of nodes copied
func (n *node[E]) duplicate() (*node[E], int) {
	copied := &node[E]{terminates: n.terminates}
	total := 1
	if len(n.children) > 0 {
		copied.children = make(map[E]*node[E], len(n.children))
	}
	n.forEachChild(func(e E, child *node[E]) {
		dup, count := child.duplicate()
		copied.children[e] = dup
		total += count
	})
	return copied, total
}
