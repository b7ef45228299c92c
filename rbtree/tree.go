package rbtree

// Tree is a red-black tree of key/value nodes, ordered by a strict weak order
// on keys.
//
// A Tree must be created with New. It is not safe for concurrent use.
type Tree[K, V any] struct {
	cfg  Config[K, V]
	root *Node[K, V]
	size int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Less returns the ordering predicate of the tree.
func (t *Tree[K, V]) Less() func(a, b K) bool {
	return t.cfg.Less
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path,
// 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	var h func(*Node[K, V]) int
	h = func(n *Node[K, V]) int {
		if n == nil {
			return 0
		}
		return 1 + max(h(n.left), h(n.right))
	}
	return h(t.root)
}

// BlackHeight returns the number of Black nodes on any path from the root
// down to a nil child, the root included.
func (t *Tree[K, V]) BlackHeight() int {
	if t == nil {
		return 0
	}
	bh := 0
	for n := t.root; n != nil; n = n.left {
		if n.color == Black {
			bh++
		}
	}
	return bh
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[K, V]) Min() *Node[K, V] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.min()
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[K, V]) Max() *Node[K, V] {
	if t.IsEmpty() {
		return nil
	}
	return t.root.max()
}

// Find returns the node with a key equivalent to key, or nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	n := t.LowerBound(key)
	if n == nil || t.cfg.Less(key, n.key) {
		return nil
	}
	return n
}

// LowerBound returns the first node with a key not less than key, or nil.
func (t *Tree[K, V]) LowerBound(key K) *Node[K, V] {
	var bound *Node[K, V]
	for n := t.Root(); n != nil; {
		if t.cfg.Less(n.key, key) {
			n = n.right
		} else {
			bound = n
			n = n.left
		}
	}
	return bound
}

// UpperBound returns the first node with a key greater than key, or nil.
func (t *Tree[K, V]) UpperBound(key K) *Node[K, V] {
	var bound *Node[K, V]
	for n := t.Root(); n != nil; {
		if t.cfg.Less(key, n.key) {
			bound = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return bound
}

// EqualRange returns the half-open range [lo, hi) of nodes with keys
// equivalent to key. As keys are unique, the range holds at most one node.
// A nil bound means "past the maximum".
func (t *Tree[K, V]) EqualRange(key K) (lo, hi *Node[K, V]) {
	for n := t.Root(); n != nil; {
		switch {
		case t.cfg.Less(n.key, key):
			n = n.right
		case t.cfg.Less(key, n.key):
			hi = n
			n = n.left
		default:
			return n, n.Next()
		}
	}
	return hi, hi
}

// ForEach visits all nodes in key order.
//
// Iteration stops early if callback returns false. The callback must not
// insert or delete nodes.
func (t *Tree[K, V]) ForEach(fn func(n *Node[K, V]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for n := t.root.min(); n != nil; n = n.Next() {
		if !fn(n) {
			return
		}
	}
}

// Clear deletes all nodes, giving each back to the allocator.
func (t *Tree[K, V]) Clear() {
	if t.IsEmpty() {
		return
	}
	var release func(*Node[K, V])
	release = func(n *Node[K, V]) {
		if n == nil {
			return
		}
		release(n.left)
		release(n.right)
		t.cfg.Allocator.Free(n)
	}
	release(t.root)
	tracer().Debugf("rbtree: cleared %d nodes", t.size)
	t.root = nil
	t.size = 0
}

// Swap exchanges the contents of t and other, including ordering predicate
// and allocator. It runs in constant time.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	*t, *other = *other, *t
}
