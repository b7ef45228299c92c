package rbtree

// Insert adds a node for key with value, unless the tree already holds an
// equivalent key.
//
// It returns the node holding the key and whether a new node has been
// inserted. If an equivalent key is present, the tree is not modified and the
// existing value is kept. If the allocator fails, Insert returns an error
// wrapping ErrAllocation and the tree is unchanged.
func (t *Tree[K, V]) Insert(key K, value V) (*Node[K, V], bool, error) {
	var parent *Node[K, V]
	left := false
	for n := t.root; n != nil; {
		parent = n
		if t.cfg.Less(key, n.key) {
			n, left = n.left, true
		} else if t.cfg.Less(n.key, key) {
			n, left = n.right, false
		} else {
			return n, false, nil
		}
	}
	z, err := t.link(parent, left, key, value)
	if err != nil {
		return nil, false, err
	}
	return z, true, nil
}

// InsertHint is like Insert, but uses hint as a suggestion where key belongs:
// if key would be placed immediately before hint, the descent from the root is
// skipped. A nil hint stands for the position past the maximum.
//
// hint has to be a node of t or nil. A hint pointing elsewhere is a mere
// inefficiency, not an error.
func (t *Tree[K, V]) InsertHint(hint *Node[K, V], key K, value V) (*Node[K, V], bool, error) {
	less := t.cfg.Less
	if t.root == nil {
		return t.Insert(key, value)
	}
	var pred *Node[K, V]
	if hint == nil {
		pred = t.root.max()
	} else {
		if !less(key, hint.key) {
			return t.Insert(key, value)
		}
		pred = hint.Prev()
	}
	if pred != nil && !less(pred.key, key) {
		return t.Insert(key, value)
	}
	// pred < key < hint: key goes either right of pred or left of hint,
	// whichever slot is free.
	var z *Node[K, V]
	var err error
	if hint == nil || hint.left != nil {
		assert(pred != nil && pred.right == nil, "InsertHint: no free slot right of predecessor")
		z, err = t.link(pred, false, key, value)
	} else {
		z, err = t.link(hint, true, key, value)
	}
	if err != nil {
		return nil, false, err
	}
	return z, true, nil
}

// link allocates a node for key/value, hangs it below parent and restores
// the red-black properties.
func (t *Tree[K, V]) link(parent *Node[K, V], left bool, key K, value V) (*Node[K, V], error) {
	z, err := t.cfg.Allocator.Alloc()
	if err != nil {
		tracer().Errorf("rbtree: cannot allocate node: %v", err)
		return nil, err
	}
	assert(z != nil, "allocator returned nil node without error")
	z.key, z.value = key, value
	z.color = Red
	z.left, z.right = nil, nil
	z.parent = parent
	switch {
	case parent == nil:
		t.root = z
	case left:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++
	tracer().Debugf("rbtree: inserted %v, size now %d", key, t.size)
	t.insertFixup(z)
	if Debug {
		t.mustCheck("insert")
	}
	return z, nil
}

// insertFixup restores the "no red node with a red child" property after z
// has been linked as a red leaf. Recoloring keeps black-heights intact,
// rotations redistribute subtrees without changing them.
func (t *Tree[K, V]) insertFixup(z *Node[K, V]) {
	for isRed(z.parent) {
		p := z.parent
		g := p.parent // exists, as a red node is never the root
		if p == g.left {
			u := g.right
			if isRed(u) {
				p.color, u.color, g.color = Black, Black, Red
				z = g
				continue
			}
			if z == p.right { // inner child: make it an outer one first
				z = p
				t.rotateLeft(z)
				p = z.parent
			}
			p.color, g.color = Black, Red
			t.rotateRight(g)
		} else {
			u := g.left
			if isRed(u) {
				p.color, u.color, g.color = Black, Black, Red
				z = g
				continue
			}
			if z == p.left {
				z = p
				t.rotateRight(z)
				p = z.parent
			}
			p.color, g.color = Black, Red
			t.rotateLeft(g)
		}
	}
	t.root.color = Black
}
