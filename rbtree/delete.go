package rbtree

// Delete removes node z from the tree and gives it back to the allocator.
// z has to be a node of t; it must not be used afterwards.
//
// All other nodes keep their identity: if z has two children, its in-order
// successor is relinked into z's position instead of moving key and value
// between nodes. Positions held by clients on other nodes therefore stay
// valid.
func (t *Tree[K, V]) Delete(z *Node[K, V]) {
	assert(z != nil, "Delete called with nil node")
	assert(t.size > 0, "Delete called on empty tree")
	var x, xparent *Node[K, V] // x replaces the removed node; it may be nil
	removed := z.color
	switch {
	case z.left == nil:
		x, xparent = z.right, z.parent
		t.replaceChild(z.parent, z, z.right)
	case z.right == nil:
		x, xparent = z.left, z.parent
		t.replaceChild(z.parent, z, z.left)
	default:
		y := z.right.min() // successor, has no left child
		removed = y.color
		x = y.right
		if y.parent == z {
			xparent = y
		} else {
			xparent = y.parent
			t.replaceChild(y.parent, y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replaceChild(z.parent, z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.size--
	tracer().Debugf("rbtree: deleted %v, size now %d", z.key, t.size)
	if removed == Black {
		t.deleteFixup(x, xparent)
	}
	t.cfg.Allocator.Free(z)
	if Debug {
		t.mustCheck("delete")
	}
}

// deleteFixup repairs the black-height deficit of the subtree at x, a child
// of parent. x may be nil, which is why parent is passed explicitly.
func (t *Tree[K, V]) deleteFixup(x, parent *Node[K, V]) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			w := parent.right // sibling, never nil while a deficit exists
			if isRed(w) {
				w.color, parent.color = Black, Red
				t.rotateLeft(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.right) { // inner red nephew: make it the outer one
				w.left.color, w.color = Black, Red
				t.rotateRight(w)
				w = parent.right
			}
			w.color, parent.color = parent.color, Black
			w.right.color = Black
			t.rotateLeft(parent)
			x, parent = t.root, nil
		} else {
			w := parent.left
			if isRed(w) {
				w.color, parent.color = Black, Red
				t.rotateRight(parent)
				w = parent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.left) {
				w.right.color, w.color = Black, Red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color, parent.color = parent.color, Black
			w.left.color = Black
			t.rotateRight(parent)
			x, parent = t.root, nil
		}
	}
	if x != nil {
		x.color = Black
	}
}
