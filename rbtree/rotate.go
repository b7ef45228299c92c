package rbtree

// Rotations restructure a subtree without changing the in-order sequence of
// its keys.
//
//	    x                y
//	   / \              / \
//	  a   y    <==>    x   c
//	     / \          / \
//	    b   c        a   b
//
// rotateLeft turns the left picture into the right one, rotateRight does the
// reverse.

func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	assert(y != nil, "rotateLeft requires a right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rotateRight(y *Node[K, V]) {
	x := y.left
	assert(x != nil, "rotateRight requires a left child")
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	t.replaceChild(y.parent, y, x)
	x.right = y
	y.parent = x
}

// replaceChild links n into the slot of old below parent (or as the root, if
// parent is nil). n may be nil.
func (t *Tree[K, V]) replaceChild(parent, old, n *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = n
	case parent.left == old:
		parent.left = n
	default:
		assert(parent.right == old, "replaceChild: old is not a child of parent")
		parent.right = n
	}
	if n != nil {
		n.parent = parent
	}
}
