package rbtree

import "fmt"

// Check validates the red-black invariants, the key order, the parent links
// and the size counter.
//
// This checker is intentionally strict and should be used in tests. It visits
// every node.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size %d)", ErrInvariant, count, t.size)
	}
	return t.checkOrder()
}

// checkNode returns the number of nodes and the black-height of the subtree
// at n, where the black-height counts n itself.
func (t *Tree[K, V]) checkNode(n *Node[K, V]) (count int, bh int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if n.color != Red && n.color != Black {
		return 0, 0, fmt.Errorf("%w: node %v has no valid color", ErrInvariant, n.key)
	}
	for _, child := range []*Node[K, V]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariant, n.key)
		}
		if n.color == Red && child.color == Red {
			return 0, 0, fmt.Errorf("%w: red node %v has red child %v", ErrInvariant, n.key, child.key)
		}
	}
	lcount, lbh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rcount, rbh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: non-uniform black-height at %v (%d != %d)", ErrInvariant, n.key, lbh, rbh)
	}
	if n.color == Black {
		lbh++
	}
	return lcount + rcount + 1, lbh, nil
}

func (t *Tree[K, V]) checkOrder() error {
	var prev *Node[K, V]
	var err error
	t.ForEach(func(n *Node[K, V]) bool {
		if prev != nil && !t.cfg.Less(prev.key, n.key) {
			err = fmt.Errorf("%w: keys out of order (%v before %v)", ErrInvariant, prev.key, n.key)
			return false
		}
		prev = n
		return true
	})
	return err
}

func (t *Tree[K, V]) mustCheck(op string) {
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("rbtree: after %s: %v", op, err))
	}
}
