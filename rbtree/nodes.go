package rbtree

// Color is the color of a tree node.
type Color uint8

const (
	// Red nodes are the ones which may be recolored freely during fixup.
	Red Color = iota
	// Black nodes count towards the black-height. Absent children are Black.
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is the storage unit of a tree. It holds a key/value pair inline.
//
// Only the parent-to-child links are owning; the parent link is a back
// reference for navigation. Clients receive nodes from tree operations and
// may read keys and read or write values, but must never change a key.
type Node[K, V any] struct {
	key    K
	value  V
	color  Color
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

// Key returns the key of n.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the value of n.
func (n *Node[K, V]) Value() V { return n.value }

// ValueRef returns a pointer to the value stored in n. It stays valid until n
// is deleted.
func (n *Node[K, V]) ValueRef() *V { return &n.value }

// SetValue replaces the value stored in n.
func (n *Node[K, V]) SetValue(v V) { n.value = v }

// Color returns the color of n. A nil node is Black.
func (n *Node[K, V]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

// Left returns the left child of n, or nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Parent returns the parent of n, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] { return n.parent }

// Next returns the in-order successor of n, or nil if n holds the maximum.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	x, p := n, n.parent
	for p != nil && x == p.right {
		x, p = p, p.parent
	}
	return p
}

// Prev returns the in-order predecessor of n, or nil if n holds the minimum.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	x, p := n, n.parent
	for p != nil && x == p.left {
		x, p = p, p.parent
	}
	return p
}

func (n *Node[K, V]) min() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) max() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// isRed treats absent children as Black.
func isRed[K, V any](n *Node[K, V]) bool {
	return n != nil && n.color == Red
}

func isBlack[K, V any](n *Node[K, V]) bool {
	return n == nil || n.color == Black
}
