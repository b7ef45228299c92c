package rbmap

import "github.com/npillmayer/rbmap/rbtree"

// Iterator is a position in a map: either an element or the end position past
// the largest key.
//
// Iterators are small values; moving an iterator returns a new one:
//
//	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
//		...
//	}
//
// An iterator remains valid until its element is erased. Advancing End() or
// retreating Begin() is a programming error; it is detected only in builds with
// tag rbmap_debug.
type Iterator[K, V any] struct {
	tree *rbtree.Tree[K, V]
	node *rbtree.Node[K, V] // nil for end
}

// IsEnd reports whether it is the end position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.node == nil
}

// Equal reports whether it and other denote the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.node == other.node
}

// Key returns the key of the element at it.
func (it Iterator[K, V]) Key() K {
	it.mustDeref()
	return it.node.Key()
}

// Value returns the value of the element at it.
func (it Iterator[K, V]) Value() V {
	it.mustDeref()
	return it.node.Value()
}

// ValueRef returns a pointer to the value of the element at it, allowing the
// value to be changed in place.
func (it Iterator[K, V]) ValueRef() *V {
	it.mustDeref()
	return it.node.ValueRef()
}

// Next returns an iterator to the following element, or End().
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.mustDeref()
	return Iterator[K, V]{tree: it.tree, node: it.node.Next()}
}

// Prev returns an iterator to the preceding element. Prev of End() is the
// element with the largest key.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.node == nil {
		return Iterator[K, V]{tree: it.tree, node: it.tree.Max()}
	}
	prev := it.node.Prev()
	if rbtree.Debug {
		assert(prev != nil, "rbmap: retreating iterator before first element")
	}
	return Iterator[K, V]{tree: it.tree, node: prev}
}

func (it Iterator[K, V]) mustDeref() {
	if rbtree.Debug {
		assert(it.node != nil, "rbmap: end iterator is not dereferenceable")
	}
}

// ReverseIterator is a position in a map for iteration in decreasing key order.
// It starts at RBegin(), the largest key, and ends at REnd(), the position
// before the smallest key.
type ReverseIterator[K, V any] struct {
	tree *rbtree.Tree[K, V]
	node *rbtree.Node[K, V] // nil for rend
}

// IsEnd reports whether r is the reverse end position.
func (r ReverseIterator[K, V]) IsEnd() bool {
	return r.node == nil
}

// Equal reports whether r and other denote the same position.
func (r ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return r.tree == other.tree && r.node == other.node
}

// Key returns the key of the element at r.
func (r ReverseIterator[K, V]) Key() K {
	r.mustDeref()
	return r.node.Key()
}

// Value returns the value of the element at r.
func (r ReverseIterator[K, V]) Value() V {
	r.mustDeref()
	return r.node.Value()
}

// ValueRef returns a pointer to the value of the element at r.
func (r ReverseIterator[K, V]) ValueRef() *V {
	r.mustDeref()
	return r.node.ValueRef()
}

// Next moves towards smaller keys.
func (r ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	r.mustDeref()
	return ReverseIterator[K, V]{tree: r.tree, node: r.node.Prev()}
}

// Prev moves towards larger keys. Prev of REnd() is the element with the
// smallest key.
func (r ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	if r.node == nil {
		return ReverseIterator[K, V]{tree: r.tree, node: r.tree.Min()}
	}
	next := r.node.Next()
	if rbtree.Debug {
		assert(next != nil, "rbmap: retreating reverse iterator before first element")
	}
	return ReverseIterator[K, V]{tree: r.tree, node: next}
}

// Base returns the forward iterator to the element following r's element in
// increasing key order, matching the usual reverse-iterator convention:
// RBegin().Base() is End() and REnd().Base() is Begin().
func (r ReverseIterator[K, V]) Base() Iterator[K, V] {
	if r.node == nil {
		return Iterator[K, V]{tree: r.tree, node: r.tree.Min()}
	}
	return Iterator[K, V]{tree: r.tree, node: r.node.Next()}
}

// Reverse returns the reverse iterator for the element preceding it, so that
// Reverse(it).Base() equals it.
func Reverse[K, V any](it Iterator[K, V]) ReverseIterator[K, V] {
	if it.node == nil {
		return ReverseIterator[K, V]{tree: it.tree, node: it.tree.Max()}
	}
	return ReverseIterator[K, V]{tree: it.tree, node: it.node.Prev()}
}

func (r ReverseIterator[K, V]) mustDeref() {
	if rbtree.Debug {
		assert(r.node != nil, "rbmap: reverse end iterator is not dereferenceable")
	}
}
