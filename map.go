package rbmap

import (
	"cmp"
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/rbmap/formatter"
	"github.com/npillmayer/rbmap/rbtree"
)

// Map is an ordered map from keys K to values V.
//
// A Map has to be created by New, NewFunc or NewWithConfig. It is not safe for
// concurrent use.
type Map[K, V any] struct {
	tree     *rbtree.Tree[K, V]
	observer Observer[K]
}

// New creates an empty map for a key type with a natural order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc creates an empty map ordered by less, which has to be a strict weak
// order. less must not be nil.
func NewFunc[K, V any](less func(a, b K) bool) *Map[K, V] {
	m, err := NewWithConfig(rbtree.Config[K, V]{Less: less})
	assert(err == nil, "NewFunc requires an ordering predicate")
	return m
}

// NewWithConfig creates an empty map from a tree configuration, which allows
// clients to choose an allocator.
func NewWithConfig[K, V any](cfg rbtree.Config[K, V]) (*Map[K, V], error) {
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// KeyLess returns the ordering predicate of m.
func (m *Map[K, V]) KeyLess() func(a, b K) bool {
	return m.tree.Less()
}

// Len returns the number of keys in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// IsEmpty reports whether m holds no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m == nil || m.tree.IsEmpty()
}

// --- Element access --------------------------------------------------------

// Ref returns a pointer to the value stored for key. If key is not present,
// it is inserted with the zero value of V first. The pointer stays valid until
// key is erased.
//
// An error is returned only if a node could not be allocated.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	var zero V
	n, inserted, err := m.tree.Insert(key, zero)
	if err != nil {
		return nil, err
	}
	if inserted {
		m.notify(OpInsert, key)
	}
	return n.ValueRef(), nil
}

// At returns the value stored for key. If key is not present, At returns an
// error wrapping ErrOutOfRange.
func (m *Map[K, V]) At(key K) (V, error) {
	if n := m.tree.Find(key); n != nil {
		return n.Value(), nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrOutOfRange, key)
}

// Get returns the value stored for key and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.tree.Find(key); n != nil {
		return n.Value(), true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present in m.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Find(key) != nil
}

// --- Modifiers -------------------------------------------------------------

// Insert adds key with value, unless key is already present. It returns an
// iterator to the element holding key and whether an insertion took place.
// A present key keeps its value.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool, error) {
	n, inserted, err := m.tree.Insert(key, value)
	if err != nil {
		return m.End(), false, err
	}
	if inserted {
		m.notify(OpInsert, key)
	}
	return m.iter(n), inserted, nil
}

// InsertHint is like Insert, but hint suggests the position before which key
// belongs. With a correct hint the insertion skips the search from the root,
// which makes inserting sorted input cheap. A wrong hint is harmless.
//
// hint has to be an iterator of m.
func (m *Map[K, V]) InsertHint(hint Iterator[K, V], key K, value V) (Iterator[K, V], bool, error) {
	assert(hint.tree == m.tree, "InsertHint called with iterator of other map")
	n, inserted, err := m.tree.InsertHint(hint.node, key, value)
	if err != nil {
		return m.End(), false, err
	}
	if inserted {
		m.notify(OpInsert, key)
	}
	return m.iter(n), inserted, nil
}

// InsertAll inserts all pairs of seq, skipping keys already present. It
// returns the number of keys inserted. Insertion stops at the first error;
// pairs inserted before remain in the map.
//
// Input in increasing key order is inserted in amortized constant time per
// pair.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) (int, error) {
	count := 0
	var err error
	for k, v := range seq {
		var inserted bool
		if _, inserted, err = m.InsertHint(m.End(), k, v); err != nil {
			tracer().Errorf("rbmap: range insert stopped after %d keys: %v", count, err)
			break
		}
		if inserted {
			count++
		}
	}
	return count, err
}

// Erase removes key from m and returns the number of elements removed, which
// is 0 or 1.
func (m *Map[K, V]) Erase(key K) int {
	n := m.tree.Find(key)
	if n == nil {
		return 0
	}
	m.EraseAt(m.iter(n))
	return 1
}

// EraseAt removes the element at it and returns an iterator to the element
// following it. it must not be End(); it is invalid after the call.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	assert(it.tree == m.tree, "EraseAt called with iterator of other map")
	if rbtree.Debug {
		assert(it.node != nil, "EraseAt called with end iterator")
	}
	next := it.node.Next()
	key := it.node.Key()
	m.tree.Delete(it.node)
	m.notify(OpErase, key)
	return m.iter(next)
}

// EraseRange removes the elements in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	for !first.Equal(last) {
		first = m.EraseAt(first)
	}
	return last
}

// Clear removes all elements from m.
func (m *Map[K, V]) Clear() {
	if m.tree.IsEmpty() {
		return
	}
	m.tree.Clear()
	var zero K
	m.notify(OpClear, zero)
}

// Swap exchanges the contents of m and other in constant time. Iterators keep
// pointing to their elements, which now belong to the other map. Observers
// stay with their map.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	if m == other {
		return
	}
	m.tree, other.tree = other.tree, m.tree
	tracer().Debugf("rbmap: swapped maps of size %d and %d", m.Len(), other.Len())
	var zero K
	m.notify(OpSwap, zero)
	other.notify(OpSwap, zero)
}

// --- Lookup ----------------------------------------------------------------

// Find returns an iterator to the element for key, or End() if key is not
// present.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.iter(m.tree.Find(key))
}

// Count returns the number of elements for key, which is 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if m.tree.Find(key) == nil {
		return 0
	}
	return 1
}

// LowerBound returns an iterator to the first element with a key not less
// than key, or End().
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return m.iter(m.tree.LowerBound(key))
}

// UpperBound returns an iterator to the first element with a key greater than
// key, or End().
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return m.iter(m.tree.UpperBound(key))
}

// EqualRange returns the range [LowerBound(key), UpperBound(key)), which
// contains at most one element.
func (m *Map[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	lo, hi := m.tree.EqualRange(key)
	return m.iter(lo), m.iter(hi)
}

// --- Iteration -------------------------------------------------------------

// Begin returns an iterator to the element with the smallest key, or End() for
// an empty map.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.iter(m.tree.Min())
}

// End returns the position past the element with the largest key.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: m.tree}
}

// RBegin returns a reverse iterator to the element with the largest key.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{tree: m.tree, node: m.tree.Max()}
}

// REnd returns the reverse position past the element with the smallest key.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{tree: m.tree}
}

// All returns an iterator over all key/value pairs in increasing key order.
// The map must not be modified during iteration, except by writing values.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.tree.Min(); n != nil; n = n.Next() {
			if !yield(n.Key(), n.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over all key/value pairs in decreasing key
// order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.tree.Max(); n != nil; n = n.Prev() {
			if !yield(n.Key(), n.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in increasing order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in increasing key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns an iterator over the pairs with keys in [from, to), in
// increasing key order. If to is not greater than from, the range is empty.
func (m *Map[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !m.tree.Less()(from, to) {
			return
		}
		stop := m.tree.LowerBound(to)
		for n := m.tree.LowerBound(from); n != stop; n = n.Next() {
			if !yield(n.Key(), n.Value()) {
				return
			}
		}
	}
}

// --- Diagnostics -----------------------------------------------------------

// Check validates the internal tree structure of m. It visits every element
// and is meant for tests.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Dump writes the tree structure of m to w, for debugging purposes. cfg may be
// nil, resulting in plain output without width limit.
func (m *Map[K, V]) Dump(w io.Writer, cfg *formatter.Config) error {
	return formatter.Print(m.tree, w, cfg)
}

// WriteDot outputs the tree structure of m in Graphviz DOT format (for
// debugging purposes).
func (m *Map[K, V]) WriteDot(w io.Writer) error {
	return formatter.Dot(m.tree, w)
}

func (m *Map[K, V]) iter(n *rbtree.Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{tree: m.tree, node: n}
}
