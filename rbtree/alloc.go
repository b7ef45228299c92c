package rbtree

import "fmt"

// Allocator is the allocation strategy of a tree. Every node handed out by
// Alloc is given back to Free exactly once, either when it is deleted or when
// the tree is cleared.
//
// Alloc has to return a zeroed node. If it cannot, it returns an error and
// the calling tree operation fails with ErrAllocation, leaving the tree
// unchanged.
type Allocator[K, V any] interface {
	Alloc() (*Node[K, V], error)
	Free(*Node[K, V])
}

// HeapAllocator takes nodes from the Go heap. It is the default allocator.
type HeapAllocator[K, V any] struct{}

// Alloc returns a fresh node and never fails.
func (HeapAllocator[K, V]) Alloc() (*Node[K, V], error) {
	return &Node[K, V]{}, nil
}

// Free drops the links of n, so a stale reference cannot keep a subtree alive.
func (HeapAllocator[K, V]) Free(n *Node[K, V]) {
	*n = Node[K, V]{}
}

// CountingAllocator keeps book of live nodes. It may be bounded by a budget of
// live nodes, which makes it useful for exercising allocation failures.
//
// Freeing a node twice or freeing a node not allocated by this allocator
// panics.
type CountingAllocator[K, V any] struct {
	budget int // max live nodes; 0 means unbounded
	live   map[*Node[K, V]]struct{}
	allocs int
	frees  int
}

// NewCountingAllocator creates an allocator which refuses to hold more than
// budget live nodes. A budget of 0 means no limit.
func NewCountingAllocator[K, V any](budget int) *CountingAllocator[K, V] {
	return &CountingAllocator[K, V]{
		budget: budget,
		live:   make(map[*Node[K, V]]struct{}),
	}
}

// Alloc returns a fresh node or an error if the budget is exhausted.
func (a *CountingAllocator[K, V]) Alloc() (*Node[K, V], error) {
	if a.budget > 0 && len(a.live) >= a.budget {
		return nil, fmt.Errorf("%w: budget of %d nodes exhausted", ErrAllocation, a.budget)
	}
	n := &Node[K, V]{}
	a.live[n] = struct{}{}
	a.allocs++
	return n, nil
}

// Free releases n.
func (a *CountingAllocator[K, V]) Free(n *Node[K, V]) {
	_, ok := a.live[n]
	assert(ok, "counting allocator: free of a node which is not live")
	delete(a.live, n)
	a.frees++
	*n = Node[K, V]{}
}

// Live returns the number of nodes allocated and not yet freed.
func (a *CountingAllocator[K, V]) Live() int { return len(a.live) }

// Allocs returns the number of successful allocations.
func (a *CountingAllocator[K, V]) Allocs() int { return a.allocs }

// Frees returns the number of released nodes.
func (a *CountingAllocator[K, V]) Frees() int { return a.frees }

// SetBudget changes the limit of live nodes. 0 means unbounded.
func (a *CountingAllocator[K, V]) SetBudget(budget int) { a.budget = budget }
