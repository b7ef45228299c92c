package rbtree

import "fmt"

// Config configures a red-black tree.
type Config[K, V any] struct {
	// Less is the ordering predicate for keys. It is required and has to be
	// a strict weak order.
	Less func(a, b K) bool
	// Allocator provides and releases nodes. If nil, nodes are taken from
	// the Go heap.
	Allocator Allocator[K, V]
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[K, V]{}
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: ordering predicate is required", ErrInvalidConfig)
	}
	return nil
}
