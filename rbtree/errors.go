package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrAllocation signals that the allocator could not provide a node.
	// The tree is unchanged when an operation fails with ErrAllocation.
	ErrAllocation = errors.New("rbtree: node allocation failed")
	// ErrInvariant is returned by Check for a violated tree invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
