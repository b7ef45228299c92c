//go:build !rbmap_debug

package rbtree

// Debug reports whether the package has been built with tag rbmap_debug.
const Debug = false
