//go:build rbmap_debug

package rbtree

// Debug reports whether the package has been built with tag rbmap_debug.
// Debug builds validate the tree after every mutation and catch navigation
// beyond the ends of a tree.
const Debug = true
