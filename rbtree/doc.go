/*
Package rbtree provides the red-black tree engine underneath package rbmap.

The engine owns nodes, colors and links. It knows nothing about keys beyond
an injected ordering predicate, which has to be a strict weak order:

	Less(a, a) == false
	Less(a, b) implies !Less(b, a)
	Less(a, b) && Less(b, c) implies Less(a, c)

Two keys a and b are considered equivalent if neither is less than the other.
A tree never holds two equivalent keys.

Nodes carry non-owning parent links for in-order navigation without an
explicit stack. Absent children are represented by nil and count as BLACK
wherever colors are queried, which plays the role of the classic shared
nil-sentinel.

Invariants holding after every exported operation:
  - the root is BLACK,
  - no RED node has a RED child,
  - every path from a node down to a nil child has the same number of
    BLACK nodes,
  - in-order traversal yields keys in strictly increasing order.

Check verifies all of them and is meant to be used in tests. Building with
tag `rbmap_debug` runs Check after every mutation and panics on misuse of
end positions.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rbmap'
func tracer() tracing.Trace {
	return tracing.Select("rbmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
