/*
Package formatter renders the structure of red-black trees for debugging.

Two renderings are offered: Print writes a sideways drawing of a tree to a
console, with red nodes in red if the output device supports colors, and Dot
writes a Graphviz digraph:

	formatter.Print(tree, os.Stdout, formatter.ConfigFromTerminal())
	formatter.Dot(tree, dotfile)   // dot -Tsvg -o tree.svg tree.dot

Node labels are produced with the %v verb of package fmt for keys and values.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbmap'
func tracer() tracing.Trace {
	return tracing.Select("rbmap")
}
