/*
Package textkeys derives map keys from text: it splits text into words,
extracts the text content of HTML, and provides key orders for strings which
respect language conventions.

Words are found at line-break opportunities as defined by UAX #14, using the
segmenter of package github.com/npillmayer/uax. Orders are strict weak orders
suitable for rbmap.NewFunc:

	m := rbmap.NewFunc[string, int](textkeys.Collation(language.German))

Strings which an order considers equivalent end up as a single map key.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textkeys

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbmap'
func tracer() tracing.Trace {
	return tracing.Select("rbmap")
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
var ErrIllegalArguments = errors.New("textkeys: illegal arguments")
