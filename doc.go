/*
Package rbmap offers an ordered map: a mapping from keys to values which keeps
its keys sorted.

Ordered maps

A Map holds unique keys in the order defined by a comparator, a strict weak
order on keys. Two keys are the same map key if neither orders before the
other; there is no need for keys to be comparable with ==. Maps for types in
cmp.Ordered are created with New, maps for other key types with NewFunc:

	m := rbmap.New[string, int]()
	byLength := rbmap.NewFunc[string, int](func(a, b string) bool {
		return len(a) < len(b)
	})

Iteration always visits keys in increasing order (or decreasing order, for the
backward variants). Positions inside a map are represented by iterators,
which may be moved in both directions and are compared by Equal. The position
past the largest key is End(); it is never dereferenceable.

	for it := m.LowerBound("k"); !it.IsEnd(); it = it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

An iterator stays valid as long as the key it points at is not erased, no
matter how many other keys are inserted or erased in between.

_________________________________________________________________________

Implementation

Maps are backed by a red-black tree from package rbtree, giving the
following performance characteristics:

	Operation                  |   Map
	---------------------------+---------------
	Find, bounds, Insert       |   O(log n)
	Erase (by key or iterator) |   O(log n)
	Next / Prev                |   O(1) amortized
	Len, Begin, End, Swap      |   O(1)
	Iterate, Clear             |   O(n)

Nodes are obtained from a pluggable allocator (see rbtree.Allocator). If an
allocator fails, the operation returns an error wrapping ErrAllocation and the
map is left unchanged.

Maps are not safe for concurrent use. Clients which share a map between
goroutines have to synchronize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbmap

import (
	"github.com/npillmayer/rbmap/rbtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbmap'
func tracer() tracing.Trace {
	return tracing.Select("rbmap")
}

// MapError is an error type for the rbmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged by At for a key not present in the map. Lookups
// which may legitimately miss (Find, Count, Get) do not use it.
const ErrOutOfRange = MapError("key out of range")

// ErrAllocation is wrapped by errors of modifying operations if no node could
// be allocated. The map is unchanged in this case.
var ErrAllocation = rbtree.ErrAllocation

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
