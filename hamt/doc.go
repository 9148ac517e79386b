/*
Package hamt implements a persistent map from strings to values as a
bitmap-indexed hash trie.

A Trie is immutable. Set and Delete return a new version and leave the
receiver untouched; the new version shares every node not on the path from
the root to the modified slot with the old one ("path copying"). Versions can
therefore be read from any number of goroutines without coordination.

Keys are hashed to 32 bits. Every level of the trie consumes 5 bits of the
hash as a slot index 0…31, least significant bits first. A node keeps a
32-bit mask of occupied slots and three compacted, index-parallel arrays of
keys, values and optional child nodes. The array position of a slot is the
number of mask bits set below it.

Every slot holds a key/value pair. A key whose slot is taken by a different
key moves on to the slot's child node, one level down. After six levels 30
bits of the hash are used up; keys colliding on all of these bits are kept in
a collision bucket, a plain list compared by equality.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hamt

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
