/*
Package rbtree provides the red-black balancing engine for the ordered
containers of this module.

The package is not meant to be used as a map by itself; packages omap and
interval wrap it with a friendlier API. The engine is parameterized by

  - a three-way comparator on keys, and
  - an optional augmentation monoid `E` which aggregates per-node data up the
    tree (e.g., the maximum upper bound of intervals in a subtree).

The augmentation is recomputed whenever pointers move: after an insertion
(from the new node up to the root), after each rotation (first the node that
moved down, then the node that took its place) and after a deletion (from the
parent of the spliced node up to the root). Clients configure no augmentation
by using NoAug as the extension type and leaving Config.Augmentation nil.

Trees use one sentinel node per tree. It is black, carries no key or value,
and stands in for every absent child and for the parent of the root. The
sentinel is never handed out to clients: Node accessors return nil instead.

Deleting a node with two children copies the key and value of its in-order
successor into the node's slot and unlinks the successor node instead.
Clients must not rely on node identity across deletions.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
