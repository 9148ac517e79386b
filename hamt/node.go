package hamt

import (
	"slices"

	"github.com/npillmayer/assoc/bitutil"
)

// bucketLevel is the level at which nodes turn into collision buckets.
const bucketLevel = bitutil.MaxStages

// node is a trie node. keys, values and children are index-parallel and
// ordered by slot. Nodes reachable from a published Trie are never modified.
//
// Collision buckets (nodes at bucketLevel) have an empty mask and no
// children; keys and values form a plain list.
type node[V any] struct {
	mask     uint32
	keys     []string
	values   []V
	children []*node[V]
}

// rank returns the array position of an occupied slot.
func (n *node[V]) rank(slot uint) int {
	i := bitutil.Rank(n.mask, slot)
	assertThat(i < len(n.keys) && len(n.keys) == len(n.values) && len(n.keys) == len(n.children),
		"hamt: slot rank disagrees with node arrays")
	return i
}

// clone creates a shallow copy of n with private arrays.
func (n *node[V]) clone() *node[V] {
	return &node[V]{
		mask:     n.mask,
		keys:     slices.Clone(n.keys),
		values:   slices.Clone(n.values),
		children: slices.Clone(n.children),
	}
}

// with returns a copy of n with a new entry in the empty slot `slot`.
// n may be nil.
func (n *node[V]) with(slot uint, key string, value V) *node[V] {
	if n == nil {
		return &node[V]{
			mask:     bitutil.Set(0, slot),
			keys:     []string{key},
			values:   []V{value},
			children: []*node[V]{nil},
		}
	}
	i := bitutil.Rank(n.mask, slot)
	return &node[V]{
		mask:     bitutil.Set(n.mask, slot),
		keys:     slices.Insert(slices.Clone(n.keys), i, key),
		values:   slices.Insert(slices.Clone(n.values), i, value),
		children: slices.Insert(slices.Clone(n.children), i, nil),
	}
}

// without returns a copy of n with the entry at array position i removed,
// or nil if no entries remain.
func (n *node[V]) without(i int, slot uint) *node[V] {
	if len(n.keys) == 1 {
		return nil
	}
	return &node[V]{
		mask:     bitutil.Clear(n.mask, slot),
		keys:     slices.Concat(n.keys[:i], n.keys[i+1:]),
		values:   slices.Concat(n.values[:i], n.values[i+1:]),
		children: slices.Concat(n.children[:i], n.children[i+1:]),
	}
}

// --- Collision buckets -----------------------------------------------------

func (n *node[V]) bucketGet(key string) (V, bool) {
	if i := slices.Index(n.keys, key); i >= 0 {
		return n.values[i], true
	}
	var zero V
	return zero, false
}

func (n *node[V]) bucketSet(key string, value V) (*node[V], bool) {
	if n == nil {
		tracer().Debugf("hamt: new collision bucket for key %q", key)
		return &node[V]{keys: []string{key}, values: []V{value}}, true
	}
	c := &node[V]{keys: slices.Clone(n.keys), values: slices.Clone(n.values)}
	if i := slices.Index(c.keys, key); i >= 0 {
		c.values[i] = value
		return c, false
	}
	c.keys = append(c.keys, key)
	c.values = append(c.values, value)
	return c, true
}

func (n *node[V]) bucketDelete(key string) (*node[V], bool) {
	i := slices.Index(n.keys, key)
	if i < 0 {
		return n, false
	}
	if len(n.keys) == 1 {
		return nil, true
	}
	return &node[V]{
		keys:   slices.Concat(n.keys[:i], n.keys[i+1:]),
		values: slices.Concat(n.values[:i], n.values[i+1:]),
	}, true
}

// --- Recursive path copying ------------------------------------------------

// set returns a copy of the subtree n with value stored for key, and
// whether key has been added (rather than overwritten). n may be nil.
func set[V any](n *node[V], key string, hash uint32, level int, value V) (*node[V], bool) {
	if level == bucketLevel {
		return n.bucketSet(key, value)
	}
	slot := bitutil.Stage(hash, level)
	if n == nil || !bitutil.IsSet(n.mask, slot) {
		return n.with(slot, key, value), true
	}
	i := n.rank(slot)
	c := n.clone()
	if n.keys[i] == key {
		c.values[i] = value
		return c, false
	}
	child, added := set(n.children[i], key, hash, level+1, value)
	c.children[i] = child
	return c, added
}

// remove returns a copy of the subtree n without key, and whether key has
// been present. If key is absent, n itself is returned.
func remove[V any](n *node[V], key string, hash uint32, level int) (*node[V], bool) {
	if n == nil {
		return nil, false
	}
	if level == bucketLevel {
		return n.bucketDelete(key)
	}
	slot := bitutil.Stage(hash, level)
	if !bitutil.IsSet(n.mask, slot) {
		return n, false
	}
	i := n.rank(slot)
	if n.keys[i] != key {
		child, removed := remove(n.children[i], key, hash, level+1)
		if !removed {
			return n, false
		}
		c := n.clone()
		c.children[i] = child
		return c, true
	}
	if n.children[i] == nil {
		return n.without(i, slot), true
	}
	// refill the slot with an entry from its child subtree; every key in
	// there shares this slot's hash prefix
	k, v, child := pop(n.children[i], level+1)
	c := n.clone()
	c.keys[i], c.values[i], c.children[i] = k, v, child
	return c, true
}

// pop removes an arbitrary entry from the non-empty subtree n. It returns
// the entry and a copy of the remaining subtree (nil if it became empty).
func pop[V any](n *node[V], level int) (string, V, *node[V]) {
	if level == bucketLevel {
		last := len(n.keys) - 1
		k, v := n.keys[last], n.values[last]
		rest, _ := n.bucketDelete(k)
		return k, v, rest
	}
	k, v := n.keys[0], n.values[0]
	if n.children[0] == nil {
		return k, v, n.without(0, bitutil.Lowest(n.mask))
	}
	k2, v2, child := pop(n.children[0], level+1)
	c := n.clone()
	c.keys[0], c.values[0], c.children[0] = k2, v2, child
	return k, v, c
}

// each calls yield for every entry of the subtree, a node's own entry
// before the entries of the slot's child.
func (n *node[V]) each(yield func(string, V) bool) bool {
	if n == nil {
		return true
	}
	for i := range n.keys {
		if !yield(n.keys[i], n.values[i]) {
			return false
		}
		if i < len(n.children) && !n.children[i].each(yield) {
			return false
		}
	}
	return true
}
