/*
Package interval implements a mutable map from closed intervals to values,
supporting searches for all intervals overlapping a query interval.

The map is a red-black tree ordered lexicographically by (Lo, Hi). Every node
is augmented with the maximum upper bound found in its subtree, which lets
Search skip subtrees that cannot contain an overlapping interval.

A Map is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package interval

import (
	"cmp"
	"fmt"
)

// Interval is the closed interval [Lo, Hi]. Valid intervals have Lo ≤ Hi.
type Interval[T cmp.Ordered] struct {
	Lo, Hi T
}

// Closed creates the interval [lo, hi].
func Closed[T cmp.Ordered](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi}
}

// Point creates the interval [x, x].
func Point[T cmp.Ordered](x T) Interval[T] {
	return Interval[T]{Lo: x, Hi: x}
}

// IsValid reports whether Lo ≤ Hi.
func (iv Interval[T]) IsValid() bool {
	return cmp.Compare(iv.Lo, iv.Hi) <= 0
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return cmp.Compare(iv.Lo, other.Hi) <= 0 && cmp.Compare(iv.Hi, other.Lo) >= 0
}

// Contains reports whether x lies within iv.
func (iv Interval[T]) Contains(x T) bool {
	return cmp.Compare(iv.Lo, x) <= 0 && cmp.Compare(x, iv.Hi) <= 0
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v]", iv.Lo, iv.Hi)
}

// Compare orders intervals lexicographically, by Lo first and by Hi for
// intervals with equal lower bounds.
func Compare[T cmp.Ordered](a, b Interval[T]) int {
	if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
		return c
	}
	return cmp.Compare(a.Hi, b.Hi)
}

// Bound is the augmentation stored at every tree node: the maximum upper
// bound of all intervals in the node's subtree. Absent subtrees have a bound
// with OK = false.
type Bound[T cmp.Ordered] struct {
	Max T
	OK  bool
}

func (b Bound[T]) String() string {
	if !b.OK {
		return "-"
	}
	return fmt.Sprint(b.Max)
}

// maxAug maintains Bound values through the tree.
type maxAug[T cmp.Ordered, V any] struct{}

func (maxAug[T, V]) Zero() Bound[T] {
	return Bound[T]{}
}

func (maxAug[T, V]) FromNode(iv Interval[T], _ V) Bound[T] {
	return Bound[T]{Max: iv.Hi, OK: true}
}

func (maxAug[T, V]) Add(a, b Bound[T]) Bound[T] {
	switch {
	case !a.OK:
		return b
	case !b.OK:
		return a
	case cmp.Compare(b.Max, a.Max) > 0:
		return b
	}
	return a
}
