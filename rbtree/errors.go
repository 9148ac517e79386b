package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvariant signals a violated structural invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
