/*
Package assoc is a small collection of associative containers.

Containers

The module offers three containers, each in its own package:

	omap      a mutable ordered map, balanced as a red-black tree, with a
	          caller-supplied total order on keys
	interval  a mutable map from closed intervals [lo, hi] to values, with
	          overlap search; a red-black tree augmented by the subtree
	          maximum of the upper bounds
	hamt      a persistent (immutable) map from strings to values, built as
	          a bitmap-indexed hash trie with path copying

Package rbtree holds the balancing engine shared by omap and interval. It is
parameterized by a comparator and by an optional augmentation monoid which is
kept up to date through every rotation, insertion and deletion. Package
bitutil holds the bit twiddling and hashing helpers used by the trie.

Package dump renders red-black trees and tries as coloured text, Graphviz
DOT or HTML for debugging purposes.

Concurrency

The ordered and interval maps are not synchronized. Clients have to
serialize all access if a map is shared between goroutines; this includes
iteration. Versions of a hamt.Trie never change after they have been
created, therefore any number of goroutines may read any number of versions
without coordination. hamt.Atom helps publishing successive versions to
concurrent readers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

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
package assoc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// AssocError is an error type for the assoc module.
type AssocError string

func (e AssocError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = AssocError("illegal arguments")
