/*
Package dump exports the internal structure of associative containers for
debugging purposes: red-black trees as coloured text, Graphviz DOT or HTML,
and versions of persistent tries as DOT.

Dumpers only read a container; they may be used on any tree or trie that is
not concurrently modified.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoTree is returned when a dumper is called with a nil tree.
var ErrNoTree = errors.New("dump: no tree to dump")
