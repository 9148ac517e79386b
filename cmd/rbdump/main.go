/*
Command rbdump loads a container from a YAML fixture and dumps its internal
structure as text, Graphviz DOT or HTML.

	rbdump --kind interval --format dot fixture.yaml | dot -Tsvg > tree.svg

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/dump"
	"github.com/npillmayer/assoc/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type flags struct {
	format  string
	kind    string
	plain   bool
	width   int
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:   "rbdump [flags] fixture.yaml",
		Short: "Dump the internal structure of ordered maps, interval maps and tries",
		Args:  cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gtrace.CoreTracer = gologadapter.New()
			if fl.verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), fl, args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&fl.format, "format", "f", "text", "output format: text|dot|html")
	cmd.Flags().StringVarP(&fl.kind, "kind", "k", "ordered", "container kind: ordered|interval|trie")
	cmd.Flags().BoolVar(&fl.plain, "plain", false, "no colours in text output")
	cmd.Flags().IntVarP(&fl.width, "width", "w", 0, "max label width (0 = from terminal)")
	cmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "trace progress")
	return cmd
}

func run(w io.Writer, fl *flags, path string) error {
	f, err := loadFixture(path)
	if err != nil {
		return err
	}
	opts := dump.ConsoleOptions()
	if fl.width > 0 {
		opts.Width = fl.width
	}
	if fl.plain {
		opts.Colors = map[rbtree.Color]*color.Color{}
	}
	assoc.T().Infof("rbdump: dumping %s fixture %s as %s", fl.kind, path, fl.format)
	switch fl.kind {
	case "ordered":
		m, err := f.orderedMap()
		if err != nil {
			return err
		}
		return dumpTree(w, m.Tree(), fl.format, opts)
	case "interval":
		m, err := f.intervalMap()
		if err != nil {
			return err
		}
		opts.Ext = true
		if err := dumpTree(w, m.Tree(), fl.format, opts); err != nil {
			return err
		}
		if f.Query == nil {
			return nil
		}
		matches := slices.Sorted(m.Search(f.Query.interval()))
		_, err = fmt.Fprintf(w, "matches for %v: %v\n", f.Query.interval(), matches)
		return err
	case "trie":
		t, err := f.trie()
		if err != nil {
			return err
		}
		if fl.format != "dot" {
			return fmt.Errorf("%w: tries can only be dumped as dot", assoc.ErrIllegalArguments)
		}
		return dump.TrieDot(w, t, opts)
	}
	return fmt.Errorf("%w: unknown container kind %q", assoc.ErrIllegalArguments, fl.kind)
}

func dumpTree[K, V, E any](w io.Writer, tree *rbtree.Tree[K, V, E], format string, opts *dump.Options) error {
	switch format {
	case "text":
		return dump.Text(w, tree, opts)
	case "dot":
		return dump.Dot(w, tree, opts)
	case "html":
		err := dump.HTML(w, tree, opts)
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}
	return fmt.Errorf("%w: unknown format %q", assoc.ErrIllegalArguments, format)
}
