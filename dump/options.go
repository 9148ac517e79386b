package dump

import (
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/assoc/rbtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Options control the output of dumpers. A nil *Options selects defaults.
type Options struct {
	Width   int                           // max display width of a label in en; 0 = no limit
	Values  bool                          // print values next to keys
	Ext     bool                          // print augmentation data
	Context *uax11.Context                // for display width of labels; default LatinContext
	Colors  map[rbtree.Color]*color.Color // text colours for node colours
}

func (opts *Options) normalized() *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Context == nil {
		o.Context = uax11.LatinContext
	}
	if o.Colors == nil {
		o.Colors = makeDefaultPalette()
	}
	return &o
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	return map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed),
		rbtree.Black: color.New(color.Bold),
	}
}

// ConsoleOptions creates options for output to stdout. If stdout is a
// terminal, the label width is derived from the terminal's width and
// the width context from the user environment.
func ConsoleOptions() *Options {
	opts := &Options{Values: true, Width: 40}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 60 {
				opts.Width = w / 2
			} else if w > 20 {
				opts.Width = w - 10
			} else {
				opts.Width = 10
			}
		}
		opts.Context = uax11.ContextFromEnvironment()
	}
	tracer().Infof("dump: setting label width to %d en", opts.Width)
	return opts
}

var setupGraphemes sync.Once

// Truncate shortens s to at most width display positions, measured
// grapheme by grapheme in context. A truncated string ends in '…'.
// width <= 0 leaves s untouched.
func Truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 || s == "" {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	out, w := "", 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), context)
		if w+gw > width-1 {
			break
		}
		out += g
		w += gw
	}
	return out + "…"
}
