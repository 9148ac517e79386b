package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/assoc/hamt"
	"github.com/npillmayer/assoc/interval"
	"github.com/npillmayer/assoc/omap"
	"github.com/npillmayer/assoc/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeNodes() *omap.Map[int, string] {
	return omap.New[int, string]().Set(2, "b").Set(1, "a").Set(3, "c")
}

var plain = map[rbtree.Color]*color.Color{}

func TestText(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	err := Text(&buf, threeNodes().Tree(), &Options{Values: true, Colors: plain})
	require.NoError(t, err)
	assert.Equal(t, "2=b\n  L 1=a\n  R 3=c\n", buf.String())
}

func TestTextColors(t *testing.T) {
	red := color.New(color.FgRed)
	red.EnableColor()
	var buf bytes.Buffer
	err := Text(&buf, threeNodes().Tree(), &Options{
		Colors: map[rbtree.Color]*color.Color{rbtree.Red: red},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[31m1")
	assert.True(t, strings.HasPrefix(buf.String(), "2\n"), "black root is uncoloured")
}

func TestTextIntervalExt(t *testing.T) {
	m := interval.New[int, string]()
	m.Set(interval.Closed(3, 4), "x").Set(interval.Closed(1, 9), "y")
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, m.Tree(), &Options{Ext: true, Colors: plain}))
	assert.Equal(t, "[3,4] ⌈9⌉\n  L [1,9] ⌈9⌉\n", buf.String())
}

func TestNilTree(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Text[int, int, rbtree.NoAug](&buf, nil, nil), ErrNoTree)
	assert.ErrorIs(t, Dot[int, int, rbtree.NoAug](&buf, nil, nil), ErrNoTree)
	assert.ErrorIs(t, HTML[int, int, rbtree.NoAug](&buf, nil, nil), ErrNoTree)
}

func TestDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dot(&buf, threeNodes().Tree(), nil))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "strict digraph {\n"))
	assert.Contains(t, out, `"2" -> "1";`)
	assert.Contains(t, out, `"2" -> "3";`)
	assert.Contains(t, out, `"1" [label="1",style=filled,shape=circle,color="#cc0000"`)
	assert.NotContains(t, out, sentinelNode, "no sentinel leaves below a full node")
	//
	buf.Reset()
	require.NoError(t, Dot(&buf, omap.New[int, int]().Set(1, 1).Set(2, 2).Tree(), nil))
	assert.Equal(t, 1, strings.Count(buf.String(), sentinelNode))
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, threeNodes().Tree(), &Options{Values: true}))
	want := `<ul class="rbtree"><li class="black">2=b<ul><li class="red">1=a</li><li class="red">3=c</li></ul></li></ul>`
	assert.Equal(t, want, buf.String())
	//
	buf.Reset()
	require.NoError(t, HTML(&buf, omap.New[string, int]().Set("a<b", 1).Set("z", 2).Tree(), nil))
	want = `<ul class="rbtree"><li class="black">a&lt;b<ul><li class="nil"></li><li class="red">z</li></ul></li></ul>`
	assert.Equal(t, want, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10, uax11.LatinContext))
	assert.Equal(t, "hell…", Truncate("hello world", 5, uax11.LatinContext))
	assert.Equal(t, "日本…", Truncate("日本語テキスト", 5, uax11.LatinContext))
	assert.Equal(t, "unlimited", Truncate("unlimited", 0, nil))
}

func TestTrieDot(t *testing.T) {
	tr := hamt.New[int]()
	for i, k := range []string{"AaAaAa", "AaAaBB", "AaBBAa", "AaBBBB", "BBAaAa", "BBAaBB", "BBBBAa", "BBBBBB"} {
		tr = tr.Set(k, i)
	}
	var buf bytes.Buffer
	require.NoError(t, TrieDot(&buf, tr, nil))
	out := buf.String()
	assert.Equal(t, 6, strings.Count(out, "->"))
	assert.Equal(t, 1, strings.Count(out, "shape=box,style=dashed"))
	assert.Contains(t, out, `"0" [label="AaAaAa",shape=record];`)
}
