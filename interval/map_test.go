package interval

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalBasics(t *testing.T) {
	a := Closed(0, 10)
	assert.True(t, a.Overlaps(Closed(10, 12)))
	assert.True(t, a.Overlaps(Closed(-5, 0)))
	assert.False(t, a.Overlaps(Closed(11, 12)))
	assert.True(t, a.Contains(5))
	assert.False(t, Closed(3, 1).IsValid())
	assert.Equal(t, "[0,10]", a.String())
	assert.Negative(t, Compare(Closed(0, 5), Closed(1, 2)))
	assert.Negative(t, Compare(Closed(0, 5), Closed(0, 6)))
	assert.Zero(t, Compare(Point(3), Closed(3, 3)))
}

func TestSearchOverlapping(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := New[int, string]()
	m.Set(Closed(0, 10), "foo").Set(Closed(5, 20), "bar")
	assert.Equal(t, []string{"bar"}, slices.Collect(m.Search(Closed(19, 20))))
	assert.ElementsMatch(t, []string{"foo", "bar"}, slices.Collect(m.Search(Point(5))))
	assert.Empty(t, slices.Collect(m.Search(Closed(21, 30))))
	assert.Empty(t, slices.Collect(m.Search(Closed(5, 4))), "invalid query matches nothing")
	require.NoError(t, m.CheckMax())
}

func TestDeletePointInterval(t *testing.T) {
	m := New[int, string]()
	m.Set(Closed(0, 0), "p")
	assert.False(t, m.Delete(Closed(1, 1)))
	assert.True(t, m.Delete(Closed(0, 0)))
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, slices.Collect(m.Search(Closed(-10, 10))))
}

func TestGetHasOverwrite(t *testing.T) {
	m := New[float64, int]()
	m.Set(Closed(1.5, 2.5), 1)
	m.Set(Closed(1.5, 2.5), 2)
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(Closed(1.5, 2.5))
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.False(t, m.Has(Closed(1.5, 2.0)))
	assert.True(t, m.Has(Closed(1.5, 2.5)))
}

func TestSetInvalidIntervalPanics(t *testing.T) {
	m := New[int, int]()
	assert.Panics(t, func() { m.Set(Closed(2, 1), 0) })
}

func TestMaxAfterTwoChildDelete(t *testing.T) {
	m := New[int, string]()
	// the root will get two children; its successor carries the largest bound
	m.Set(Closed(10, 11), "root")
	m.Set(Closed(5, 6), "left")
	m.Set(Closed(15, 100), "right")
	require.NoError(t, m.CheckMax())
	root := m.Tree().Root()
	assert.Equal(t, 100, root.Ext().Max)
	require.True(t, m.Delete(Closed(10, 11)))
	require.NoError(t, m.CheckMax())
	assert.Equal(t, Closed(15, 100), m.Tree().Root().Key())
	require.True(t, m.Delete(Closed(15, 100)))
	require.NoError(t, m.CheckMax())
	assert.Equal(t, 6, m.Tree().Root().Ext().Max)
}

func TestEntriesOrdered(t *testing.T) {
	m := New[int, int]()
	for i, iv := range []Interval[int]{Closed(3, 9), Closed(1, 2), Closed(3, 4), Closed(0, 100), Closed(1, 1)} {
		m.Set(iv, i)
	}
	var got []Interval[int]
	for iv := range m.Entries() {
		got = append(got, iv)
	}
	want := []Interval[int]{Closed(0, 100), Closed(1, 1), Closed(1, 2), Closed(3, 4), Closed(3, 9)}
	assert.Equal(t, want, got)
}

func TestSearchStopsEarly(t *testing.T) {
	m := New[int, int]()
	for i := range 20 {
		m.Set(Closed(i, i+5), i)
	}
	cnt := 0
	for range m.Search(Closed(0, 100)) {
		cnt++
		if cnt == 3 {
			break
		}
	}
	assert.Equal(t, 3, cnt)
}

func bruteForce(model map[Interval[int]]int, q Interval[int]) []int {
	var vals []int
	for iv, v := range model {
		if iv.Overlaps(q) {
			vals = append(vals, v)
		}
	}
	return vals
}

func TestRandomizedOverlapSearch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(1234))
	randomInterval := func() Interval[int] {
		lo := r.Intn(1000)
		return Closed(lo, lo+r.Intn(60))
	}
	m := New[int, int]()
	model := map[Interval[int]]int{}
	for step := range 3000 {
		iv := randomInterval()
		if r.Intn(3) == 0 && len(model) > 0 {
			// delete a present interval most of the time
			for k := range model {
				iv = k
				break
			}
			require.True(t, m.Delete(iv))
			delete(model, iv)
		} else {
			m.Set(iv, step)
			model[iv] = step
		}
		if step%100 == 0 {
			require.NoError(t, m.CheckMax(), "step %d", step)
			require.True(t, m.CheckBalance(), "step %d", step)
			require.True(t, m.CheckOrder(), "step %d", step)
		}
	}
	require.NoError(t, m.CheckMax())
	require.NoError(t, m.Tree().Check())
	require.Equal(t, len(model), m.Len())
	for range 300 {
		q := randomInterval()
		got := slices.Collect(m.Search(q))
		assert.ElementsMatch(t, bruteForce(model, q), got, "query %v", q)
	}
}
