package hamt

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAtomSwap(t *testing.T) {
	a := NewAtom(New[int]())
	defer a.Close()
	a.Set("a", 1)
	a.Set("b", 2)
	snap := a.Load()
	a.Delete("a")
	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, 1, a.Load().Len())
	assert.False(t, a.Load().Has("a"))
}

func TestAtomConcurrentWriters(t *testing.T) {
	a := NewAtom(New[int]())
	defer a.Close()
	var g errgroup.Group
	for w := range 4 {
		g.Go(func() error {
			for i := range 100 {
				a.Set(fmt.Sprintf("%d/%d", w, i), i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 400, a.Load().Len())
	require.NoError(t, a.Load().Check())
}

func TestAtomSubscribe(t *testing.T) {
	a := NewAtom(New[string]())
	ch, ok := a.Subscribe(context.Background(), 8)
	require.True(t, ok)
	a.Set("x", "1")
	a.Set("x", "1") // overwrite creates a new version
	a.Delete("missing")
	a.Set("y", "2")
	var sizes []int
	for range 3 {
		v := <-ch
		sizes = append(sizes, v.Len())
	}
	assert.Equal(t, []int{1, 1, 2}, sizes)
	a.Close()
	for range ch {
		// drain until closed
	}
}

func TestAtomStalledSubscriberDoesNotBlockWriters(t *testing.T) {
	a := NewAtom(New[int]())
	defer a.Close()
	ch, ok := a.Subscribe(context.Background(), 1)
	require.True(t, ok)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 100 {
			a.Set(fmt.Sprintf("k%d", i), i)
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("writers blocked by a subscriber that does not read")
	}
	// the subscriber eventually sees the latest version
	deadline := time.After(5 * time.Second)
	for last := 0; last != 100; {
		select {
		case v := <-ch:
			require.GreaterOrEqual(t, v.Len(), last, "versions arrive in order")
			last = v.Len()
		case <-deadline:
			t.Fatalf("latest version not delivered, last seen has %d keys", last)
		}
	}
}
