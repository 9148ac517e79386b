package hamt

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
)

// Atom is a mutable reference to a Trie. Readers load the current version
// without locking; writers are serialized and replace the version as a
// whole. Subscribers are notified of every new version.
//
// An Atom must be created with NewAtom.
type Atom[V any] struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Trie[V]]
	cast    *caster.Caster // broadcasts new versions to subscribers
}

// NewAtom creates an Atom holding t.
func NewAtom[V any](t Trie[V]) *Atom[V] {
	a := &Atom[V]{
		cast: caster.New(nil),
	}
	a.current.Store(&t)
	return a
}

// Load returns the current version.
func (a *Atom[V]) Load() Trie[V] {
	return *a.current.Load()
}

// Swap replaces the current version by update(current) and returns the new
// version. update may be called only once per Swap and must not call back
// into a. If update returns a version with an unchanged root, nothing is
// published.
func (a *Atom[V]) Swap(update func(Trie[V]) Trie[V]) Trie[V] {
	a.mu.Lock()
	defer a.mu.Unlock()
	old := a.current.Load()
	t := update(*old)
	if t.root == old.root && t.size == old.size {
		return t
	}
	a.current.Store(&t)
	tracer().Debugf("hamt: atom publishes version with %d keys", t.size)
	a.cast.Pub(t)
	return t
}

// Set stores value for key in a new current version.
func (a *Atom[V]) Set(key string, value V) Trie[V] {
	return a.Swap(func(t Trie[V]) Trie[V] {
		return t.Set(key, value)
	})
}

// Delete removes key in a new current version.
func (a *Atom[V]) Delete(key string) Trie[V] {
	return a.Swap(func(t Trie[V]) Trie[V] {
		t, _ = t.Delete(key)
		return t
	})
}

// Subscribe returns a channel receiving the versions published after the
// call, in publication order. The channel is closed when ctx is done or the
// Atom is closed. capacity is the buffer size of the subscription.
// Subscribers never hold up writers: while a subscriber's buffer is full,
// intermediate versions are skipped and only the latest one is kept for
// delivery.
//
// ok is false if the Atom has already been closed.
func (a *Atom[V]) Subscribe(ctx context.Context, capacity uint) (<-chan Trie[V], bool) {
	sub, ok := a.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan Trie[V], capacity)
	go func() {
		defer close(out)
		var pending *Trie[V] // latest version not yet delivered
		for {
			var send chan<- Trie[V] // nil while nothing is pending
			var next Trie[V]
			if pending != nil {
				send, next = out, *pending
			}
			select {
			case msg, open := <-sub:
				if pending != nil { // deliver if there is room, else skip it
					select {
					case out <- *pending:
					default:
					}
					pending = nil
				}
				if !open {
					return
				}
				if t, ok := msg.(Trie[V]); ok {
					pending = &t
				}
			case send <- next:
				pending = nil
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// Close ends all subscriptions. Writes after Close are still possible but
// not published anymore.
func (a *Atom[V]) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cast.Close()
}
