package memo

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	ttlcache "github.com/karupanerura/ttl-cache"
	"github.com/karupanerura/ttl-cache/internal/nilcheck"
	"github.com/karupanerura/ttl-cache/internal/panicutil"
)

var errGoexit = errors.New("runtime.Goexit is called")

// LoadFunc computes the value for a key that is not cached.
type LoadFunc[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint] func(context.Context, K) (V, error)

// Memoizer caches the results of a LoadFunc.
type Memoizer[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint] struct {
	cache   *ttlcache.Cache[K, V]
	load    LoadFunc[K, V]
	ttl     time.Duration
	cloner  ttlcache.ValueCloner[V]
	context func() context.Context

	mu        sync.Mutex
	waitlists map[K][]chan result[V]
}

type result[V ttlcache.ValueConstraint] struct {
	value V
	err   error
}

// New creates a new Memoizer storing the results of load in cache.
func New[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint](cache *ttlcache.Cache[K, V], load LoadFunc[K, V], opts ...Option[K, V]) *Memoizer[K, V] {
	m := &Memoizer[K, V]{
		cache:     cache,
		load:      load,
		ttl:       cache.DefaultTTL(),
		cloner:    ttlcache.NopValueCloner[V]{},
		context:   context.Background,
		waitlists: map[K][]chan result[V]{},
	}
	for _, o := range opts {
		o.apply(m)
	}
	return m
}

// Get returns the cached value for key, loading and caching it if it is missing or expired.
// The load runs in the background with a context from the background context provider,
// so canceling ctx only stops waiting for it.
// A nil loaded value is returned but not cached.
func (m *Memoizer[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	if value, ok, err := m.cache.Get(key); err != nil {
		return zero, err
	} else if ok {
		return value, nil
	}

	ch := m.register(key)
	select {
	case r := <-ch:
		if r.err == errGoexit {
			runtime.Goexit()
		}
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// register adds a waiter for key, and starts loading it if no load is in flight.
func (m *Memoizer[K, V]) register(key K) chan result[V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan result[V], 1)
	m.waitlists[key] = append(m.waitlists[key], ch)
	if len(m.waitlists[key]) == 1 {
		go m.loadAndStore(m.context(), key)
	}
	return ch
}

// loadAndStore loads the value for key, stores it in the cache and wakes up the waiters.
func (m *Memoizer[K, V]) loadAndStore(ctx context.Context, key K) {
	value, err := panicutil.Guard(func() (V, error) {
		return m.load(ctx, key)
	}, func() {
		m.broadcast(key, result[V]{err: errGoexit})
	})
	if err != nil {
		m.broadcast(key, result[V]{err: err})
		return
	}

	value, err = m.store(key, value)
	m.broadcast(key, result[V]{value: value, err: err})
}

// store adds the loaded value to the cache.
// If another writer added a live value meanwhile, that value wins and is returned instead.
func (m *Memoizer[K, V]) store(key K, value V) (V, error) {
	if nilcheck.IsNil(value) {
		return value, nil
	}

	err := m.cache.AddWithTTL(key, value, m.ttl)
	if errors.Is(err, ttlcache.ErrKeyConflict) {
		if current, ok, err := m.cache.Get(key); err != nil {
			return value, err
		} else if ok {
			return current, nil
		}
		return value, nil
	}
	return value, err
}

// broadcast sends the result to all waiters of key.
func (m *Memoizer[K, V]) broadcast(key K, r result[V]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, ch := range m.waitlists[key] {
		res := r
		if i != 0 && r.err == nil {
			// the first waiter receives the loaded value itself, the others a clone
			res.value = m.cloner.CloneValue(r.value)
		}
		ch <- res
		close(ch)
	}
	delete(m.waitlists, key)
}
