package memo

import (
	"context"
	"time"

	ttlcache "github.com/karupanerura/ttl-cache"
)

// Option is the interface for the options of the Memoizer.
type Option[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint] interface {
	apply(*Memoizer[K, V])
}

type optionFunc[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint] func(*Memoizer[K, V])

func (f optionFunc[K, V]) apply(m *Memoizer[K, V]) {
	f(m)
}

// WithTTL sets the lifetime of loaded values.
// The default is the default ttl of the cache.
func WithTTL[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint](ttl time.Duration) Option[K, V] {
	return optionFunc[K, V](func(m *Memoizer[K, V]) {
		m.ttl = ttl
	})
}

// WithCloner sets the value cloner to the memoizer.
// The default value cloner is ttlcache.NopValueCloner.
func WithCloner[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint](cloner ttlcache.ValueCloner[V]) Option[K, V] {
	return optionFunc[K, V](func(m *Memoizer[K, V]) {
		m.cloner = cloner
	})
}

// WithBackgroundContextProvider sets the context provider to the memoizer.
// The provider must return a new context for each call.
// The default context provider is context.Background.
func WithBackgroundContextProvider[K ttlcache.KeyConstraint, V ttlcache.ValueConstraint](provider func() context.Context) Option[K, V] {
	return optionFunc[K, V](func(m *Memoizer[K, V]) {
		m.context = provider
	})
}
