package ttlcache

import (
	"time"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/karupanerura/ttl-cache/internal/keyhash"
	"github.com/karupanerura/ttl-cache/internal/nilcheck"
)

// Cache is an in-memory key-value store whose entries expire after a time-to-live.
// Expired entries are never returned; they are removed lazily by Get, or actively by Tidy.
// It is safe for concurrent use.
type Cache[K KeyConstraint, V ValueConstraint] struct {
	defaultTTL time.Duration
	buckets    []*bucket[K, V]
	options    options[K, V]
}

// New creates a new cache whose entries live for defaultTTL unless added with another ttl.
// It panics if defaultTTL is negative.
func New[K KeyConstraint, V ValueConstraint](defaultTTL time.Duration, opts ...Option[K, V]) *Cache[K, V] {
	if defaultTTL < 0 {
		panic("defaultTTL must not be negative")
	}

	options := defaultOptions[K, V]()
	for _, opt := range opts {
		opt.apply(&options)
	}
	if options.bucketsSize > 1 && options.hashKey == nil {
		options.hashKey = keyhash.For[K]()
	}

	return &Cache[K, V]{
		defaultTTL: defaultTTL,
		buckets:    newBuckets[K, V](options.bucketsSize),
		options:    options,
	}
}

// DefaultTTL returns the lifetime applied by Add.
func (c *Cache[K, V]) DefaultTTL() time.Duration {
	return c.defaultTTL
}

// Add stores value under key with the default ttl.
// See AddWithTTL for the insertion policy.
func (c *Cache[K, V]) Add(key K, value V) error {
	return c.AddWithTTL(key, value, c.defaultTTL)
}

// AddWithTTL stores value under key, expiring ttl from now.
// If a live entry already exists for key, it is replaced when the cache overrides on match,
// and otherwise a *KeyConflictError is returned and the existing entry is left untouched.
// A nil key or value, or a negative ttl, is rejected with an *InvalidArgumentError.
func (c *Cache[K, V]) AddWithTTL(key K, value V, ttl time.Duration) error {
	if nilcheck.IsNil(key) {
		return &InvalidArgumentError{Argument: "key"}
	}
	if nilcheck.IsNil(value) {
		return &InvalidArgumentError{Argument: "value"}
	}
	if ttl < 0 {
		return &InvalidArgumentError{Argument: "ttl"}
	}

	value = c.options.cloner.CloneValue(value)

	bucket := c.resolveBucket(key)
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := c.options.clock.Now()
	// conflicts are judged by the real expiry, not by the read policy
	if current, ok := bucket.m[key]; ok && !current.IsExpired(now) && !c.options.overrideOnMatch {
		c.options.logger.Debug("rejected add of live key", zap.Any("key", key))
		return &KeyConflictError{Key: key}
	}

	bucket.m[key] = NewCacheEntry(value, ttl, now)
	return nil
}

// Invalidate expires the entry under key immediately by replacing it with an entry
// holding the same value and a zero ttl. It does nothing if key is not cached.
func (c *Cache[K, V]) Invalidate(key K) {
	if nilcheck.IsNil(key) {
		return
	}

	bucket := c.resolveBucket(key)
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	current, ok := bucket.m[key]
	if !ok {
		return
	}
	bucket.m[key] = NewCacheEntry(current.Value(), 0, c.options.clock.Now())
}

// Get returns the value cached under key.
// The boolean is false if there is no entry or it is expired; an expired entry is removed.
// A nil key is rejected with an *InvalidArgumentError.
func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if nilcheck.IsNil(key) {
		return zero, false, &InvalidArgumentError{Argument: "key"}
	}

	bucket := c.resolveBucket(key)
	bucket.mu.RLock()
	entry, ok := bucket.m[key]
	expired := ok && c.isExpired(c.options.clock.Now(), entry)
	bucket.mu.RUnlock()

	if !ok {
		return zero, false, nil
	}
	if expired {
		c.evict(bucket, key)
		return zero, false, nil
	}
	return c.options.cloner.CloneValue(entry.Value()), true, nil
}

// Lookup is like Get, but returns the result as an optional value.
func (c *Cache[K, V]) Lookup(key K) (mo.Option[V], error) {
	value, ok, err := c.Get(key)
	if err != nil || !ok {
		return mo.None[V](), err
	}
	return mo.Some(value), nil
}

// evict removes the entry under key if it is still expired.
// The entry is checked again under the write lock, since another goroutine may have
// replaced it after the read lock was released.
func (c *Cache[K, V]) evict(bucket *bucket[K, V], key K) {
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	if entry, ok := bucket.m[key]; ok && c.isExpired(c.options.clock.Now(), entry) {
		delete(bucket.m, key)
		c.options.logger.Debug("evicted expired entry", zap.Any("key", key))
	}
}

// Tidy removes all expired entries.
// Every entry is judged against the same instant, read once all buckets are locked.
func (c *Cache[K, V]) Tidy() {
	unlock := c.lockAll()
	defer unlock()

	now := c.options.clock.Now()
	removed := 0
	for _, bucket := range c.buckets {
		for key, entry := range bucket.m {
			if c.isExpired(now, entry) {
				delete(bucket.m, key)
				removed++
			}
		}
	}
	c.options.logger.Debug("tidied expired entries", zap.Int("removed", removed))
}

// Count returns the number of entries that are valid now.
// Unlike Get, it never removes expired entries.
func (c *Cache[K, V]) Count() int {
	runlock := c.rlockAll()
	defer runlock()

	now := c.options.clock.Now()
	count := 0
	for _, bucket := range c.buckets {
		for _, entry := range bucket.m {
			if !c.isExpired(now, entry) {
				count++
			}
		}
	}
	return count
}

// Len returns the number of entries held by the cache,
// including expired entries that have not been removed yet.
func (c *Cache[K, V]) Len() int {
	runlock := c.rlockAll()
	defer runlock()

	n := 0
	for _, bucket := range c.buckets {
		n += len(bucket.m)
	}
	return n
}

func (c *Cache[K, V]) isExpired(now time.Time, entry CacheEntry[V]) bool {
	return c.options.policy.IsExpired(now, entry.ExpiresAt())
}
