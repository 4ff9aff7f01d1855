package ttlcache

import "sync"

type bucket[K KeyConstraint, V ValueConstraint] struct {
	m  map[K]CacheEntry[V]
	mu sync.RWMutex
}

func newBuckets[K KeyConstraint, V ValueConstraint](size int) []*bucket[K, V] {
	buckets := make([]*bucket[K, V], size)
	for i := range buckets {
		buckets[i] = &bucket[K, V]{m: map[K]CacheEntry[V]{}}
	}
	return buckets
}

// resolveBucket returns the bucket that corresponds to the given key.
func (c *Cache[K, V]) resolveBucket(key K) *bucket[K, V] {
	if len(c.buckets) == 1 {
		return c.buckets[0]
	}

	index := c.options.hashKey(key) % len(c.buckets)
	if index < 0 {
		index *= -1
	}
	return c.buckets[index]
}

// lockAll write-locks every bucket in index order and returns the function releasing them.
func (c *Cache[K, V]) lockAll() (unlock func()) {
	for _, b := range c.buckets {
		b.mu.Lock()
	}
	return func() {
		for i := len(c.buckets) - 1; i >= 0; i-- {
			c.buckets[i].mu.Unlock()
		}
	}
}

// rlockAll read-locks every bucket in index order and returns the function releasing them.
func (c *Cache[K, V]) rlockAll() (runlock func()) {
	for _, b := range c.buckets {
		b.mu.RLock()
	}
	return func() {
		for i := len(c.buckets) - 1; i >= 0; i-- {
			c.buckets[i].mu.RUnlock()
		}
	}
}
