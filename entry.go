package ttlcache

import "time"

// CacheEntry is a value paired with its expiration time.
// It is immutable: invalidating or refreshing a key stores a new entry.
type CacheEntry[V ValueConstraint] struct {
	value     V
	expiresAt time.Time
}

// NewCacheEntry creates an entry holding value that expires ttl after now.
func NewCacheEntry[V ValueConstraint](value V, ttl time.Duration, now time.Time) CacheEntry[V] {
	return CacheEntry[V]{
		value:     value,
		expiresAt: now.Add(ttl),
	}
}

// Value returns the stored value.
func (e CacheEntry[V]) Value() V {
	return e.value
}

// ExpiresAt returns the time after which the entry is invalid.
func (e CacheEntry[V]) ExpiresAt() time.Time {
	return e.expiresAt
}

// IsExpired returns true if now is at or after the expiration time.
func (e CacheEntry[V]) IsExpired(now time.Time) bool {
	return !e.expiresAt.After(now)
}
