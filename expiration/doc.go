// Package expiration provides policies deciding when a cache entry is expired.
//
// A ttlcache.Cache consults its ExpirationPolicy on every read, count and sweep.
// Every policy in this package treats the expiration instant itself as expired,
// and may only make an entry expire earlier than its expiration time, never later.
package expiration
