// Package ttlcache provides an in-memory key-value cache whose entries expire after a time-to-live.
//
// Each entry stores its value and the instant it expires. Expired entries are never returned:
// Get removes an expired entry it finds, and Tidy removes all of them at once.
// The cache starts no goroutines; see the sweeper package to run Tidy periodically,
// and the memo package to compute missing values on demand.
//
// Add either replaces a live entry or fails with a KeyConflictError,
// depending on WithOverrideOnMatch. Invalidate expires an entry immediately.
//
// The clock, value cloner, expiration policy, bucket count and logger are configurable with options.
package ttlcache
