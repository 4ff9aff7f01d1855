// Package memo memoizes a function with a ttlcache.Cache.
//
// Memoizer returns cached values while they are alive, and calls the load function otherwise.
// Concurrent calls for the same missing key share a single call of the load function,
// which avoids the "thundering herd" problem when a popular entry expires.
//
// The Memoizer can be configured with options:
//   - WithTTL: Sets the lifetime of loaded values instead of the cache default
//   - WithCloner: Sets a value cloner used when sharing a loaded value with multiple callers
//   - WithBackgroundContextProvider: Sets a custom context provider for background loads
package memo
