// Package sweeper runs the active sweep of a cache in the background.
//
// A ttlcache.Cache only removes expired entries lazily when they are read, or when Tidy is called.
// IntervalSweeper calls Tidy at a fixed interval so that entries which are written once and never
// read again do not accumulate.
package sweeper
