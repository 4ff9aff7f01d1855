// Package keyhash provides hash functions used to spread cache keys over buckets.
package keyhash
