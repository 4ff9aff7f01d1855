package ttlcache

import (
	"time"

	"go.uber.org/zap"

	"github.com/karupanerura/ttl-cache/expiration"
)

// DefaultTTL is the conventional default lifetime of cache entries.
var DefaultTTL = time.Minute

// DefaultBucketsSize is the default number of buckets in the cache.
// A single bucket means every operation is serialized by one lock.
var DefaultBucketsSize = 1

// Option is the interface for the options of the cache.
type Option[K KeyConstraint, V ValueConstraint] interface {
	apply(*options[K, V])
}

type optionFunc[K KeyConstraint, V ValueConstraint] func(*options[K, V])

func (f optionFunc[K, V]) apply(o *options[K, V]) {
	f(o)
}

// WithOverrideOnMatch sets whether Add replaces a live entry under the same key.
// When false (the default), Add fails with a KeyConflictError instead.
func WithOverrideOnMatch[K KeyConstraint, V ValueConstraint](override bool) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.overrideOnMatch = override
	})
}

// WithClock sets the clock to the cache.
func WithClock[K KeyConstraint, V ValueConstraint](clock Clock) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.clock = clock
	})
}

// WithCloner sets the value cloner to the cache.
func WithCloner[K KeyConstraint, V ValueConstraint](cloner ValueCloner[V]) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.cloner = cloner
	})
}

// WithExpirationPolicy sets the expiration policy to the cache.
func WithExpirationPolicy[K KeyConstraint, V ValueConstraint](policy expiration.ExpirationPolicy) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.policy = policy
	})
}

// WithBucketsSize sets the number of buckets in the cache.
// The number of buckets must be a natural number.
func WithBucketsSize[K KeyConstraint, V ValueConstraint](bucketsSize int) Option[K, V] {
	if bucketsSize <= 0 {
		panic("bucketSize must be natural number")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.bucketsSize = bucketsSize
	})
}

// WithKeyHash sets the function used to choose the bucket of a key.
// It is only used when the cache has more than one bucket.
func WithKeyHash[K KeyConstraint, V ValueConstraint](f func(K) int) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.hashKey = f
	})
}

// WithLogger sets the logger to the cache. A nil logger disables logging.
func WithLogger[K KeyConstraint, V ValueConstraint](logger *zap.Logger) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	})
}

type options[K KeyConstraint, V ValueConstraint] struct {
	overrideOnMatch bool
	clock           Clock
	cloner          ValueCloner[V]
	policy          expiration.ExpirationPolicy
	bucketsSize     int
	hashKey         func(K) int
	logger          *zap.Logger
}

func defaultOptions[K KeyConstraint, V ValueConstraint]() options[K, V] {
	return options[K, V]{
		overrideOnMatch: false,
		clock:           SystemClock,
		cloner:          NopValueCloner[V]{},
		policy:          expiration.GeneralExpirationPolicy{},
		bucketsSize:     DefaultBucketsSize,
		logger:          zap.NewNop(),
	}
}
