package expiration

import (
	"math/rand/v2"
	"sync"
	"time"
)

// ExpirationPolicy is the interface for the expiration time checker.
type ExpirationPolicy interface {
	// IsExpired returns true if the value is expired.
	// The now parameter represents the current time, and expiresAt is the value's expiration time.
	IsExpired(now, expiresAt time.Time) bool
}

// GeneralExpirationPolicy is a policy that expires a value at a specific time.
type GeneralExpirationPolicy struct{}

var _ ExpirationPolicy = GeneralExpirationPolicy{}

// IsExpired returns true if now >= expiresAt.
func (GeneralExpirationPolicy) IsExpired(now, expiresAt time.Time) bool {
	return !expiresAt.After(now)
}

// EarlyExpirationPolicy is a policy that can expire a value before its actual expiration time.
// Randomly expiring some reads early spreads recomputation of popular keys over time.
type EarlyExpirationPolicy struct {
	// Duration is how much earlier the value can expire.
	Duration time.Duration

	// Percentage is the chance (between 0 and 1) that a check uses the early expiration time.
	Percentage float64

	// Random is the random number generator to decide early expiration.
	// If nil, it uses system default random generator.
	// Calls to Random are serialized by the policy.
	Random *rand.Rand

	mu sync.Mutex
}

var _ ExpirationPolicy = (*EarlyExpirationPolicy)(nil)

// IsExpired checks if the value is expired.
// With probability Percentage it checks now + Duration >= expiresAt,
// otherwise it behaves like GeneralExpirationPolicy.
func (p *EarlyExpirationPolicy) IsExpired(now, expiresAt time.Time) bool {
	if p.randFloat64() < p.Percentage {
		now = now.Add(p.Duration)
	}
	return !expiresAt.After(now)
}

func (p *EarlyExpirationPolicy) randFloat64() float64 {
	if p.Random == nil {
		return rand.Float64()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Random.Float64()
}
