package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karupanerura/ttl-cache/internal/panicutil"
)

// Tidier is the interface for caches that can remove their expired entries.
// *ttlcache.Cache implements it.
type Tidier interface {
	Tidy()
}

// IntervalSweeper is a background sweeper that tidies a cache at a fixed interval.
type IntervalSweeper struct {
	tidier            Tidier
	interval          time.Duration
	onBackgroundError func(error)
	logger            *zap.Logger
}

// NewIntervalSweeper creates a new IntervalSweeper.
// It panics if interval is not positive.
func NewIntervalSweeper(tidier Tidier, interval time.Duration, opts ...Option) *IntervalSweeper {
	if interval <= 0 {
		panic("interval must be positive")
	}

	s := &IntervalSweeper{
		tidier:   tidier,
		interval: interval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt.apply(s)
	}
	return s
}

// LaunchBackgroundSweeper starts the background sweeper.
// It tidies once immediately, and then every interval.
// The background sweeper can be stopped by canceling the context passed to LaunchBackgroundSweeper.
func (s *IntervalSweeper) LaunchBackgroundSweeper(ctx context.Context) {
	go s.poll(ctx)
}

// poll tidies the cache at the fixed interval.
func (s *IntervalSweeper) poll(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("background sweeper stopped", zap.Error(ctx.Err()))
			return

		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep tidies the cache once. A panic in Tidy is reported instead of crashing the process.
func (s *IntervalSweeper) sweep() {
	start := time.Now()
	if err := panicutil.Recover(s.tidier.Tidy); err != nil {
		s.logger.Warn("recovered panic while sweeping", zap.Error(err))
		if s.onBackgroundError != nil {
			s.onBackgroundError(err)
		}
		return
	}
	s.logger.Debug("swept expired entries", zap.Duration("elapsed", time.Since(start)))
}
