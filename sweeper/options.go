package sweeper

import "go.uber.org/zap"

// Option is the interface for the options of the IntervalSweeper.
type Option interface {
	apply(*IntervalSweeper)
}

type optionFunc func(*IntervalSweeper)

func (f optionFunc) apply(s *IntervalSweeper) {
	f(s)
}

// WithErrorHandler sets the function called with errors raised by background sweeps.
func WithErrorHandler(onBackgroundError func(error)) Option {
	return optionFunc(func(s *IntervalSweeper) {
		s.onBackgroundError = onBackgroundError
	})
}

// WithLogger sets the logger to the sweeper. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(s *IntervalSweeper) {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
	})
}
