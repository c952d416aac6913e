package generator

import (
	"github.com/viant/tasksetgen/metrics"
	"log/slog"
	"math/rand/v2"
)

// Option customises the generator.
type Option func(s *Service)

// WithRand sets the random source.
func WithRand(rnd Rand) Option {
	return func(s *Service) {
		if rnd != nil {
			s.rnd = rnd
		}
	}
}

// WithSeed seeds a PCG source so that generation is reproducible.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.rnd = NewRand(seed)
	}
}

// WithMaxAttempts caps the tolerance loop, the partition resampling and the
// uniqueness passes.  Non-positive values keep DefaultMaxAttempts.
func WithMaxAttempts(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.maxAttempts = count
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(s *Service) {
		s.metrics = collector
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewRand returns a seeded PCG-backed source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
