package tasksetgen

import (
	"github.com/viant/afs"
	"github.com/viant/tasksetgen/metrics"
	"github.com/viant/tasksetgen/progress"
	"github.com/viant/tasksetgen/service/generator"
	"github.com/viant/tasksetgen/service/report"
	"io"
	"log/slog"
)

// Option customises the Service.
type Option func(s *Service)

// WithConfig sets the configuration; generator, output and color settings
// are taken from it.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithFs sets the storage service used for requirements and tasksets.
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithTasksetStore replaces the file-system taskset store.
func WithTasksetStore(store TasksetStore) Option {
	return func(s *Service) {
		s.tasksets = store
	}
}

// WithGeneratorOptions passes extra options to the generator; they are
// applied after the configured ones.
func WithGeneratorOptions(opts ...generator.Option) Option {
	return func(s *Service) {
		s.generatorOptions = append(s.generatorOptions, opts...)
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return WithGeneratorOptions(generator.WithSeed(seed))
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
		s.logger = logger
	}
}

// WithOutput makes Run render every outcome and the batch footer to w.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.output = w
	}
}

// WithRenderer replaces the summary renderer.
func WithRenderer(renderer *report.Renderer) Option {
	return func(s *Service) {
		s.renderer = renderer
	}
}

// WithProgress registers a callback invoked on every batch progress change,
// including when a requirement starts.
func WithProgress(onChange func(progress.Snapshot)) Option {
	return func(s *Service) {
		s.onProgress = onChange
	}
}
