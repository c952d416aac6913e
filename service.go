package tasksetgen

import (
	"context"
	"errors"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/tasksetgen/internal/idgen"
	"github.com/viant/tasksetgen/internal/logging"
	"github.com/viant/tasksetgen/metrics"
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/progress"
	"github.com/viant/tasksetgen/service/dao"
	"github.com/viant/tasksetgen/service/dao/requirement"
	"github.com/viant/tasksetgen/service/dao/taskset"
	tfs "github.com/viant/tasksetgen/service/dao/taskset/fs"
	"github.com/viant/tasksetgen/service/generator"
	"github.com/viant/tasksetgen/service/report"
	"github.com/viant/tasksetgen/tracing"
	"io"
	"log/slog"
	"strconv"
)

type (
	// Report summarises a batch run.
	Report = report.Summary
	// Outcome is the result of one requirement.
	Outcome = report.Outcome
)

// TasksetStore persists generated tasksets.
type TasksetStore interface {
	dao.Service[string, taskset.Record]
	Clean(ctx context.Context) error
}

type locator interface {
	URL(key string) string
}

// Service runs requirement batches.
type Service struct {
	config           *Config
	fs               afs.Service
	generator        *generator.Service
	generatorOptions []generator.Option
	tasksets         TasksetStore
	requirements     *requirement.Service
	metrics          *metrics.Collector
	logger           *slog.Logger
	renderer         *report.Renderer
	output           io.Writer
	onProgress       func(progress.Snapshot)
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Tasksets returns the taskset store.
func (s *Service) Tasksets() TasksetStore {
	return s.tasksets
}

// Generate synthesises one taskset without storing it.
func (s *Service) Generate(ctx context.Context, req *model.Requirement) (*generator.Result, error) {
	ctx, span := tracing.StartSpan(ctx, "tasksetgen.generate")
	result, err := s.generate(ctx, span, req)
	tracing.EndSpan(span, err)
	return result, err
}

func (s *Service) generate(ctx context.Context, span *tracing.Span, req *model.Requirement) (*generator.Result, error) {
	if req != nil {
		span.WithAttributes(map[string]string{
			"requirement": req.Name,
			"utilization": strconv.FormatFloat(req.Utilization, 'f', -1, 64),
			"unique":      strconv.FormatBool(req.UniquePeriods),
		})
		span.SetInt("size", int64(req.Size))
	}
	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	span.SetInt("attempts", int64(result.Attempts))
	span.SetInt("hyperperiod", result.Taskset.Hyperperiod())
	span.SetFloat("deviation", result.Deviation)
	progress.UpdateCtx(ctx, progress.Delta{Attempts: result.Attempts})
	return result, nil
}

// Run processes requirements in order.  A failing requirement is logged and
// recorded in the report; it stores nothing and does not stop the batch.
// The returned error is non-nil only when ctx is cancelled; the requirement
// interrupted by the cancellation is left out of the report.
func (s *Service) Run(ctx context.Context, requirements []*model.Requirement) (*Report, error) {
	runID := idgen.RunID()
	ctx, tracker := progress.WithNewTracker(ctx, runID)
	tracker.OnChange(s.onProgress)
	ctx, span := tracing.StartSpan(ctx, "tasksetgen.run")
	span.WithAttributes(map[string]string{"run.id": runID})
	span.SetInt("requirements", int64(len(requirements)))

	ret := &Report{RunID: runID}
	tracker.Update(progress.Delta{Total: len(requirements)})
	s.logger.Info("batch started", "run", runID, "requirements", len(requirements))
	var err error
	for _, req := range requirements {
		if err = ctx.Err(); err != nil {
			break
		}
		if s.output != nil {
			_ = s.renderer.Start(s.output, req)
		}
		tracker.Update(progress.Delta{Current: requirementName(req)})
		outcome := s.process(ctx, req)
		if outcome.Err != nil && ctx.Err() != nil && errors.Is(outcome.Err, ctx.Err()) {
			err = ctx.Err()
			break
		}
		if outcome.Succeeded() {
			tracker.Update(progress.Delta{Completed: 1})
		} else {
			tracker.Update(progress.Delta{Failed: 1})
		}
		ret.Add(outcome)
		if s.output != nil {
			_ = s.renderer.Outcome(s.output, outcome)
		}
	}
	snapshot := tracker.Snapshot()
	s.logger.Info("batch finished", "run", runID,
		"completed", snapshot.Completed,
		"failed", snapshot.Failed,
		"attempts", snapshot.Attempts,
		"elapsed", snapshot.Elapsed())
	if s.output != nil && err == nil {
		_ = s.renderer.Footer(s.output, ret)
	}
	tracing.EndSpan(span, err)
	return ret, err
}

func (s *Service) process(ctx context.Context, req *model.Requirement) *Outcome {
	outcome := &Outcome{Requirement: req}
	result, err := s.Generate(ctx, req)
	if err != nil {
		outcome.Err = err
		s.logger.Error("requirement failed", "requirement", requirementName(req), "error", err)
		return outcome
	}
	record := &taskset.Record{Name: req.Name, Utilization: req.Utilization, Taskset: result.Taskset}
	if err = s.tasksets.Save(ctx, record); err != nil {
		outcome.Err = fmt.Errorf("failed to store taskset %s: %w", req.Name, err)
		s.logger.Error("requirement failed", "requirement", req.Name, "error", outcome.Err)
		return outcome
	}
	outcome.Result = result
	outcome.Location = s.location(record.Key())
	s.logger.Info("taskset generated",
		"requirement", req.Name,
		"size", result.Taskset.Len(),
		"utilization", result.Taskset.WorstCaseUtilization(),
		"attempts", result.Attempts,
		"location", outcome.Location)
	return outcome
}

// RunFile loads requirements from URL (CSV or YAML) and runs them.
func (s *Service) RunFile(ctx context.Context, URL string) (*Report, error) {
	requirements, err := s.requirements.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, requirements)
}

// Clean removes every stored taskset and leaves an empty output location.
func (s *Service) Clean(ctx context.Context) error {
	if err := s.tasksets.Clean(ctx); err != nil {
		return err
	}
	s.logger.Info("output cleaned", "location", s.location(""))
	return nil
}

func (s *Service) location(key string) string {
	if l, ok := s.tasksets.(locator); ok {
		return l.URL(key)
	}
	return key
}

func requirementName(req *model.Requirement) string {
	if req == nil {
		return ""
	}
	return req.Name
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = logging.Logger()
	}
	if s.renderer == nil {
		s.renderer = &report.Renderer{Color: s.config.Output.Color}
	}
	if s.tasksets == nil {
		store, err := tfs.New(s.config.Output.BaseURL, s.fs)
		if err != nil {
			return err
		}
		s.tasksets = store
	}
	s.requirements = requirement.New(s.fs)
	generatorOptions := append(s.config.GeneratorOptions(),
		generator.WithMetrics(s.metrics),
		generator.WithLogger(s.logger))
	s.generator = generator.New(append(generatorOptions, s.generatorOptions...)...)
	return nil
}

// New creates a Service.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
