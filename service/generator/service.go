package generator

import (
	"context"
	"fmt"
	"github.com/viant/tasksetgen/internal/logging"
	"github.com/viant/tasksetgen/metrics"
	"github.com/viant/tasksetgen/model"
	"log/slog"
	"math"
	"math/rand/v2"
)

// Service generates tasksets.  It is not safe for concurrent use because
// the random source is shared between attempts.
type Service struct {
	rnd         Rand
	maxAttempts int
	metrics     *metrics.Collector
	logger      *slog.Logger
}

// Result describes a generated taskset.
type Result struct {
	Taskset *model.Taskset
	// Attempts is the number of attempts the tolerance loop used.
	Attempts int
	// Threshold is the relaxed deviation threshold the loop stopped at.
	Threshold float64
	// Deviation is |worst-case utilization - requested utilization|.
	Deviation float64
	// Assignment holds the priorities the policy produced.
	Assignment model.Assignment
}

// Generate validates req and synthesises a matching taskset.
//
// Validation failures, infeasible requests and numeric derivation errors are
// returned immediately; only utilisation deviation is retried.
func (s *Service) Generate(ctx context.Context, req *model.Requirement) (*Result, error) {
	result, err := s.generate(ctx, req)
	if err != nil {
		s.metrics.Failed()
		return nil, err
	}
	return result, nil
}

func (s *Service) generate(ctx context.Context, req *model.Requirement) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.metrics.Attempt()
		threshold := float64(attempt-1) * ToleranceStep
		taskset, err := s.attempt(req)
		if err != nil {
			return nil, err
		}
		deviation := math.Abs(taskset.WorstCaseUtilization() - req.Utilization)
		if taskset.Len() != req.Size || deviation > threshold+deviationEpsilon {
			s.logger.Debug("attempt rejected",
				"requirement", req.Name,
				"attempt", attempt,
				"deviation", deviation,
				"threshold", threshold)
			continue
		}
		assignment, err := req.Policy.Assign(taskset.Tasks())
		if err != nil {
			return nil, fmt.Errorf("failed to assign priorities with %s: %w", req.Policy.Name(), err)
		}
		if err = taskset.AssignPriorities(assignment); err != nil {
			return nil, fmt.Errorf("failed to apply %s priorities: %w", req.Policy.Name(), err)
		}
		s.metrics.Succeeded(deviation, taskset.Hyperperiod())
		return &Result{
			Taskset:    taskset,
			Attempts:   attempt,
			Threshold:  model.Round2(threshold),
			Deviation:  deviation,
			Assignment: assignment,
		}, nil
	}
	return nil, model.NotConvergedf("requirement %q: utilization deviation did not fall within tolerance after %d attempts", req.Name, s.maxAttempts)
}

func (s *Service) attempt(req *model.Requirement) (*model.Taskset, error) {
	shares, err := Partition(s.rnd, req.Size, req.Utilization, s.maxAttempts)
	if err != nil {
		return nil, err
	}
	periods, err := DerivePeriods(shares)
	if err != nil {
		return nil, err
	}
	if req.UniquePeriods {
		if err = ResolveUnique(s.rnd, periods, s.maxAttempts); err != nil {
			return nil, err
		}
	}
	return s.Build(shares, periods)
}

// Build creates Task_<i> for every (share, period) pair.  WCET is
// max(1, round(period × share)); BCET is drawn uniformly between 20% and 50%
// of WCET; the deadline equals the period.
func (s *Service) Build(shares []float64, periods []int) (*model.Taskset, error) {
	if len(shares) != len(periods) {
		return nil, model.InvalidInputf("got %d utilization shares but %d periods", len(shares), len(periods))
	}
	taskset := model.NewTaskset()
	for i, share := range shares {
		wcet := max(1, int(math.Round(float64(periods[i])*share)))
		bcet := int(math.Round(math.Max(0, float64(wcet)*(0.2+0.3*s.rnd.Float64()))))
		task, err := model.NewTask(fmt.Sprintf("Task_%d", i), bcet, wcet, periods[i], periods[i])
		if err != nil {
			return nil, err
		}
		taskset.Add(task)
	}
	return taskset, nil
}

// New creates a generator.
func New(opts ...Option) *Service {
	ret := &Service{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.rnd == nil {
		ret.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if ret.logger == nil {
		ret.logger = logging.Logger()
	}
	return ret
}
