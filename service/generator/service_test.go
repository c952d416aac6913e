package generator

import (
	"context"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tasksetgen/internal/logging"
	"github.com/viant/tasksetgen/metrics"
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/policy"
	"sort"
	"strings"
	"testing"
)

func rm() model.Policy {
	p, _ := policy.Lookup(policy.LabelRM)
	return p
}

func newTestService(seed int64, opts ...Option) *Service {
	opts = append([]Option{WithSeed(seed), WithLogger(logging.Discard())}, opts...)
	return New(opts...)
}

func TestService_Generate(t *testing.T) {
	testCases := []struct {
		name string
		req  *model.Requirement
	}{
		{name: "five tasks", req: &model.Requirement{Name: "Test1", Size: 5, Utilization: 0.5, Policy: rm()}},
		{name: "unique periods", req: &model.Requirement{Name: "Test2", Size: 3, Utilization: 0.8, UniquePeriods: true, Policy: rm()}},
		{name: "two tasks", req: &model.Requirement{Name: "Pair", Size: 2, Utilization: 0.2, Policy: rm()}},
		{name: "large unique", req: &model.Requirement{Name: "Large", Size: 20, Utilization: 0.9, UniquePeriods: true, Policy: rm()}},
		{name: "minimum boundary", req: &model.Requirement{Name: "Min", Size: 3, Utilization: 0.03, Policy: rm()}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				result, err := newTestService(seed).Generate(context.Background(), tc.req)
				if !assert.NoError(t, err) {
					return
				}
				taskset := result.Taskset
				assert.Equal(t, tc.req.Size, taskset.Len())
				assert.Equal(t, 1, result.Attempts)
				assert.InDelta(t, 0, result.Deviation, 1e-9)
				assert.InDelta(t, tc.req.Utilization, taskset.WorstCaseUtilization(), 1e-9)
				if tc.req.UniquePeriods {
					assert.True(t, taskset.UniquePeriods())
				}
				for _, task := range taskset.Tasks() {
					assert.GreaterOrEqual(t, task.BCET, 0)
					assert.LessOrEqual(t, task.BCET, task.WCET)
					assert.GreaterOrEqual(t, task.WCET, 1)
					assert.Equal(t, task.Period, task.Deadline)
				}
				assertRateMonotonic(t, taskset.Tasks())
			}
		})
	}
}

func TestService_Generate_TwoTaskScenario(t *testing.T) {
	req := &model.Requirement{Name: "Pair", Size: 2, Utilization: 0.2, Policy: rm()}
	result, err := newTestService(7).Generate(context.Background(), req)
	assert.NoError(t, err)
	total := 0.0
	for _, task := range result.Taskset.Tasks() {
		total += float64(task.WCET) / float64(task.Period)
		assert.Equal(t, 0, 100%task.Period, "period %d must divide 100", task.Period)
	}
	assert.InDelta(t, 0.2, total, 0.01)
}

func TestService_Generate_UniqueScenario(t *testing.T) {
	req := &model.Requirement{Name: "Four", Size: 4, Utilization: 0.3, UniquePeriods: true, Policy: rm()}
	for seed := int64(0); seed < 10; seed++ {
		result, err := newTestService(seed).Generate(context.Background(), req)
		assert.NoError(t, err)
		tasks := result.Taskset.Tasks()
		assert.True(t, result.Taskset.UniquePeriods())
		sort.Slice(tasks, func(i, j int) bool { return tasks[i].Period < tasks[j].Period })
		assert.Equal(t, 0, tasks[0].Priority)
		assert.Equal(t, 1, tasks[1].Priority)
	}
}

func TestService_Generate_RelaxesThreshold(t *testing.T) {
	req := &model.Requirement{Name: "Odd", Size: 3, Utilization: 0.255, Policy: rm()}
	result, err := newTestService(3).Generate(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, 0.01, result.Threshold)
	assert.LessOrEqual(t, result.Deviation, result.Threshold)
}

func TestService_Generate_Errors(t *testing.T) {
	testCases := []struct {
		name string
		req  *model.Requirement
		kind error
	}{
		{name: "missing policy", req: &model.Requirement{Name: "r", Size: 2, Utilization: 0.2}, kind: model.ErrInvalidInput},
		{name: "zero size", req: &model.Requirement{Name: "r", Size: 0, Utilization: 0.2, Policy: rm()}, kind: model.ErrInvalidInput},
		{name: "negative utilization", req: &model.Requirement{Name: "r", Size: 2, Utilization: -0.2, Policy: rm()}, kind: model.ErrInvalidInput},
		{name: "infeasible", req: &model.Requirement{Name: "r", Size: 5, Utilization: 0.02, Policy: rm()}, kind: model.ErrInfeasible},
		{name: "zero utilization", req: &model.Requirement{Name: "r", Size: 1, Utilization: 0, Policy: rm()}, kind: model.ErrInfeasible},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			collector := metrics.New()
			result, err := newTestService(1, WithMetrics(collector)).Generate(context.Background(), tc.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.kind)
			expected := `
# HELP tasksetgen_tasksets_total Total number of requirements processed, by outcome.
# TYPE tasksetgen_tasksets_total counter
tasksetgen_tasksets_total{status="failed"} 1
`
			assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "tasksetgen_tasksets_total"))
		})
	}
}

func TestService_Generate_ValidationHasNoSideEffects(t *testing.T) {
	rnd := &countingRand{Rand: NewRand(1)}
	srv := New(WithRand(rnd), WithLogger(logging.Discard()))
	_, err := srv.Generate(context.Background(), &model.Requirement{Name: "r", Size: 2, Utilization: 0.2})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, 0, rnd.draws)
}

func TestService_Generate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestService(1).Generate(ctx, &model.Requirement{Name: "r", Size: 2, Utilization: 0.2, Policy: rm()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Generate_Reproducible(t *testing.T) {
	req := &model.Requirement{Name: "r", Size: 6, Utilization: 0.7, UniquePeriods: true, Policy: rm()}
	first, err := newTestService(42).Generate(context.Background(), req)
	assert.NoError(t, err)
	second, err := newTestService(42).Generate(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, first.Taskset.Tasks(), second.Taskset.Tasks())
}

func TestService_Build(t *testing.T) {
	srv := newTestService(1)
	taskset, err := srv.Build([]float64{0.1, 0.2, 0.2}, []int{10, 20, 30})
	assert.NoError(t, err)
	assert.Equal(t, 3, taskset.Len())
	expected := map[string][2]int{"Task_0": {10, 1}, "Task_1": {20, 4}, "Task_2": {30, 6}}
	for name, want := range expected {
		task, ok := taskset.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, want[0], task.Period)
		assert.Equal(t, want[1], task.WCET)
		assert.Equal(t, task.Period, task.Deadline)
		assert.LessOrEqual(t, task.BCET, task.WCET)
	}

	_, err = srv.Build([]float64{0.1}, []int{10, 20})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestService_Metrics(t *testing.T) {
	collector := metrics.New()
	srv := newTestService(5, WithMetrics(collector))
	_, err := srv.Generate(context.Background(), &model.Requirement{Name: "r", Size: 4, Utilization: 0.4, Policy: rm()})
	assert.NoError(t, err)
	count, err := testutil.GatherAndCount(collector.Registry(), "tasksetgen_attempts_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func assertRateMonotonic(t *testing.T, tasks []model.Task) {
	t.Helper()
	for _, a := range tasks {
		for _, b := range tasks {
			if a.Period < b.Period {
				assert.Less(t, a.Priority, b.Priority)
			}
			if a.Period == b.Period {
				assert.Equal(t, a.Priority, b.Priority)
			}
		}
	}
}
