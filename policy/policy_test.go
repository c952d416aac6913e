package policy

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/tasksetgen/model"
	"gopkg.in/yaml.v3"
	"testing"
)

func TestRateMonotonic_Assign(t *testing.T) {
	testCases := []struct {
		name     string
		periods  []int
		expected []int
	}{
		{name: "empty", periods: nil, expected: nil},
		{name: "single", periods: []int{10}, expected: []int{0}},
		{name: "distinct", periods: []int{100, 10, 50}, expected: []int{2, 0, 1}},
		{name: "tie then distinct keeps gap", periods: []int{50, 50, 100}, expected: []int{0, 0, 2}},
		{name: "tie in the middle", periods: []int{20, 5, 20, 40, 5}, expected: []int{2, 0, 2, 4, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tasks := make([]model.Task, len(tc.periods))
			for i, period := range tc.periods {
				tasks[i] = model.Task{Name: string(rune('A' + i)), Period: period, Deadline: period}
			}
			assignment, err := (&RateMonotonic{}).Assign(tasks)
			assert.NoError(t, err)
			assert.Len(t, assignment, len(tc.periods))
			for i, task := range tasks {
				assert.Equal(t, tc.expected[i], assignment[task.Name], task.Name)
				assert.Equal(t, 0, task.Priority, "input must not be mutated")
			}
		})
	}
}

func TestRateMonotonic_Ordering(t *testing.T) {
	periods := []int{7, 3, 3, 12, 7, 1, 12, 30}
	tasks := make([]model.Task, len(periods))
	for i, period := range periods {
		tasks[i] = model.Task{Name: string(rune('a' + i)), Period: period}
	}
	assignment, err := (&RateMonotonic{}).Assign(tasks)
	assert.NoError(t, err)
	for _, a := range tasks {
		for _, b := range tasks {
			switch {
			case a.Period < b.Period:
				assert.Less(t, assignment[a.Name], assignment[b.Name])
			case a.Period == b.Period:
				assert.Equal(t, assignment[a.Name], assignment[b.Name])
			}
		}
	}
}

func TestLookup(t *testing.T) {
	for _, label := range []string{"RM", "rm", " Rate Monotonic ", "rate-monotonic"} {
		p, ok := Lookup(label)
		assert.True(t, ok, label)
		assert.IsType(t, &RateMonotonic{}, p)
	}
	p, ok := Lookup("EDF")
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Contains(t, Options(), "RM: Rate Monotonic")
	assert.Equal(t, Options(), model.PolicyOptions)
}

func TestConfig(t *testing.T) {
	testCases := []struct {
		description string
		document    string
		label       string
		resolved    bool
	}{
		{description: "scalar", document: "policy: RM", label: "RM", resolved: true},
		{description: "mapping", document: "policy:\n  name: rate-monotonic", label: "rate-monotonic", resolved: true},
		{description: "unknown", document: "policy: EDF", label: "EDF"},
		{description: "missing", document: "other: 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			holder := struct {
				Policy *Config `yaml:"policy"`
			}{}
			assert.NoError(t, yaml.Unmarshal([]byte(tc.document), &holder))
			assert.Equal(t, tc.label, holder.Policy.Label())
			if tc.resolved {
				assert.IsType(t, &RateMonotonic{}, FromConfig(holder.Policy))
				return
			}
			assert.Nil(t, FromConfig(holder.Policy))
		})
	}
}
