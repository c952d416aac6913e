package policy

import (
	"github.com/viant/tasksetgen/model"
	"sort"
)

// RateMonotonic assigns higher priority (lower value) to shorter periods.
//
// Tasks are stable-sorted by period.  The first task gets 0; every following
// task either inherits the previous priority when the periods are equal or
// takes its sorted index.  Numbering therefore has gaps after ties:
// periods [50, 50, 100] produce priorities [0, 0, 2].
type RateMonotonic struct{}

// Name returns the policy name.
func (r *RateMonotonic) Name() string {
	return LabelRateMonotone
}

// Assign computes rate-monotonic priorities.
func (r *RateMonotonic) Assign(tasks []model.Task) (model.Assignment, error) {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Period < sorted[j].Period
	})
	ret := make(model.Assignment, len(sorted))
	prev := 0
	for i, task := range sorted {
		priority := i
		if i > 0 && task.Period == sorted[i-1].Period {
			priority = prev
		}
		ret[task.Name] = priority
		prev = priority
	}
	return ret, nil
}
