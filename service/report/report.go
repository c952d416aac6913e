// Package report summarises a generation batch and renders it for terminals.
package report

import (
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/service/generator"
)

// Outcome is the result of processing one requirement.
type Outcome struct {
	Requirement *model.Requirement
	Result      *generator.Result
	// Location is where the taskset was stored; empty on failure.
	Location string
	Err      error
}

// Succeeded reports whether a taskset was generated and stored.
func (o *Outcome) Succeeded() bool {
	return o.Err == nil && o.Result != nil
}

// UniqueMissed reports whether unique periods were requested but not produced.
func (o *Outcome) UniqueMissed() bool {
	if !o.Succeeded() || o.Requirement == nil {
		return false
	}
	return o.Requirement.UniquePeriods && !o.Result.Taskset.UniquePeriods()
}

// Summary collects batch outcomes in requirement order.
type Summary struct {
	RunID    string
	Outcomes []*Outcome
}

// Add appends an outcome.
func (s *Summary) Add(outcome *Outcome) {
	s.Outcomes = append(s.Outcomes, outcome)
}

// Succeeded returns the number of stored tasksets.
func (s *Summary) Succeeded() int {
	count := 0
	for _, outcome := range s.Outcomes {
		if outcome.Succeeded() {
			count++
		}
	}
	return count
}

// Failed returns the number of requirements that produced no taskset.
func (s *Summary) Failed() int {
	return len(s.Outcomes) - s.Succeeded()
}

// Err returns the first recorded failure, if any.
func (s *Summary) Err() error {
	for _, outcome := range s.Outcomes {
		if outcome.Err != nil {
			return outcome.Err
		}
	}
	return nil
}
