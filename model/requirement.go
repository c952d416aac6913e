package model

import (
	"fmt"
	"math"
	"strings"
)

// Requirement describes a taskset to be generated.
type Requirement struct {
	Name          string  `json:"name" yaml:"name"`
	Size          int     `json:"size" yaml:"size"`
	Utilization   float64 `json:"utilization" yaml:"utilization"`
	UniquePeriods bool    `json:"uniquePeriods" yaml:"uniquePeriods"`
	// PolicyName keeps the raw label the requirement was loaded with.
	PolicyName string `json:"policy,omitempty" yaml:"policy,omitempty"`
	Policy     Policy `json:"-" yaml:"-"`
}

// PolicyOptions is appended to policy validation errors.  The policy package
// overrides it with the labels it actually registers.
var PolicyOptions = "\n\tOptions:\n\t\t- RM: Rate Monotonic"

// Validate checks requirement fields.  It never draws random numbers, so a
// rejected requirement leaves no side effects.
func (r *Requirement) Validate() error {
	if r == nil {
		return InvalidInputf("requirement is nil")
	}
	if strings.TrimSpace(r.Name) == "" {
		return InvalidInputf("name must be a non-empty string")
	}
	if r.Size < 1 {
		return InvalidInputf("requirement %q: number of tasks must be at least 1, got %d", r.Name, r.Size)
	}
	if math.IsNaN(r.Utilization) || math.IsInf(r.Utilization, 0) {
		return InvalidInputf("requirement %q: utilization must be a real number", r.Name)
	}
	if r.Utilization < 0 {
		return InvalidInputf("requirement %q: utilization must be a positive number, got %v", r.Name, r.Utilization)
	}
	if r.Policy == nil {
		if r.PolicyName != "" {
			return InvalidInputf("requirement %q: unknown priority assignment algorithm %q%s", r.Name, r.PolicyName, PolicyOptions)
		}
		return InvalidInputf("requirement %q: priority assignment algorithm must be provided%s", r.Name, PolicyOptions)
	}
	return nil
}

func (r *Requirement) String() string {
	policy := r.PolicyName
	if r.Policy != nil {
		policy = r.Policy.Name()
	}
	return fmt.Sprintf("Requirement(name=%s, size=%d, utilization=%v, uniquePeriods=%v, algorithm=%s)",
		r.Name, r.Size, r.Utilization, r.UniquePeriods, policy)
}
