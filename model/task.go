package model

// Task represents a periodic real-time task.
//
// Times are expressed in abstract integer time units.  Priority follows the
// "lower value means higher priority" convention and stays 0 until a policy
// assigns it.
type Task struct {
	Name     string `json:"name" yaml:"name"`
	BCET     int    `json:"bcet" yaml:"bcet"`
	WCET     int    `json:"wcet" yaml:"wcet"`
	Period   int    `json:"period" yaml:"period"`
	Deadline int    `json:"deadline" yaml:"deadline"`
	Priority int    `json:"priority" yaml:"priority"`
}

// NewTask creates a task, enforcing 0 <= bcet <= wcet.
func NewTask(name string, bcet, wcet, period, deadline int) (*Task, error) {
	if bcet < 0 {
		return nil, InvalidInputf("task %q: BCET cannot be negative (%d)", name, bcet)
	}
	if bcet > wcet {
		return nil, InvalidInputf("task %q: BCET cannot be greater than WCET (%d > %d)", name, bcet, wcet)
	}
	return &Task{
		Name:     name,
		BCET:     bcet,
		WCET:     wcet,
		Period:   period,
		Deadline: deadline,
	}, nil
}

// Utilization returns WCET/Period, or 0 for a non-positive period.
func (t *Task) Utilization() float64 {
	if t.Period <= 0 {
		return 0
	}
	return float64(t.WCET) / float64(t.Period)
}
