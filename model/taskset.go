package model

import "math"

// Taskset is an ordered collection of tasks keyed by name.
//
// The taskset owns its entries: Add stores a copy and Tasks returns copies, so
// no caller can mutate a member behind the taskset's back.  Hyperperiod and
// worst-case utilisation are recomputed whenever membership changes.
type Taskset struct {
	names       []string
	tasks       map[string]*Task
	hyperperiod int64
	utilization float64
}

// NewTaskset creates a taskset holding copies of the supplied tasks.
func NewTaskset(tasks ...*Task) *Taskset {
	ret := &Taskset{tasks: make(map[string]*Task, len(tasks))}
	for _, task := range tasks {
		ret.put(task)
	}
	ret.updateProperties()
	return ret
}

// Add inserts a copy of task.  Re-adding an existing name replaces the entry
// in place, keeping its position.
func (s *Taskset) Add(task *Task) {
	if task == nil {
		return
	}
	s.put(task)
	s.updateProperties()
}

// Remove deletes the named task and reports whether it was present.
func (s *Taskset) Remove(name string) bool {
	if _, ok := s.tasks[name]; !ok {
		return false
	}
	delete(s.tasks, name)
	for i, candidate := range s.names {
		if candidate == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	s.updateProperties()
	return true
}

// Lookup returns a copy of the named task.
func (s *Taskset) Lookup(name string) (Task, bool) {
	task, ok := s.tasks[name]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

// Len returns the number of tasks.
func (s *Taskset) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Tasks returns copies of all tasks in insertion order.
func (s *Taskset) Tasks() []Task {
	if s == nil {
		return nil
	}
	ret := make([]Task, 0, len(s.names))
	for _, name := range s.names {
		ret = append(ret, *s.tasks[name])
	}
	return ret
}

// Names returns task names in insertion order.
func (s *Taskset) Names() []string {
	return append([]string(nil), s.names...)
}

// Periods returns task periods in insertion order.
func (s *Taskset) Periods() []int {
	ret := make([]int, 0, len(s.names))
	for _, name := range s.names {
		ret = append(ret, s.tasks[name].Period)
	}
	return ret
}

// UniquePeriods reports whether all periods are pairwise distinct.
func (s *Taskset) UniquePeriods() bool {
	seen := make(map[int]bool, len(s.names))
	for _, period := range s.Periods() {
		if seen[period] {
			return false
		}
		seen[period] = true
	}
	return true
}

// Hyperperiod returns the least common multiple of all periods, 0 for an
// empty taskset.  The value saturates at math.MaxInt64.
func (s *Taskset) Hyperperiod() int64 {
	if s == nil {
		return 0
	}
	return s.hyperperiod
}

// WorstCaseUtilization returns the sum of WCET/period rounded to 2 decimals.
func (s *Taskset) WorstCaseUtilization() float64 {
	if s == nil {
		return 0
	}
	return s.utilization
}

// AssignPriorities applies a name to priority mapping.  Tasks missing from
// the assignment keep their current priority.
func (s *Taskset) AssignPriorities(assignment Assignment) error {
	for name := range assignment {
		if _, ok := s.tasks[name]; !ok {
			return InvalidInputf("priority assigned to unknown task %q", name)
		}
	}
	for name, priority := range assignment {
		s.tasks[name].Priority = priority
	}
	return nil
}

func (s *Taskset) put(task *Task) {
	if s.tasks == nil {
		s.tasks = make(map[string]*Task)
	}
	clone := *task
	if _, ok := s.tasks[task.Name]; !ok {
		s.names = append(s.names, task.Name)
	}
	s.tasks[task.Name] = &clone
}

func (s *Taskset) updateProperties() {
	s.hyperperiod = s.calculateHyperperiod()
	s.utilization = s.calculateUtilization()
}

func (s *Taskset) calculateHyperperiod() int64 {
	if len(s.names) == 0 {
		return 0
	}
	var ret int64 = 1
	for _, name := range s.names {
		ret = lcm(ret, int64(s.tasks[name].Period))
		if ret == 0 || ret == math.MaxInt64 {
			return ret
		}
	}
	return ret
}

func (s *Taskset) calculateUtilization() float64 {
	total := 0.0
	for _, name := range s.names {
		total += s.tasks[name].Utilization()
	}
	return Round2(total)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns 0 when either operand is 0 and saturates on overflow.
func lcm(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a == 0 || b == 0 {
		return 0
	}
	step := a / gcd(a, b)
	if step > math.MaxInt64/b {
		return math.MaxInt64
	}
	return step * b
}

// Round2 rounds value to 2 decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
