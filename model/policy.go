package model

// Assignment maps task names to priority values.
type Assignment map[string]int

// Policy assigns priorities to tasks.  Implementations must not mutate the
// supplied tasks; the caller applies the returned assignment.
type Policy interface {
	// Name returns the policy label used in configuration and reports.
	Name() string

	// Assign computes priorities for tasks.
	Assign(tasks []Task) (Assignment, error)
}
