// Package generator synthesises periodic tasksets from a Requirement.
//
// Generation runs in attempts.  Every attempt partitions the requested
// utilisation across the tasks, derives the smallest period that keeps each
// worst-case execution time integral, optionally makes periods unique and
// builds the taskset.  The attempt is accepted when the taskset's worst-case
// utilisation deviates from the request by no more than a threshold that
// starts at zero and is relaxed by ToleranceStep after each failure.  Every
// loop is bounded and reports model.ErrNotConverged once its budget is spent.
package generator
