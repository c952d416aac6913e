// Package progress keeps aggregated counters for a generation batch: how many
// requirements were submitted, how many produced a taskset, how many failed
// and how many generation attempts were spent.  The tracker travels in the
// context so components update it without a global registry.
package progress
