// Package policy provides priority-assignment rules that can be applied to a
// generated taskset.  Policies are stateless: they compute a name to priority
// assignment and leave applying it to the caller.
package policy
