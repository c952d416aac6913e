// Package tasksetgen synthesises periodic real-time task sets for
// scheduling experiments.
//
// A Requirement names the number of tasks, the target worst-case
// utilisation, whether periods must be distinct and the priority-assignment
// policy.  The root Service validates and generates each requirement,
// assigns priorities, stores the taskset as CSV under
// <base>/<utilization>_utilization/<name>_taskset.csv and reports the
// outcome of the whole batch:
//
//	srv, err := tasksetgen.New(tasksetgen.WithConfig(cfg))
//	if err != nil {
//		return err
//	}
//	report, err := srv.RunFile(ctx, "requirements.csv")
//	if err != nil {
//		return err
//	}
//	fmt.Println(report.Succeeded(), report.Failed())
//
// Failing requirements never abort a batch; their errors are recorded in the
// report next to the successful outcomes.
package tasksetgen
