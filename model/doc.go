// Package model contains the in-memory representation of synthetic real-time
// task sets and the requests that describe them.
//
// A Requirement describes what should be generated (number of tasks, total
// utilisation, period uniqueness and the priority policy).  The generator
// turns it into a Taskset: an ordered collection of periodic Task values whose
// aggregate metrics (hyperperiod and worst-case utilisation) are recomputed
// every time membership changes.
package model
