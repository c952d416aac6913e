// Package metrics exposes Prometheus instruments describing taskset
// generation: how many tasksets were produced or rejected, how many attempts
// the tolerance loop needed and how far the result deviated from the request.
package metrics
