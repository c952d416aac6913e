// Package idgen produces batch run identifiers.  Identifiers are opaque
// strings; tests stub NewFunc for determinism.
package idgen
