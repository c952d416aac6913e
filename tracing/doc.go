// Package tracing is a thin wrapper over OpenTelemetry.  Callers start and end
// spans through StartSpan and EndSpan; Init installs a stdout (or file)
// exporter as the global provider.  Without Init spans are no-ops.
package tracing
