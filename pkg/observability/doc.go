/*
Package observability provides Prometheus instrumentation for folio.

Metrics are registered on a caller-supplied prometheus.Registerer so tests and
embedders can keep them isolated from the global default registry.
*/
package observability
