// Package server provides the MCP server context, the metrics endpoint,
// and health checking for the scheduler-mcp application.
//
// # Key Components
//
// ServerContext manages Google Calendar clients and scheduling engines with
// lazy initialization and caching. It supports multiple accounts; each
// account gets its own Calendar client and engine, created on first use
// when a stored token (or service account) is available.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, keeping
// operational metrics off the main MCP transport.
//
// HealthChecker provides /healthz, /readyz and /healthz/detailed endpoints
// for Kubernetes probes.
package server
