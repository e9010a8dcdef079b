// Package telemetry builds the process logger and the Prometheus metrics
// shared by the registry, the discovery facade and the HTTP server.
package telemetry
