// Package middleware provides ready-made executor middleware for tracked
// API calls: structured logging, call IDs, panic recovery, OpenTelemetry
// tracing, and call metrics.
//
// Middleware compose in onion order; register the outermost first:
//
//	exec.Use(middleware.Recovery(log))
//	exec.Use(middleware.RequestID())
//	exec.Use(middleware.Logging(log, store))
package middleware
