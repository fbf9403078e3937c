// Package logger provides structured logging for apistate using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("apistate")
//	log.Info("restored state", logger.Fields("keys", 3))
package logger
