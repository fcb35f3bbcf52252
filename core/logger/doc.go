// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production).
//
// # Run correlation
//
// Every command invocation gets a run id (a random UUID). WithRunID attaches it to
// the logger so all entries written during one run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Validation started")
package logger
