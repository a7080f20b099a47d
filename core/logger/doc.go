// Package logger provides a structured logging facility based on Zap.
//
// Logs go to stderr so they do not interleave with the interactive menu on stdout.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console (default, coloured levels, no stack traces)
//
// # Fields
//
// WithServer attaches the server name and port, WithLaunchID attaches the id shared
// by every process spawned in one start action, so a batch can be followed in the log.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	logger.WithServer(log, entry).Info("Starting server")
package logger
