// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that switches between the development
// and production zap presets depending on the requested level, and writes to an
// explicitly supplied writer rather than a process-wide global.
//
// # Severity Tiers
//
// Five tiers are supported, in increasing order: trace, debug, info, warn, error.
// Zap has no trace level, so TraceLevel is defined one step below DebugLevel and
// written through the Trace helper.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: trace, debug, info, warn, error (default warn)
//   - Encoding: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"}, os.Stderr)
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("arguments parsed")
//	logger.Trace(log, "program running")
package logger
