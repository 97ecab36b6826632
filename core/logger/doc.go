// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Command-line use defaults to console encoding.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Connected to storage")
//
//	// Scoped to one object:
//	l := logger.WithObject(log, "assets", "images/logo.png")
//	l.Warn("Bucket already exists")
package logger
