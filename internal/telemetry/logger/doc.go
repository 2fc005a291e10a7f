// Package logger provides structured logging for stripelist tooling.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and global level
//   - context.go: Context-aware logging with run and worker IDs
//   - attrs.go: Attribute normalization (durations, errors)
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering, adjustable at runtime
//   - Context propagation for benchmark runs
package logger
