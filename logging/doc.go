// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON or text format and integrates with Uber's Fx dependency
// injection framework. It also defines the Warner sink used for informational
// warnings emitted during configuration validation.
package logging
