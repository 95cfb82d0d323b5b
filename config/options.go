package config

import "log/slog"

// Warner receives the informational warnings validation emits, currently
// only the legacy access rewrite. Warnings are fire-and-forget and never
// block validation. logging.NewWarner provides a slog-backed implementation.
type Warner interface {
	Warn(msg string)
}

// defaultWarner routes warnings to the process default logger.
type defaultWarner struct{}

func (defaultWarner) Warn(msg string) {
	slog.Warn(msg)
}

// Option adjusts how Parse runs.
type Option func(*validator)

// WithWarner routes validation warnings to the given sink instead of the
// default slog-backed one.
func WithWarner(warner Warner) Option {
	return func(v *validator) {
		v.warner = warner
	}
}

// WithDependents replaces the dependents graph builder used for the ignore
// closure check. The builder is invoked lazily, only when the ignore field
// is present and well shaped. The default is depgraph.Dependents.
func WithDependents(dependents DependentsFunc) Option {
	return func(v *validator) {
		v.dependents = dependents
	}
}
