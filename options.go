package skifta

import (
	"github.com/0xalexb/skifta/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithReleaseConfig adds the release configuration module for the workspace
// rooted at dir. The module discovers the workspace packages, loads the
// document at .skifta/config.json, and provides the resolved configuration.
func WithReleaseConfig(dir string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.NewModule(dir))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format for the application.
// Valid formats are: "json", "text". If not set or invalid, defaults to "json".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
