package logging

import "log/slog"

// SlogWarner routes informational warning messages to a slog.Logger. It
// satisfies the config package's Warner interface; the config validator uses
// it to report legacy values that were silently rewritten.
type SlogWarner struct {
	logger *slog.Logger
}

// NewWarner creates a warning sink backed by the given logger. A nil logger
// falls back to slog.Default at call time.
func NewWarner(logger *slog.Logger) *SlogWarner {
	return &SlogWarner{logger: logger}
}

// Warn logs the message at warning level.
func (w *SlogWarner) Warn(msg string) {
	logger := w.logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Warn(msg)
}
