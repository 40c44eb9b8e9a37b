// Package logging provides the package-level *slog.Logger used by the
// weightdist library for debug output.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the shared logger instance. A nil value means no logger has
// been configured and output is discarded.
var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger configures the logger used by the library. Pass nil to silence
// all output again. Safe for concurrent use.
//
// Enabling debug output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(l)
	}
}

// Logger returns the configured logger, or a discard logger when none has
// been set. Safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}
