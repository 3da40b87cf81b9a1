// Package logging wraps logr.Logger with the verbosity levels ZMDB parsing
// uses throughout: TRACE for byte-level decode detail, DEBUG for per-record
// decisions, INFO for extraction-level milestones.
//
// Grounded on iso-kit's pkg/logging/logging.go. That package's own consumers
// call logging.DEBUG/logging.TRACE directly on a Logger's V(), but
// logging.go only ever exported LEVEL_DEBUG/LEVEL_TRACE, so those call sites
// never resolved. TRACE/DEBUG/INFO are exported directly here so the same
// `logger.V(logging.TRACE).Info(...)` call style actually compiles.
package logging

import (
	"github.com/go-logr/logr"
)

const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// NewLogger wraps an existing logr.Logger. A zero-value logr.Logger is
// replaced with a discarding logger.
func NewLogger(log logr.Logger) *Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Logger{log: log}
}

// DefaultLogger discards everything, matching how Extract behaves when the
// caller supplies no logger.
func DefaultLogger() *Logger {
	return &Logger{log: logr.Discard()}
}

// Logger wraps a logr.Logger with convenience methods so call sites don't
// need to spell out V(level) for the common cases.
type Logger struct {
	log logr.Logger
}

// V exposes the underlying logr.Logger's verbosity gate for call sites that
// need it directly, e.g. l.V(logging.TRACE).Info(...).
func (l *Logger) V(level int) logr.Logger {
	return l.log.V(level)
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(DEBUG).Info(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log.V(INFO).Info(msg, keysAndValues...)
}

func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(TRACE).Info(msg, keysAndValues...)
}

func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}

// WithValues returns a Logger that prepends keysAndValues to every message.
func (l *Logger) WithValues(keysAndValues ...interface{}) *Logger {
	return &Logger{log: l.log.WithValues(keysAndValues...)}
}

// WithName returns a Logger scoped under the given name, e.g. "resolver".
func (l *Logger) WithName(name string) *Logger {
	return &Logger{log: l.log.WithName(name)}
}
