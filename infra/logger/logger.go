package logger

import corelogger "github.com/kilianp07/haulplan/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.Nop

// New returns a Logger for the given component. Output format and level come
// from APP_ENV and HAULPLAN_LOG_LEVEL; see Configure for explicit settings.
func New(component string) Logger {
	return NewZerologLogger(component)
}
