package logger

import "sync"

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The console backend cannot fail to construct.
	defaultLogger, _ = New(DefaultConfig())
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Errorf logs a formatted error message using the default logger
func Errorf(tag, format string, args ...interface{}) {
	Default().Errorf(tag, format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(tag, format string, args ...interface{}) {
	Default().Warningf(tag, format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(tag, format string, args ...interface{}) {
	Default().Infof(tag, format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(tag, format string, args ...interface{}) {
	Default().Debugf(tag, format, args...)
}
