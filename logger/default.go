package logger

import (
	"sync"

	"github.com/philipp01105/quicklog/core"
)

// std is the package default: an unnamed deferred logger on the root registry
var std = NewDeferred("")

var (
	defaultMu      sync.RWMutex
	defaultLogger  *Logger
	defaultProxied *Logger
)

// Default returns the default logger. Unless SetDefault was called, the
// first call configures the root registry the way any Deferred does.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}
	return std.Logger()
}

// SetDefault sets the default logger; nil restores the deferred default
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
	defaultProxied = nil
	if l != nil {
		defaultProxied = l.AddCallerSkip(1)
	}
}

// pkg returns the default logger adjusted for the package-level wrappers
func pkg() *Logger {
	defaultMu.RLock()
	l := defaultProxied
	defaultMu.RUnlock()
	if l != nil {
		return l
	}
	return std.proxy()
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	pkg().Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	pkg().Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	pkg().Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	pkg().Error(msg, fields...)
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(msg string, fields ...core.Field) {
	pkg().Fatal(msg, fields...)
}

// Panic logs a panic message using the default logger and panics
func Panic(msg string, fields ...core.Field) {
	pkg().Panic(msg, fields...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	pkg().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	pkg().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	pkg().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	pkg().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message using the default logger and exits the program
func Fatalf(format string, args ...interface{}) {
	pkg().Fatalf(format, args...)
}

// Panicf logs a formatted panic message using the default logger and panics
func Panicf(format string, args ...interface{}) {
	pkg().Panicf(format, args...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
