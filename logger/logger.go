package logger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/handler"
	"github.com/philipp01105/quicklog/registry"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// defaultCallerSkip is the number of frames between GetCaller and the
// code calling a Logger method.
const defaultCallerSkip = 2

// Leveler supplies a minimum level that may change over time
type Leveler interface {
	Level() core.Level
}

// Logger is the main logging interface (immutable)
type Logger struct {
	name          string
	handler       handler.Handler
	fastHandler   handler.FastHandler
	recycler      handler.Recycler
	leveler       Leveler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	leveler       Leveler
	level         core.Level
	levelSet      bool
	fields        []core.Field
	includeCaller bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{level: core.InfoLevel}
}

// WithName sets the logger name carried by every entry
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	b.leveler = nil
	return b
}

// WithRegistry sends entries to reg. Unless WithLevel is also used, the
// logger follows the registry level.
func (b *Builder) WithRegistry(reg *registry.Registry) *Builder {
	b.handler = reg
	b.leveler = reg
	return b
}

// WithLevel sets a fixed log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	b.levelSet = true
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		name:          b.name,
		handler:       b.handler,
		level:         b.level,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    defaultCallerSkip,
	}
	if !b.levelSet {
		l.leveler = b.leveler
	}
	l.fastHandler, _ = b.handler.(handler.FastHandler)
	l.recycler, _ = b.handler.(handler.Recycler)
	return l
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level currently logged
func (l *Logger) Level() core.Level {
	if l.leveler != nil {
		return l.leveler.Level()
	}
	return l.level
}

// Enabled reports whether a message at level would be logged
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := l.clone()
	c.fields = newFields
	return c
}

// AddCallerSkip returns a Logger that reports callers n frames further
// up the stack, for use behind wrapper functions.
func (l *Logger) AddCallerSkip(n int) *Logger {
	c := l.clone()
	c.callerSkip += n
	return c
}

// Slog returns a *slog.Logger that logs through the same handler, name,
// level and fields.
func (l *Logger) Slog() *slog.Logger {
	if l.handler == nil {
		return slog.New(slog.DiscardHandler)
	}
	h := handler.NewSlogHandlerFunc(l.handler, l.name, l.Enabled)
	if len(l.fields) > 0 {
		h = h.WithFields(l.fields...)
	}
	return slog.New(h)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields)
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.GetCaller(l.callerSkip)
	}

	if l.fastHandler != nil {
		_ = l.fastHandler.HandleLog(time.Now(), level, l.name, msg, l.fields, fields, caller)
		return
	}

	entry := handler.NewEntry(time.Now(), level, l.name, msg, l.fields, fields, caller)
	_ = l.handler.Handle(entry)
	if l.recycler != nil && l.recycler.CanRecycleEntry() {
		core.PutEntry(entry)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	panic(msg)
}

// Close closes the logger's handler. Loggers bound to a registry share
// its handlers, so Close leaves them open; close the registry instead.
func (l *Logger) Close() error {
	if l.handler == nil {
		return nil
	}
	if _, shared := l.handler.(*registry.Registry); shared {
		return nil
	}
	return l.handler.Close()
}
