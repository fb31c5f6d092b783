package logger

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/formatter"
	"github.com/philipp01105/quicklog/registry"
)

// Deferred stands in for a named Logger until it is first used. Creating
// one does no I/O and leaves the registry alone. The first call to any of
// its methods builds the real Logger and, if the registry has no handler
// yet, installs the default console handler (see InstallDefault).
//
// A Deferred is safe for concurrent use; setup runs exactly once.
type Deferred struct {
	name     string
	registry *registry.Registry
	setup    Setup

	once      sync.Once
	ready     atomic.Bool
	logger    *Logger
	proxied   *Logger // logger with one extra caller frame for the methods below
	installed bool
}

// Option configures a Deferred logger
type Option func(*Deferred)

// WithRegistry binds the logger to reg instead of the root registry
func WithRegistry(reg *registry.Registry) Option {
	return func(d *Deferred) {
		d.registry = reg
	}
}

// WithOutput sets where the default handler writes
func WithOutput(w io.Writer) Option {
	return func(d *Deferred) {
		d.setup.Output = w
	}
}

// WithInteractive fixes the terminal check used to pick the default level
func WithInteractive(interactive bool) Option {
	return func(d *Deferred) {
		d.setup.Interactive = func() bool { return interactive }
	}
}

// WithProgram sets the program tag of the default format
func WithProgram(program string) Option {
	return func(d *Deferred) {
		d.setup.Program = program
	}
}

// WithFormatter replaces the default program formatter
func WithFormatter(f formatter.Formatter) Option {
	return func(d *Deferred) {
		d.setup.Formatter = f
	}
}

// WithEnvConfig uses cfg instead of reading QUICKLOG_* variables
func WithEnvConfig(cfg EnvConfig) Option {
	return func(d *Deferred) {
		d.setup.Env = &cfg
	}
}

// NewDeferred creates a deferred logger called name
func NewDeferred(name string, opts ...Option) *Deferred {
	d := &Deferred{
		name:     name,
		registry: registry.Root(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deferred) init() {
	d.once.Do(func() {
		d.logger = Named(d.registry, d.name)
		d.proxied = d.logger.AddCallerSkip(1)
		d.installed = InstallDefault(d.registry, d.setup)
		d.ready.Store(true)
	})
}

// Logger returns the real logger, setting it up on first call
func (d *Deferred) Logger() *Logger {
	d.init()
	return d.logger
}

// Ready reports whether the real logger has been built
func (d *Deferred) Ready() bool {
	return d.ready.Load()
}

// Installed reports whether this logger installed the default handler
func (d *Deferred) Installed() bool {
	d.init()
	return d.installed
}

// Name returns the logger name
func (d *Deferred) Name() string {
	return d.name
}

// Registry returns the registry the logger feeds
func (d *Deferred) Registry() *registry.Registry {
	return d.registry
}

// Enabled reports whether a message at level would be logged
func (d *Deferred) Enabled(level core.Level) bool {
	return d.Logger().Enabled(level)
}

// With returns the real logger with additional fields
func (d *Deferred) With(fields ...core.Field) *Logger {
	return d.Logger().With(fields...)
}

// Slog returns a *slog.Logger backed by the real logger
func (d *Deferred) Slog() *slog.Logger {
	return d.Logger().Slog()
}

func (d *Deferred) proxy() *Logger {
	d.init()
	return d.proxied
}

// Log logs a message at the specified level
func (d *Deferred) Log(level core.Level, msg string, fields ...core.Field) {
	d.proxy().Log(level, msg, fields...)
}

// Debug logs a debug message
func (d *Deferred) Debug(msg string, fields ...core.Field) {
	d.proxy().Debug(msg, fields...)
}

// Info logs an info message
func (d *Deferred) Info(msg string, fields ...core.Field) {
	d.proxy().Info(msg, fields...)
}

// Warn logs a warning message
func (d *Deferred) Warn(msg string, fields ...core.Field) {
	d.proxy().Warn(msg, fields...)
}

// Error logs an error message
func (d *Deferred) Error(msg string, fields ...core.Field) {
	d.proxy().Error(msg, fields...)
}

// Fatal logs a fatal message and exits the program
func (d *Deferred) Fatal(msg string, fields ...core.Field) {
	d.proxy().Fatal(msg, fields...)
}

// Panic logs a panic message and panics
func (d *Deferred) Panic(msg string, fields ...core.Field) {
	d.proxy().Panic(msg, fields...)
}

// Debugf logs a formatted debug message
func (d *Deferred) Debugf(format string, args ...interface{}) {
	d.proxy().Debugf(format, args...)
}

// Infof logs a formatted info message
func (d *Deferred) Infof(format string, args ...interface{}) {
	d.proxy().Infof(format, args...)
}

// Warnf logs a formatted warning message
func (d *Deferred) Warnf(format string, args ...interface{}) {
	d.proxy().Warnf(format, args...)
}

// Errorf logs a formatted error message
func (d *Deferred) Errorf(format string, args ...interface{}) {
	d.proxy().Errorf(format, args...)
}

// Fatalf logs a formatted fatal message and exits the program
func (d *Deferred) Fatalf(format string, args ...interface{}) {
	d.proxy().Fatalf(format, args...)
}

// Panicf logs a formatted panic message and panics
func (d *Deferred) Panicf(format string, args ...interface{}) {
	d.proxy().Panicf(format, args...)
}
