// Package zaphandler forwards log entries into a zap core, so quicklog
// loggers can share the sinks and encoders of an existing zap setup.
package zaphandler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/quicklog/core"
)

// Handler writes entries to a zapcore.Core. Fatal and panic entries are
// written at zap's matching levels without exiting or panicking; the
// quicklog logger already does that.
type Handler struct {
	core zapcore.Core
}

// New creates a handler writing to c
func New(c zapcore.Core) *Handler {
	return &Handler{core: c}
}

// NewFromLogger creates a handler writing to the core of l
func NewFromLogger(l *zap.Logger) *Handler {
	return New(l.Core())
}

// Handle converts entry to a zap entry and writes it
func (h *Handler) Handle(entry *core.Entry) error {
	lvl := Level(entry.Level)
	if !h.core.Enabled(lvl) {
		return nil
	}

	ze := zapcore.Entry{
		Level:      lvl,
		Time:       entry.Time,
		LoggerName: entry.Logger,
		Message:    entry.Message,
	}
	if entry.Caller.Defined {
		ze.Caller = zapcore.NewEntryCaller(0, entry.Caller.File, entry.Caller.Line, true)
		ze.Caller.Function = entry.Caller.Function
	}

	return h.core.Write(ze, Fields(entry.Fields))
}

// CanRecycleEntry returns true; zap copies what it needs during Write
func (h *Handler) CanRecycleEntry() bool {
	return true
}

// Close flushes the core
func (h *Handler) Close() error {
	return h.core.Sync()
}

// Level maps a quicklog level to zap
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.PanicLevel
	}
}

// Fields converts quicklog fields to zap fields
func Fields(fields []core.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case core.StringType, core.ErrorType:
			out = append(out, zap.String(f.Key, f.Str))
		case core.IntType, core.Int64Type:
			out = append(out, zap.Int64(f.Key, f.Int64))
		case core.Float64Type:
			out = append(out, zap.Float64(f.Key, f.Float64))
		case core.BoolType:
			out = append(out, zap.Bool(f.Key, f.Int64 == 1))
		case core.TimeType:
			out = append(out, zap.Time(f.Key, time.Unix(0, f.Int64)))
		case core.DurationType:
			out = append(out, zap.Duration(f.Key, time.Duration(f.Int64)))
		default:
			out = append(out, zap.Any(f.Key, f.Any))
		}
	}
	return out
}
