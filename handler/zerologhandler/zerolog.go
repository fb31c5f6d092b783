// Package zerologhandler forwards log entries into a zerolog.Logger.
package zerologhandler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/quicklog/core"
)

// LoggerKey is the field carrying the quicklog logger name
const LoggerKey = "logger"

// Handler writes entries as zerolog events. Fatal and panic entries are
// written with WithLevel, which neither exits nor panics.
type Handler struct {
	logger zerolog.Logger
}

// New creates a handler writing through l
func New(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle writes entry as one zerolog event
func (h *Handler) Handle(entry *core.Entry) error {
	ev := h.logger.WithLevel(Level(entry.Level))
	if ev == nil {
		return nil
	}

	ev = ev.Time(zerolog.TimestampFieldName, entry.Time)
	if entry.Logger != "" {
		ev = ev.Str(LoggerKey, entry.Logger)
	}
	if entry.Caller.Defined {
		ev = ev.Str(zerolog.CallerFieldName, zerolog.CallerMarshalFunc(0, entry.Caller.File, entry.Caller.Line))
	}
	for _, f := range entry.Fields {
		ev = appendField(ev, f)
	}
	ev.Msg(entry.Message)
	return nil
}

func appendField(ev *zerolog.Event, f core.Field) *zerolog.Event {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return ev.Str(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return ev.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return ev.Float64(f.Key, f.Float64)
	case core.BoolType:
		return ev.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return ev.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return ev.Dur(f.Key, time.Duration(f.Int64))
	default:
		return ev.Interface(f.Key, f.Any)
	}
}

// CanRecycleEntry returns true; the event is written before Handle returns
func (h *Handler) CanRecycleEntry() bool {
	return true
}

// Close is a no-op; zerolog writes synchronously
func (h *Handler) Close() error {
	return nil
}

// Level maps a quicklog level to zerolog
func Level(l core.Level) zerolog.Level {
	switch l {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.PanicLevel
	}
}
