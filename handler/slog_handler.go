package handler

import (
	"context"
	"log/slog"
	"slices"

	"github.com/philipp01105/quicklog/core"
)

// SlogHandler adapts a Handler to slog.Handler, so code written against
// log/slog can feed the same handler chain.
type SlogHandler struct {
	handler Handler
	enabled func(core.Level) bool
	name    string
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a slog.Handler that passes records at or above level to h.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return NewSlogHandlerFunc(h, "", func(l core.Level) bool { return l >= level })
}

// NewSlogHandlerFunc creates a slog.Handler whose level gate is decided by
// enabled at call time. Records carry name as their logger name.
func NewSlogHandlerFunc(h Handler, name string, enabled func(core.Level) bool) *SlogHandler {
	return &SlogHandler{
		handler: h,
		enabled: enabled,
		name:    name,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.enabled(slogLevelToCore(level))
}

// Handle converts the record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Logger = s.name
	entry.Message = record.Message

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendSlogAttr(entry.Fields, s.group, a)
		return true
	})

	err := s.handler.Handle(entry)
	if CanRecycle(s.handler) {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	clone := *s
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new SlogHandler that prefixes later keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	clone.group = joinGroup(s.group, name)
	return &clone
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func joinGroup(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// appendSlogAttr converts a to fields, flattening groups into dotted keys.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := joinGroup(group, a.Key)
	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		// An inline group (empty key) keeps the enclosing prefix.
		prefix := group
		if a.Key != "" {
			prefix = key
		}
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, prefix, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}

// WithFields returns a new SlogHandler that attaches fields to every record.
func (s *SlogHandler) WithFields(fields ...core.Field) *SlogHandler {
	clone := *s
	clone.attrs = append(slices.Clip(s.attrs), fields...)
	return &clone
}
