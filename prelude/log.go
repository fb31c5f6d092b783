package prelude

import (
	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/logger"
)

// Log is the program logger. It is set up on first use.
var Log = logger.NewDeferred("")

// NewLog creates a deferred logger called name
func NewLog(name string, opts ...logger.Option) *logger.Deferred {
	return logger.NewDeferred(name, opts...)
}

// Level is a log severity
type Level = core.Level

// Field is a key-value pair attached to a log line
type Field = core.Field

// Log levels
const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// Field constructors
var (
	String   = logger.String
	Int      = logger.Int
	Int64    = logger.Int64
	Float64  = logger.Float64
	Bool     = logger.Bool
	Time     = logger.Time
	Duration = logger.Duration
	Err      = logger.Err
	Any      = logger.Any
)
