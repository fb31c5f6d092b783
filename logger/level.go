package logger

import (
	"github.com/philipp01105/quicklog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ParseLevel converts a level name such as "debug" or "WARNING" to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
