package logger_test

import (
	"github.com/philipp01105/quicklog/core"
)

// plainFormatter prints "<logger> <LEVEL> <message>"
type plainFormatter struct{}

func (plainFormatter) Format(e *core.Entry) ([]byte, error) {
	return []byte(e.Logger + " " + e.Level.String() + " " + e.Message + "\n"), nil
}
