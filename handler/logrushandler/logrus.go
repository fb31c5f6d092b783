// Package logrushandler forwards log entries into a logrus.Logger.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/quicklog/core"
)

// LoggerKey is the field carrying the quicklog logger name
const LoggerKey = "logger"

// Handler writes entries through a *logrus.Logger, keeping its hooks,
// formatter and output. Fatal and panic entries are logged at
// logrus.FatalLevel through Entry.Log, which does not exit.
type Handler struct {
	logger *logrus.Logger
}

// New creates a handler writing through l
func New(l *logrus.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle logs entry through logrus
func (h *Handler) Handle(entry *core.Entry) error {
	lvl := Level(entry.Level)
	if !h.logger.IsLevelEnabled(lvl) {
		return nil
	}

	data := make(logrus.Fields, len(entry.Fields)+1)
	if entry.Logger != "" {
		data[LoggerKey] = entry.Logger
	}
	for _, f := range entry.Fields {
		data[f.Key] = f.Value()
	}

	le := logrus.NewEntry(h.logger).WithTime(entry.Time).WithFields(data)
	le.Log(lvl, entry.Message)
	return nil
}

// CanRecycleEntry returns true; logrus formats before Log returns
func (h *Handler) CanRecycleEntry() bool {
	return true
}

// Close is a no-op; the logrus output belongs to the caller
func (h *Handler) Close() error {
	return nil
}

// Level maps a quicklog level to logrus
func Level(l core.Level) logrus.Level {
	switch l {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}
