// Package hcloghandler forwards log entries into a hashicorp go-hclog
// logger, for programs embedded in the HashiCorp plugin ecosystem.
package hcloghandler

import (
	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/quicklog/core"
)

// Handler writes entries through an hclog.Logger. Named entries go to a
// sub-logger with that name. hclog has no fatal or panic level, so those
// entries are logged as errors.
type Handler struct {
	logger hclog.Logger
}

// New creates a handler writing through l
func New(l hclog.Logger) *Handler {
	return &Handler{logger: l}
}

// Handle logs entry through hclog
func (h *Handler) Handle(entry *core.Entry) error {
	lvl := Level(entry.Level)
	l := h.logger
	if entry.Logger != "" {
		l = l.Named(entry.Logger)
	}
	if l.GetLevel() > lvl {
		return nil
	}

	args := make([]interface{}, 0, 2*len(entry.Fields))
	for _, f := range entry.Fields {
		args = append(args, f.Key, f.Value())
	}
	l.Log(lvl, entry.Message, args...)
	return nil
}

// CanRecycleEntry returns true; hclog writes before Log returns
func (h *Handler) CanRecycleEntry() bool {
	return true
}

// Close is a no-op; the hclog output belongs to the caller
func (h *Handler) Close() error {
	return nil
}

// Level maps a quicklog level to hclog
func Level(l core.Level) hclog.Level {
	switch l {
	case core.DebugLevel:
		return hclog.Debug
	case core.InfoLevel:
		return hclog.Info
	case core.WarnLevel:
		return hclog.Warn
	default:
		return hclog.Error
	}
}
